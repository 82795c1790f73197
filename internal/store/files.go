package store

import (
	"context"
	"errors"
	"io/fs"

	"github.com/rivo/uniseg"
	"github.com/rs/zerolog/log"

	"github.com/Diego-Ivan/adivinador/assets"
	"github.com/Diego-Ivan/adivinador/internal/glyph"
	"github.com/Diego-Ivan/adivinador/internal/words"
)

// Files reads one word file per catalog entry from an fs.FS.
type Files struct {
	fsys    fs.FS
	catalog []assets.Category
}

// NewFiles constructs a Files source over fsys using catalog for names and
// file paths.
func NewFiles(fsys fs.FS, catalog []assets.Category) *Files {
	return &Files{fsys: fsys, catalog: catalog}
}

// Categories loads every catalog entry. Missing or empty files are logged
// and skipped so the menu only offers playable categories.
func (f *Files) Categories(ctx context.Context) ([]*words.Category, error) {
	out := make([]*words.Category, 0, len(f.catalog))
	for _, entry := range f.catalog {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := words.FromFile(f.fsys, entry.Name, entry.File)
		if errors.Is(err, words.ErrSourceUnavailable) {
			log.Warn().Err(err).Str("category", entry.Name).Msg("category skipped")
			continue
		}
		if err != nil {
			return nil, err
		}
		if c.Len() == 0 {
			log.Warn().Str("category", entry.Name).Str("file", entry.File).Msg("category has no words, skipped")
			continue
		}
		checkGlyphs(c)
		log.Debug().Str("category", c.Name()).Int("words", c.Len()).Msg("category loaded")
		out = append(out, c)
	}
	return out, nil
}

// checkGlyphs warns about words whose glyph segmentation disagrees with
// grapheme clusters (decomposed accents, emoji sequences). Those words still
// play, but show more placeholders than visible letters.
func checkGlyphs(c *words.Category) {
	for _, w := range c.Words() {
		if g, u := glyph.Count(w), uniseg.GraphemeClusterCount(w); g != u {
			log.Warn().
				Str("category", c.Name()).
				Str("word", w).
				Int("glyphs", g).
				Int("graphemes", u).
				Msg("word segments into more glyphs than visible characters")
		}
	}
}
