// Package texture loads and prints ASCII-art banners (splash screen, hearts,
// victory and defeat screens).
//
// A texture is a list of lines padded on output to the width of its widest
// line, measured in terminal cells so UTF-8 art lines up.
package texture

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/Diego-Ivan/adivinador/internal/errs"
)

// Texture is an immutable block of text lines.
type Texture struct {
	lines []string
	width int
}

// Parse reads a texture from r, one line per row.
func Parse(r io.Reader) (*Texture, error) {
	t := &Texture{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if w := cellWidth(line); w > t.width {
			t.width = w
		}
		t.lines = append(t.lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("texture: %w: %v", errs.ErrSourceUnavailable, err)
	}
	return t, nil
}

// Load reads the texture stored at path inside fsys.
func Load(fsys fs.FS, path string) (*Texture, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w: %v", path, errs.ErrSourceUnavailable, err)
	}
	defer f.Close()
	return Parse(f)
}

// Height returns the number of lines.
func (t *Texture) Height() int { return len(t.lines) }

// Width returns the widest line in terminal cells.
func (t *Texture) Width() int { return t.width }

// Line returns line i without padding.
func (t *Texture) Line(i int) (string, error) {
	if i < 0 || i >= len(t.lines) {
		return "", fmt.Errorf("texture line %d of %d: %w", i, len(t.lines), errs.ErrIndexOutOfRange)
	}
	return t.lines[i], nil
}

// PaddedLine returns line i right-padded with spaces to Width.
func (t *Texture) PaddedLine(i int) (string, error) {
	line, err := t.Line(i)
	if err != nil {
		return "", err
	}
	return t.pad(line), nil
}

// String renders every line padded to Width, separated by newlines.
func (t *Texture) String() string {
	padded := make([]string, len(t.lines))
	for i, line := range t.lines {
		padded[i] = t.pad(line)
	}
	return strings.Join(padded, "\n")
}

// Tile renders n copies of the texture side by side.
func (t *Texture) Tile(n int) string {
	if n <= 0 {
		return ""
	}
	rows := make([]string, len(t.lines))
	for i, line := range t.lines {
		rows[i] = strings.Repeat(t.pad(line), n)
	}
	return strings.Join(rows, "\n")
}

func (t *Texture) pad(line string) string {
	if gap := t.width - cellWidth(line); gap > 0 {
		return line + strings.Repeat(" ", gap)
	}
	return line
}

func cellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w == 0 && text != "" {
		w = uniseg.StringWidth(text)
	}
	return w
}
