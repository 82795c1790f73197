// internal/words/words.go
//
// Word categories for the game.
//
// Responsibilities:
//   - Hold a named, ordered list of candidate words (a Category).
//   - Build categories from newline-delimited sources (files, readers).
//   - Checked, index-based access and uniform random selection.
//
// Source format:
//   - One word or phrase per line, in file order.
//   - The line terminator ("\n" or "\r\n") is removed; nothing else is trimmed,
//     so phrases keep their inner spaces.
//   - Blank lines (empty or only spaces) are skipped.

package words

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"strings"

	"github.com/Diego-Ivan/adivinador/internal/errs"
)

// Aliases of the shared sentinels, so callers of this package need only one import.
var (
	ErrInvalidArgument   = errs.ErrInvalidArgument
	ErrSourceUnavailable = errs.ErrSourceUnavailable
	ErrIndexOutOfRange   = errs.ErrIndexOutOfRange
)

// Category is a named pool of candidate words.
type Category struct {
	name  string
	words []string
}

// New creates an empty category.
func New(name string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("category name: %w", ErrInvalidArgument)
	}
	return &Category{name: name}, nil
}

// FromReader builds a category from newline-delimited words.
func FromReader(name string, r io.Reader) (*Category, error) {
	c, err := New(name)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := sc.Text()
		if strings.TrimSpace(w) == "" {
			continue
		}
		if err := c.Register(w); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("category %q: %w: %v", name, ErrSourceUnavailable, err)
	}
	return c, nil
}

// FromFile builds a category from the file at path inside fsys.
// Open failures are reported as ErrSourceUnavailable; callers decide whether
// a missing category is fatal.
func FromFile(fsys fs.FS, name, path string) (*Category, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("category %q (%s): %w: %v", name, path, ErrSourceUnavailable, err)
	}
	defer f.Close()
	return FromReader(name, f)
}

// Register appends word to the category. Blank words are rejected: a word
// made only of spaces would start fully revealed.
func (c *Category) Register(word string) error {
	if strings.TrimSpace(word) == "" {
		return fmt.Errorf("word: %w", ErrInvalidArgument)
	}
	c.words = append(c.words, word)
	return nil
}

// Name returns the display name of the category.
func (c *Category) Name() string { return c.name }

// Len returns the number of registered words.
func (c *Category) Len() int { return len(c.words) }

// Word returns the word at index i.
func (c *Category) Word(i int) (string, error) {
	if i < 0 || i >= len(c.words) {
		return "", fmt.Errorf("category %q word %d of %d: %w", c.name, i, len(c.words), ErrIndexOutOfRange)
	}
	return c.words[i], nil
}

// Words returns a copy of the words in registration order.
func (c *Category) Words() []string {
	return append([]string(nil), c.words...)
}

// Random returns a uniformly chosen word using rng.
func (c *Category) Random(rng *rand.Rand) (string, error) {
	if len(c.words) == 0 {
		return "", fmt.Errorf("category %q is empty: %w", c.name, ErrIndexOutOfRange)
	}
	return c.words[rng.Intn(len(c.words))], nil
}
