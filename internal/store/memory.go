// internal/store/memory.go
//
// Word sources for the game and the in-memory implementation.
//
// A Source yields the categories offered in the menu, in menu order.
// Implementations:
//   - Memory (this file): categories built in-process, used for tests and
//     for combining sources.
//   - Files (files.go): newline-delimited word files in an fs.FS, either a
//     directory on disk or the embedded defaults.
//   - SQLite (sqlite.go): a word database with embedded migrations.

package store

import (
	"context"
	"sync"

	"github.com/Diego-Ivan/adivinador/internal/words"
)

// Source defines how the game obtains its categories.
type Source interface {
	// Categories returns every playable category.
	// Categories that cannot be read are skipped, not reported as errors.
	Categories(ctx context.Context) ([]*words.Category, error)
}

// Memory is a Source holding already-built categories.
type Memory struct {
	mu   sync.RWMutex
	cats []*words.Category
}

// NewMemory constructs a Memory source with the given categories.
func NewMemory(cats ...*words.Category) *Memory {
	m := &Memory{}
	for _, c := range cats {
		m.Add(c)
	}
	return m
}

// Add appends a category; nil and empty categories are ignored.
func (m *Memory) Add(c *words.Category) {
	if c == nil || c.Len() == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cats = append(m.cats, c)
}

// Categories returns the stored categories in insertion order.
func (m *Memory) Categories(ctx context.Context) ([]*words.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*words.Category(nil), m.cats...), nil
}
