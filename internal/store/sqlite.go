// internal/store/sqlite.go
//
// SQLite word source.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//   - Reading categories in menu order and importing categories from other sources.
//
// The database only stores word lists; no game state is written.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/Diego-Ivan/adivinador/internal/words"
)

// SQLite is a Source backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at path and applies
// the migrations found in migrations.
func OpenSQLite(ctx context.Context, path string, migrations fs.FS) (*SQLite, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, words.ErrSourceUnavailable, err)
	}
	if err := migrate(ctx, db, migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

/**
 * openDB opens a SQLite database file.
 *
 * - Ensures the parent directory exists for relative paths (e.g. ./data/palabras.db).
 * - Configures busy timeout and WAL journaling mode.
 * - Enforces foreign keys.
 */
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	// A single connection keeps PRAGMAs and the WAL setup on one handle.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * migrate applies *.sql files from migrations in lexical order.
 *
 * - Uses a _migrations table to track applied files.
 * - Each file runs inside its own transaction together with its record.
 */
func migrate(ctx context.Context, db *sql.DB, migrations fs.FS) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(migrations, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Categories reads every category with at least one word, ordered by
// category position and word position.
func (s *SQLite) Categories(ctx context.Context) ([]*words.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.name, w.word
        FROM categories c
        JOIN words w ON w.category_id = c.id
        ORDER BY c.position ASC, c.id ASC, w.position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w: %v", words.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var (
		out      []*words.Category
		cur      *words.Category
		lastName string
		started  bool
	)
	for rows.Next() {
		var name, word string
		if err := rows.Scan(&name, &word); err != nil {
			return nil, err
		}
		if !started || name != lastName {
			started, lastName = true, name
			if cur, err = words.New(name); err != nil {
				log.Warn().Err(err).Msg("category with blank name skipped")
				cur = nil
			} else {
				out = append(out, cur)
			}
		}
		if cur == nil {
			continue
		}
		if err := cur.Register(word); err != nil {
			log.Warn().Err(err).Str("category", name).Msg("blank word skipped")
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return compact(out), nil
}

// compact drops categories left without words after skipping blank rows.
func compact(cats []*words.Category) []*words.Category {
	out := cats[:0]
	for _, c := range cats {
		if c.Len() > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Empty reports whether the database holds no words yet.
func (s *SQLite) Empty(ctx context.Context) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// Import stores cats, replacing the words of categories that already exist.
// Category order in the menu follows the order of cats.
func (s *SQLite) Import(ctx context.Context, cats []*words.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for pos, c := range cats {
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO categories (name, position) VALUES (?, ?)
            ON CONFLICT(name) DO UPDATE SET position = excluded.position`,
			c.Name(), pos,
		); err != nil {
			return fmt.Errorf("insert category %q: %w", c.Name(), err)
		}
		var id int64
		if err := tx.QueryRowContext(ctx, `SELECT id FROM categories WHERE name = ?`, c.Name()).Scan(&id); err != nil {
			return fmt.Errorf("lookup category %q: %w", c.Name(), err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM words WHERE category_id = ?`, id); err != nil {
			return fmt.Errorf("clear category %q: %w", c.Name(), err)
		}
		for i, w := range c.Words() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO words (category_id, word, position) VALUES (?, ?, ?)`,
				id, w, i,
			); err != nil {
				return fmt.Errorf("insert word %d of %q: %w", i, c.Name(), err)
			}
		}
		log.Debug().Str("category", c.Name()).Int("words", c.Len()).Msg("category imported")
	}
	return tx.Commit()
}

// Seed imports the categories of from when the database has no words yet.
// It reports how many categories were imported.
func (s *SQLite) Seed(ctx context.Context, from Source) (int, error) {
	empty, err := s.Empty(ctx)
	if err != nil || !empty {
		return 0, err
	}
	cats, err := from.Categories(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.Import(ctx, cats); err != nil {
		return 0, err
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name()
	}
	log.Info().Str("categories", strings.Join(names, ",")).Msg("word database seeded")
	return len(cats), nil
}
