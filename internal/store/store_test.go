package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Diego-Ivan/adivinador/assets"
	"github.com/Diego-Ivan/adivinador/internal/words"
)

func category(t *testing.T, name string, list ...string) *words.Category {
	t.Helper()
	c, err := words.FromReader(name, strings.NewReader(strings.Join(list, "\n")))
	if err != nil {
		t.Fatalf("FromReader(%q): %v", name, err)
	}
	return c
}

func names(cats []*words.Category) string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name()
	}
	return strings.Join(out, ",")
}

func TestMemory_SkipsEmptyCategories(t *testing.T) {
	empty, _ := words.New("Vacía")
	m := NewMemory(category(t, "Frutas", "pera"), empty, nil)
	m.Add(category(t, "Colores", "rojo"))

	cats, err := m.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if got := names(cats); got != "Frutas,Colores" {
		t.Fatalf("categories=%s", got)
	}
}

func TestFiles_SkipsMissingAndEmpty(t *testing.T) {
	fsys := fstest.MapFS{
		"frutas.txt": {Data: []byte("manzana\npera\n")},
		"vacia.txt":  {Data: []byte("\n\n")},
		"paises.txt": {Data: []byte("perú\n")},
	}
	src := NewFiles(fsys, []assets.Category{
		{Name: "Frutas", File: "frutas.txt"},
		{Name: "Animales", File: "animales.txt"},
		{Name: "Vacía", File: "vacia.txt"},
		{Name: "Países", File: "paises.txt"},
	})

	cats, err := src.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if got := names(cats); got != "Frutas,Países" {
		t.Fatalf("categories=%s", got)
	}
	if cats[0].Len() != 2 {
		t.Fatalf("frutas has %d words, want 2", cats[0].Len())
	}
}

func TestFiles_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := NewFiles(fstest.MapFS{}, assets.Catalog)
	if _, err := src.Categories(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestFiles_EmbeddedCatalog(t *testing.T) {
	cats, err := NewFiles(assets.Categories(), assets.Catalog).Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != len(assets.Catalog) {
		t.Fatalf("loaded %d categories, want %d", len(cats), len(assets.Catalog))
	}
}

func TestSQLite_SeedImportAndRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "palabras.db")

	db, err := OpenSQLite(ctx, path, assets.Migrations())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	empty, err := db.Empty(ctx)
	if err != nil || !empty {
		t.Fatalf("Empty=(%v,%v), want true", empty, err)
	}

	seed := NewMemory(
		category(t, "Frutas", "manzana", "pera", "sandía"),
		category(t, "Animales", "oso polar"),
	)
	n, err := db.Seed(ctx, seed)
	if err != nil || n != 2 {
		t.Fatalf("Seed=(%d,%v), want 2", n, err)
	}
	if n, err := db.Seed(ctx, seed); err != nil || n != 0 {
		t.Fatalf("second Seed=(%d,%v), want 0", n, err)
	}

	cats, err := db.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if got := names(cats); got != "Frutas,Animales" {
		t.Fatalf("categories=%s", got)
	}
	if w, _ := cats[0].Word(2); w != "sandía" {
		t.Fatalf("word 2=%q, want sandía", w)
	}
	if w, _ := cats[1].Word(0); w != "oso polar" {
		t.Fatalf("phrase=%q, want %q", w, "oso polar")
	}

	// Re-import replaces the words of an existing category.
	if err := db.Import(ctx, []*words.Category{category(t, "Frutas", "kiwi")}); err != nil {
		t.Fatalf("Import: %v", err)
	}
	cats, _ = db.Categories(ctx)
	if cats[0].Name() != "Frutas" || cats[0].Len() != 1 {
		t.Fatalf("frutas after import: %q with %d words", cats[0].Name(), cats[0].Len())
	}
}

func TestSQLite_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "palabras.db")
	for i := 0; i < 2; i++ {
		db, err := OpenSQLite(ctx, path, assets.Migrations())
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		_ = db.Close()
	}
}

func TestSQLite_SkipsBlankRows(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "palabras.db"), assets.Migrations())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	// Rows written by hand, bypassing Import: a blank category name and
	// space-only words must not leak into neighbouring categories.
	for _, q := range []string{
		`INSERT INTO categories (id, name, position) VALUES (1, 'Frutas', 0), (2, '  ', 1), (3, 'Colores', 2), (4, 'Vacía', 3)`,
		`INSERT INTO words (category_id, word, position) VALUES
			(1, 'pera', 0), (1, '   ', 1),
			(2, 'fantasma', 0),
			(3, 'rojo', 0),
			(4, ' ', 0)`,
	} {
		if _, err := db.db.ExecContext(ctx, q); err != nil {
			t.Fatalf("exec: %v", err)
		}
	}

	cats, err := db.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if got := names(cats); got != "Frutas,Colores" {
		t.Fatalf("categories=%s", got)
	}
	if cats[0].Len() != 1 || cats[1].Len() != 1 {
		t.Fatalf("word counts=(%d,%d), want (1,1)", cats[0].Len(), cats[1].Len())
	}
}
