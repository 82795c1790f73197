package assets

import (
	"embed"
	"io/fs"
)

//go:embed categorias/*.txt texturas/*.txt sql/*.sql
var FS embed.FS

// Category names a word list file and the title shown in the menu.
type Category struct {
	Name string
	File string
}

// Catalog is the fixed set of categories the game ships with, in menu order.
var Catalog = []Category{
	{Name: "Frutas", File: "frutas.txt"},
	{Name: "Animales", File: "animales.txt"},
	{Name: "Países", File: "paises.txt"},
	{Name: "Profesiones", File: "profesiones.txt"},
}

// Texture file names.
const (
	SplashTexture  = "splash.txt"
	HeartTexture   = "corazon.txt"
	VictoryTexture = "victoria.txt"
	DefeatTexture  = "derrota.txt"
)

// Categories returns the embedded category files rooted at their directory.
func Categories() fs.FS { return sub("categorias") }

// Textures returns the embedded texture files rooted at their directory.
func Textures() fs.FS { return sub("texturas") }

// Migrations returns the embedded SQL migrations rooted at their directory.
func Migrations() fs.FS { return sub("sql") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(FS, dir)
	if err != nil {
		// dir is a literal embedded above
		panic(err)
	}
	return f
}
