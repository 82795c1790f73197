// internal/config/config.go
//
// Runtime configuration read from the environment.
// A .env file, when present, is loaded by main before Load runs.
//
// Environment variables:
//   ADIVINADOR_LIVES=4              lives at the start of each round
//   ADIVINADOR_CATEGORIES_DIR=path  directory with category word files (default: embedded)
//   ADIVINADOR_TEXTURES_DIR=path    directory with texture files (default: embedded)
//   ADIVINADOR_DB=path              SQLite word database (empty: disabled)
//   ADIVINADOR_SEED=0               word selection seed (0: wall clock)
//   ADIVINADOR_CLEAR=true           clear the screen between turns
//   LOG_LEVEL=warn                  zerolog level
//   LOG_FILE=path                   JSON log file (default: console on stderr)

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Diego-Ivan/adivinador/internal/errs"
	"github.com/Diego-Ivan/adivinador/internal/game"
)

// Config holds every setting the game reads at startup.
type Config struct {
	Lives         int
	CategoriesDir string
	TexturesDir   string
	DBPath        string
	Seed          int64
	ClearScreen   bool
	LogLevel      string
	LogFile       string
}

// Load reads the configuration from the environment, applying defaults.
func Load() (Config, error) {
	c := Config{
		CategoriesDir: getEnv("ADIVINADOR_CATEGORIES_DIR", ""),
		TexturesDir:   getEnv("ADIVINADOR_TEXTURES_DIR", ""),
		DBPath:        getEnv("ADIVINADOR_DB", ""),
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
		LogFile:       getEnv("LOG_FILE", ""),
	}

	var err error
	if c.Lives, err = envInt("ADIVINADOR_LIVES", game.DefaultLives); err != nil {
		return c, err
	}
	if c.Lives < 1 {
		return c, fmt.Errorf("ADIVINADOR_LIVES=%d: %w", c.Lives, errs.ErrInvalidArgument)
	}
	if c.Seed, err = envInt64("ADIVINADOR_SEED", 0); err != nil {
		return c, err
	}
	if c.ClearScreen, err = envBool("ADIVINADOR_CLEAR", true); err != nil {
		return c, err
	}
	return c, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s=%q: %w", k, v, errs.ErrInvalidArgument)
	}
	return n, nil
}

func envInt64(k string, def int64) (int64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%s=%q: %w", k, v, errs.ErrInvalidArgument)
	}
	return n, nil
}

func envBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s=%q: %w", k, v, errs.ErrInvalidArgument)
	}
	return b, nil
}
