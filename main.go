package main

import (
	"context"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Diego-Ivan/adivinador/assets"
	"github.com/Diego-Ivan/adivinador/internal/config"
	"github.com/Diego-Ivan/adivinador/internal/session"
	"github.com/Diego-Ivan/adivinador/internal/store"
	"github.com/Diego-Ivan/adivinador/internal/texture"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	closeLog := setupLogging(cfg)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var src store.Source = store.NewFiles(dirOr(cfg.CategoriesDir, assets.Categories()), assets.Catalog)
	if cfg.DBPath != "" {
		db, err := store.OpenSQLite(ctx, cfg.DBPath, assets.Migrations())
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open word database")
		}
		defer db.Close()
		if _, err := db.Seed(ctx, src); err != nil {
			log.Fatal().Err(err).Msg("failed to seed word database")
		}
		src = db
	}

	s := session.New(session.Options{
		Source:   src,
		Textures: loadTextures(dirOr(cfg.TexturesDir, assets.Textures())),
		Display:  session.NewDisplay(os.Stdout, cfg.ClearScreen),
		In:       os.Stdin,
		Lives:    cfg.Lives,
		Seed:     cfg.Seed,
	})
	if err := s.Run(ctx); err != nil {
		log.Error().Err(err).Msg("session ended")
		closeLog()
		os.Exit(1)
	}
	played, won := s.Stats()
	log.Info().Int("played", played).Int("won", won).Msg("session finished")
}

// setupLogging applies LOG_LEVEL and points the global logger at LOG_FILE
// (JSON) or at stderr (console). The returned func closes the file.
func setupLogging(cfg config.Config) func() {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	closer := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.LogFile).Msg("failed to open log file")
		}
		out = f
		closer = func() { _ = f.Close() }
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closer
}

func dirOr(dir string, fallback fs.FS) fs.FS {
	if dir == "" {
		return fallback
	}
	return os.DirFS(dir)
}

// loadTextures reads the session banners. A missing texture is logged and
// left nil so the display falls back to plain text.
func loadTextures(fsys fs.FS) session.Textures {
	load := func(name string) *texture.Texture {
		t, err := texture.Load(fsys, name)
		if err != nil {
			log.Warn().Err(err).Str("texture", name).Msg("texture unavailable")
			return nil
		}
		return t
	}
	return session.Textures{
		Splash:  load(assets.SplashTexture),
		Heart:   load(assets.HeartTexture),
		Victory: load(assets.VictoryTexture),
		Defeat:  load(assets.DefeatTexture),
	}
}
