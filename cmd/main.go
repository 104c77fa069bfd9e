package main

import (
	"context"
	"os"

	"github.com/anaphygon/filmdex/internal/repositories"
	"github.com/anaphygon/filmdex/internal/services"
	"github.com/anaphygon/filmdex/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}

	var metadata services.Metadata = services.NewTMDBService(
		config.TMDB.APIKey, config.TMDB.BaseURL, nil, config.TMDB.RateLimit,
	)

	// Front the TMDB client with the SQLite lookup cache when configured.
	if config.Cache.Path != "" {
		if db, err := shared.NewDatabase(config.Cache.Path); err == nil {
			shared.ConfigureDatabase(db, config.Cache.MaxOpenConns, config.Cache.MaxIdleConns)
			if err := shared.RunMigrations(db); err == nil {
				metadata = repositories.NewCachedMetadata(metadata, repositories.NewMovieCache(db), logger)
			} else {
				logger.Warn("movie cache migrations failed, caching disabled", "error", err)
			}
		} else {
			logger.Warn("movie cache unavailable", "path", config.Cache.Path, "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Logger:   logger,
		Metadata: metadata,
	})

	runner.store.Init(runner.paths)
	runner.session.Bootstrap()

	app := &cli.Command{
		Name:     "filmdex",
		Usage:    "Manage a flat-file movie catalog with TMDB imports",
		Version:  "1.0.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
