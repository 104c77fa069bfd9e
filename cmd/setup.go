package main

import (
	"context"
	"fmt"
	"os"

	"github.com/anaphygon/filmdex/internal/shared"
	"github.com/anaphygon/filmdex/internal/store"
	"github.com/urfave/cli/v3"
)

// Setup creates the config file, the data directory with its three
// record files, and the metadata cache database. Every step is
// idempotent, so re-running setup is safe.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		if loaded, err := shared.LoadConfig(configPath); err == nil {
			config = loaded
		} else {
			r.logger.Warn("failed to load config, using defaults", "error", err)
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
		} else if config, err = shared.LoadConfig(configPath); err != nil {
			return fmt.Errorf("failed to load created config: %w", err)
		}
	}

	paths := store.NewPaths(config.Data.Directory)
	r.logger.Info("initializing data directory", "dir", paths.Dir)
	r.store.Init(paths)

	if config.Cache.Path != "" {
		r.logger.Info("initializing movie cache", "path", config.Cache.Path)
		db, err := shared.NewDatabase(config.Cache.Path)
		if err != nil {
			return fmt.Errorf("failed to create cache database: %w", err)
		}
		defer db.Close()

		if err := shared.RunMigrations(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	r.writePlainln("✓ Setup complete")
	r.writePlain("Data directory: %s\n", paths.Dir)
	return nil
}
