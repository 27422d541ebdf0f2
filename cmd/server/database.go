package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/o-magnata69/back-end-api/internal/config"
	"github.com/o-magnata69/back-end-api/internal/platform/postgres"
)

// setupAppDatabase builds the process-wide connection pool.
// The pool is lazy unless database.ping_on_startup is set, so an absent
// database only shows up as failing queries and in the health route.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*postgres.Pool, error) {
	pool, err := postgres.Open(ctx, cfg.Database, logger.With("component", "database"))
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}
	if cfg.Database.URL == "" {
		logger.Warn("no database url configured, falling back to libpq defaults")
	}
	return pool, nil
}
