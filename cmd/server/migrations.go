package main

import (
	"context"
	"log/slog"

	"github.com/o-magnata69/back-end-api/internal/platform/postgres"
)

// handleMigrations runs one goose command against the pool's database.
func handleMigrations(ctx context.Context, pool *postgres.Pool, command string, logger *slog.Logger) error {
	logger.Info("executing migrations", "command", command)
	return postgres.Migrate(ctx, pool.DB(), command, logger)
}
