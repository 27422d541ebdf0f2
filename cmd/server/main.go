// Package main implements the entry point for the back-end API server, which
// serves CRUD routes for usuarios and questoes over PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/o-magnata69/back-end-api/internal/platform/postgres"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

// run parses flags, wires the application and either runs a migration
// command or serves HTTP until shutdown.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(stderr)
	migrateCmd := fs.String("migrate", "",
		"run a migration command (up, down, status, version, reset) and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *migrateCmd != "" && !postgres.IsValidMigrationCommand(*migrateCmd) {
		return fmt.Errorf("invalid -migrate value %q: expected one of %v",
			*migrateCmd, postgres.ValidMigrationCommands)
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	pool, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if *migrateCmd != "" {
		defer func() {
			if cerr := pool.Close(); cerr != nil {
				logger.Error("error closing database pool", "error", cerr)
			}
		}()
		return handleMigrations(ctx, pool, *migrateCmd, logger)
	}

	if cfg.Database.AutoMigrate {
		if err := handleMigrations(ctx, pool, postgres.MigrateUp, logger); err != nil {
			_ = pool.Close()
			return err
		}
	}

	app := newApplication(cfg, logger, pool.DB(), pool)
	return app.Run(ctx)
}
