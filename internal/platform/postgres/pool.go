package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/o-magnata69/back-end-api/internal/config"
)

// startupPingTimeout bounds the optional eager connectivity check.
const startupPingTimeout = 5 * time.Second

// Pool is the process-wide connection pool. It is created once at startup
// and shared by reference with every store.
type Pool struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// Open builds the connection pool described by cfg.
//
// No connection is dialed here unless cfg.PingOnStartup is set: a missing or
// unreachable database surfaces on the first query instead.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Pool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pcfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		pcfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	p, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if cfg.PingOnStartup {
		pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
		defer cancel()
		if err := p.Ping(pingCtx); err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		logger.Info("database connection verified")
	}

	logger.Info("database pool created",
		slog.Int("max_conns", int(pcfg.MaxConns)),
		slog.Bool("ping_on_startup", cfg.PingOnStartup))

	return &Pool{pool: p, sqlDB: stdlib.OpenDBFromPool(p)}, nil
}

// DB returns the pool as a *sql.DB for the database/sql based stores.
func (p *Pool) DB() *sql.DB {
	if p == nil {
		return nil
	}
	return p.sqlDB
}

// Close releases every connection held by the pool.
func (p *Pool) Close() error {
	if p == nil {
		return nil
	}
	var err error
	if p.sqlDB != nil {
		err = p.sqlDB.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return err
}
