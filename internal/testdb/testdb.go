// Package testdb provides helpers for tests that need a real PostgreSQL
// database. Every helper skips the calling test when no database URL is
// configured, so the default test run never requires Postgres.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/o-magnata69/back-end-api/internal/config"
	"github.com/o-magnata69/back-end-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// Timeout bounds connection setup and migrations.
const Timeout = 10 * time.Second

// urlEnvVars are checked in order; URL_BD is the name the service has always used.
var urlEnvVars = []string{"DATABASE_URL", "URL_BD"}

// URL returns the first configured database URL, or "" when none is set.
func URL() string {
	for _, name := range urlEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Available reports whether integration tests can run.
func Available() bool {
	return URL() != ""
}

// MaskURL hides the password of a database URL so it can be logged.
func MaskURL(dbURL string) string {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}
	if parsed.User != nil {
		if _, ok := parsed.User.Password(); ok {
			parsed.User = url.UserPassword(parsed.User.Username(), "****")
		}
	}
	return parsed.String()
}

// Open connects to the configured database, applies all migrations and
// registers cleanup on t. The test is skipped when no URL is configured.
func Open(t *testing.T) *postgres.Pool {
	t.Helper()

	dbURL := URL()
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	pool, err := postgres.Open(ctx, config.DatabaseConfig{URL: dbURL, PingOnStartup: true}, nil)
	require.NoError(t, err, "connecting to %s", MaskURL(dbURL))
	t.Cleanup(func() { _ = pool.Close() })

	require.NoError(t, postgres.Migrate(ctx, pool.DB(), postgres.MigrateUp, nil))
	return pool
}

// WithTx runs fn inside a transaction that is always rolled back, so the
// test leaves no rows behind.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("rollback failed: %v", err)
		}
	}()

	fn(t, tx)
}
