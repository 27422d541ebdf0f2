package postgres

import (
	"context"

	"github.com/o-magnata69/back-end-api/internal/store"
)

// PostgresHealthStore checks that the database answers queries.
type PostgresHealthStore struct {
	db store.DBTX
}

// NewPostgresHealthStore creates a health store over db.
func NewPostgresHealthStore(db store.DBTX) *PostgresHealthStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresHealthStore{db: db}
}

var _ store.Pinger = (*PostgresHealthStore)(nil)

// Ping runs SELECT 1 and returns the driver error unchanged.
func (s *PostgresHealthStore) Ping(ctx context.Context) error {
	var one int
	return s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}
