package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/o-magnata69/back-end-api/internal/platform/postgres"
	"github.com/o-magnata69/back-end-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		SchemaName:     "public",
		TableName:      "usuarios",
		ColumnName:     "nome",
		ConstraintName: "usuarios_pkey",
	}
}

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	err          error
}

func (m MockResult) LastInsertId() (int64, error) {
	return 0, m.err
}

func (m MockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, postgres.MapError(nil))

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "no rows", err: sql.ErrNoRows, expected: store.ErrNotFound},
		{name: "unique violation", err: newPgError("23505"), expected: store.ErrDuplicate},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", newPgError("23505")), expected: store.ErrDuplicate},
		{name: "not null violation", err: newPgError("23502"), expected: store.ErrInvalidEntity},
		{name: "check violation", err: newPgError("23514"), expected: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := postgres.MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.expected)
		})
	}

	t.Run("unknown error passes through", func(t *testing.T) {
		original := errors.New("connection refused")
		assert.Same(t, original, postgres.MapError(original))
	})
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("nil result", func(t *testing.T) {
		assert.Error(t, postgres.CheckRowsAffected(nil, store.ErrUserNotFound))
	})

	t.Run("one row", func(t *testing.T) {
		assert.NoError(t, postgres.CheckRowsAffected(MockResult{rowsAffected: 1}, store.ErrUserNotFound))
	})

	t.Run("zero rows returns the given not-found error", func(t *testing.T) {
		err := postgres.CheckRowsAffected(MockResult{rowsAffected: 0}, store.ErrQuestionNotFound)
		assert.ErrorIs(t, err, store.ErrQuestionNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("zero rows without a specific error", func(t *testing.T) {
		err := postgres.CheckRowsAffected(MockResult{rowsAffected: 0}, nil)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rows affected failure", func(t *testing.T) {
		err := postgres.CheckRowsAffected(MockResult{err: errors.New("driver failure")}, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reading affected rows")
	})
}
