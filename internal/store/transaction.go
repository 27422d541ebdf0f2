package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/o-magnata69/back-end-api/internal/platform/logger"
	"github.com/o-magnata69/back-end-api/internal/redact"
)

// TxFn is the unit of work run by a Transactor.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// Transactor runs functions inside a database transaction.
// Services depend on this rather than *sql.DB so the check-then-act
// sequences can be exercised without a database.
type Transactor interface {
	RunInTx(ctx context.Context, fn TxFn) error
}

// DBTransactor is the Transactor backed by a *sql.DB.
type DBTransactor struct {
	db *sql.DB
}

// NewDBTransactor creates a Transactor for db.
func NewDBTransactor(db *sql.DB) *DBTransactor {
	return &DBTransactor{db: db}
}

// RunInTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back when it returns an error or panics; a panic is
// re-raised after the rollback.
func (t *DBTransactor) RunInTx(ctx context.Context, fn TxFn) error {
	log := logger.FromContext(ctx).With(slog.String("component", "transaction"))

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin failed", slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback after panic failed",
				slog.String("error", redact.Error(rbErr)),
				slog.Any("panic", p))
		} else {
			log.Error("rolled back after panic", slog.Any("panic", p))
		}
		// ALLOW-PANIC: re-raised so the recoverer middleware sees it
		panic(p)
	}()

	if fnErr := fn(ctx, tx); fnErr != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error("rollback failed",
				slog.String("rollback_error", redact.Error(rbErr)),
				slog.String("cause", redact.Error(fnErr)))
			return fmt.Errorf("rollback: %v (cause: %w)", rbErr, fnErr)
		}
		log.Debug("rolled back", slog.String("cause", redact.Error(fnErr)))
		return fnErr
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}

	log.Debug("committed")
	return nil
}
