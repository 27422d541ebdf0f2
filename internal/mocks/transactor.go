package mocks

import (
	"context"

	"github.com/o-magnata69/back-end-api/internal/store"
)

// MockTransactor implements store.Transactor without a database.
// fn runs with a nil *sql.Tx; mock stores ignore it in WithTx.
type MockTransactor struct {
	// BeginErr, when set, is returned without running fn.
	BeginErr error

	Calls      int
	Committed  int
	RolledBack int
}

var _ store.Transactor = (*MockTransactor)(nil)

// RunInTx implements store.Transactor.
func (m *MockTransactor) RunInTx(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.BeginErr != nil {
		return m.BeginErr
	}
	if err := fn(ctx, nil); err != nil {
		m.RolledBack++
		return err
	}
	m.Committed++
	return nil
}
