package store

import (
	"context"
	"database/sql"

	"github.com/o-magnata69/back-end-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Implementations persist domain.User.SenhaHash; plaintext credentials never
// reach the store.
type UserStore interface {
	// List returns every user in database order. An empty collection yields
	// an empty, non-nil slice.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by id.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByIDForUpdate is GetByID with a row lock held until the surrounding
	// transaction ends. Only meaningful on a store bound with WithTx.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.User, error)

	// Create inserts a new user and sets user.ID to the generated id.
	Create(ctx context.Context, user *domain.User) error

	// Update overwrites nome, email and senha of the row with user.ID.
	// Returns ErrUserNotFound if no row was affected.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes the user with the given id.
	// Returns ErrUserNotFound if no row was affected.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
