package store

import (
	"context"
	"database/sql"

	"github.com/o-magnata69/back-end-api/internal/domain"
)

// QuestionStore defines the interface for question data persistence.
type QuestionStore interface {
	// List returns every question in database order.
	List(ctx context.Context) ([]*domain.Question, error)

	// GetByID retrieves a question by id.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Question, error)

	// GetByIDForUpdate is GetByID with a row lock held until the surrounding
	// transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Question, error)

	// Create inserts a new question and sets question.ID to the generated id.
	Create(ctx context.Context, question *domain.Question) error

	// Update overwrites the four content fields of the row with question.ID.
	// Returns ErrQuestionNotFound if no row was affected.
	Update(ctx context.Context, question *domain.Question) error

	// Delete removes the question with the given id.
	// Returns ErrQuestionNotFound if no row was affected.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new QuestionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) QuestionStore
}
