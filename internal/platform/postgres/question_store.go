package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/platform/logger"
	"github.com/o-magnata69/back-end-api/internal/store"
)

const questionColumns = "id, enunciado, disciplina, tema, nivel"

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresQuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the QuestionStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresQuestionStore(db store.DBTX, logger *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var q domain.Question
	if err := row.Scan(&q.ID, &q.Enunciado, &q.Disciplina, &q.Tema, &q.Nivel); err != nil {
		return nil, err
	}
	return &q, nil
}

// List implements store.QuestionStore.List
func (s *PostgresQuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, "SELECT "+questionColumns+" FROM questoes")
	if err != nil {
		log.Error("failed to list questions", slog.String("error", err.Error()))
		return nil, store.NewStoreError("question", "list", "failed to query questions", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close question rows", slog.String("error", cerr.Error()))
		}
	}()

	questions := make([]*domain.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			log.Error("failed to scan question row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("question", "list", "failed to scan question", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating question rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("question", "list", "failed to iterate questions", MapError(err))
	}

	log.Debug("questions listed", slog.Int("count", len(questions)))
	return questions, nil
}

// GetByID implements store.QuestionStore.GetByID
// Returns store.ErrQuestionNotFound if the question does not exist.
func (s *PostgresQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	return s.get(ctx, id, "SELECT "+questionColumns+" FROM questoes WHERE id = $1")
}

// GetByIDForUpdate implements store.QuestionStore.GetByIDForUpdate
func (s *PostgresQuestionStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Question, error) {
	return s.get(ctx, id, "SELECT "+questionColumns+" FROM questoes WHERE id = $1 FOR UPDATE")
}

func (s *PostgresQuestionStore) get(ctx context.Context, id int64, query string) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q, err := scanQuestion(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("question not found", slog.Int64("question_id", id))
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to get question by ID",
			slog.String("error", err.Error()),
			slog.Int64("question_id", id))
		return nil, store.NewStoreError("question", "get", "failed to get question by ID", MapError(err))
	}

	return q, nil
}

// Create implements store.QuestionStore.Create
func (s *PostgresQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := question.Validate(); err != nil {
		log.Warn("question validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO questoes (enunciado, disciplina, tema, nivel)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		question.Enunciado,
		question.Disciplina,
		question.Tema,
		question.Nivel,
	).Scan(&question.ID)
	if err != nil {
		log.Error("failed to create question", slog.String("error", err.Error()))
		return store.NewStoreError("question", "create", "failed to create question", MapError(err))
	}

	log.Info("question created successfully", slog.Int64("question_id", question.ID))
	return nil
}

// Update implements store.QuestionStore.Update
func (s *PostgresQuestionStore) Update(ctx context.Context, question *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := question.Validate(); err != nil {
		log.Warn("question validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("question_id", question.ID))
		return err
	}

	query := `
		UPDATE questoes
		SET enunciado = $1, disciplina = $2, tema = $3, nivel = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		question.Enunciado,
		question.Disciplina,
		question.Tema,
		question.Nivel,
		question.ID,
	)
	if err != nil {
		log.Error("failed to update question",
			slog.String("error", err.Error()),
			slog.Int64("question_id", question.ID))
		return store.NewStoreError("question", "update", "failed to update question", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrQuestionNotFound); err != nil {
		return err
	}

	log.Info("question updated successfully", slog.Int64("question_id", question.ID))
	return nil
}

// Delete implements store.QuestionStore.Delete
func (s *PostgresQuestionStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM questoes WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete question",
			slog.String("error", err.Error()),
			slog.Int64("question_id", id))
		return store.NewStoreError("question", "delete", "failed to delete question", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrQuestionNotFound); err != nil {
		return err
	}

	log.Info("question deleted successfully", slog.Int64("question_id", id))
	return nil
}

// WithTx implements store.QuestionStore.WithTx
func (s *PostgresQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return &PostgresQuestionStore{
		db:     tx,
		logger: s.logger,
	}
}
