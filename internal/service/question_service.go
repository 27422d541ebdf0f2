package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/platform/logger"
	"github.com/o-magnata69/back-end-api/internal/store"
)

// QuestionService provides the operations behind the /questoes routes.
type QuestionService interface {
	ListQuestions(ctx context.Context) ([]*domain.Question, error)
	GetQuestion(ctx context.Context, id int64) (*domain.Question, error)
	CreateQuestion(ctx context.Context, enunciado, disciplina, tema, nivel string) (*domain.Question, error)
	UpdateQuestion(ctx context.Context, id int64, payload domain.Payload) error
	DeleteQuestion(ctx context.Context, id int64) error
}

// QuestionServiceImpl implements the QuestionService interface
type QuestionServiceImpl struct {
	questionStore store.QuestionStore
	txr           store.Transactor
	logger        *slog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionStore store.QuestionStore, txr store.Transactor, logger *slog.Logger) QuestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionServiceImpl{
		questionStore: questionStore,
		txr:           txr,
		logger:        logger.With("component", "question_service"),
	}
}

// ListQuestions implements QuestionService.
func (s *QuestionServiceImpl) ListQuestions(ctx context.Context) ([]*domain.Question, error) {
	questions, err := s.questionStore.List(ctx)
	if err != nil {
		return nil, NewServiceError("list questions", err)
	}
	return questions, nil
}

// GetQuestion implements QuestionService.
func (s *QuestionServiceImpl) GetQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	question, err := s.questionStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to retrieve question", "error", err, "question_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve question: %w", err)
	}

	return question, nil
}

// CreateQuestion implements QuestionService.
func (s *QuestionServiceImpl) CreateQuestion(
	ctx context.Context,
	enunciado, disciplina, tema, nivel string,
) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	question, err := domain.NewQuestion(enunciado, disciplina, tema, nivel)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	if err := s.questionStore.Create(ctx, question); err != nil {
		if !isClientError(err) {
			log.Error("failed to save question to database", "error", err)
		}
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	log.Info("question created successfully", "question_id", question.ID)
	return question, nil
}

// UpdateQuestion implements QuestionService.
// Absent or falsy payload fields keep their stored value.
func (s *QuestionServiceImpl) UpdateQuestion(ctx context.Context, id int64, payload domain.Payload) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.txr.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.questionStore.WithTx(tx)

		question, err := txStore.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to retrieve question for update: %w", err)
		}

		if err := question.Merge(payload); err != nil {
			return err
		}

		return txStore.Update(ctx, question)
	})
	if err != nil {
		if isClientError(err) {
			log.Debug("question update rejected", "error", err, "question_id", id)
		} else {
			log.Error("failed to update question", "error", err, "question_id", id)
		}
		return fmt.Errorf("failed to update question: %w", err)
	}

	log.Info("question updated successfully", "question_id", id)
	return nil
}

// DeleteQuestion implements QuestionService.
func (s *QuestionServiceImpl) DeleteQuestion(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.txr.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.questionStore.WithTx(tx)

		if _, err := txStore.GetByIDForUpdate(ctx, id); err != nil {
			return fmt.Errorf("failed to retrieve question for deletion: %w", err)
		}

		return txStore.Delete(ctx, id)
	})
	if err != nil {
		if isClientError(err) {
			log.Debug("question delete rejected", "error", err, "question_id", id)
		} else {
			log.Error("failed to delete question", "error", err, "question_id", id)
		}
		return fmt.Errorf("failed to delete question: %w", err)
	}

	log.Info("question deleted successfully", "question_id", id)
	return nil
}
