package mocks

import (
	"context"
	"database/sql"

	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockQuestionStore is a mock of store.QuestionStore for use with testify/mock
type TestifyMockQuestionStore struct {
	mock.Mock
}

var _ store.QuestionStore = (*TestifyMockQuestionStore)(nil)

func (m *TestifyMockQuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	args := m.Called(ctx)
	if qs, ok := args.Get(0).([]*domain.Question); ok {
		return qs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if q, ok := args.Get(0).(*domain.Question); ok {
		return q, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockQuestionStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if q, ok := args.Get(0).(*domain.Question); ok {
		return q, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	return m.Called(ctx, question).Error(0)
}

func (m *TestifyMockQuestionStore) Update(ctx context.Context, question *domain.Question) error {
	return m.Called(ctx, question).Error(0)
}

func (m *TestifyMockQuestionStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *TestifyMockQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return m
}
