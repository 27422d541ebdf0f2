package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/store"
)

// MockQuestionStore is an in-memory store.QuestionStore for testing.
type MockQuestionStore struct {
	ListFn   func(ctx context.Context) ([]*domain.Question, error)
	CreateFn func(ctx context.Context, question *domain.Question) error

	mu        sync.Mutex
	questions map[int64]domain.Question
	nextID    int64

	CreateCalls int
}

// NewMockQuestionStore creates an empty MockQuestionStore.
func NewMockQuestionStore() *MockQuestionStore {
	return &MockQuestionStore{
		questions: make(map[int64]domain.Question),
		nextID:    1,
	}
}

var _ store.QuestionStore = (*MockQuestionStore)(nil)

func (m *MockQuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.questions))
	for id := range m.questions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	questions := make([]*domain.Question, 0, len(ids))
	for _, id := range ids {
		q := m.questions[id]
		questions = append(questions, &q)
	}
	return questions, nil
}

func (m *MockQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.questions[id]
	if !ok {
		return nil, store.ErrQuestionNotFound
	}
	return &q, nil
}

func (m *MockQuestionStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Question, error) {
	return m.GetByID(ctx, id)
}

func (m *MockQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, question)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	question.ID = m.nextID
	m.nextID++
	m.questions[question.ID] = *question
	return nil
}

func (m *MockQuestionStore) Update(ctx context.Context, question *domain.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.questions[question.ID]; !ok {
		return store.ErrQuestionNotFound
	}
	m.questions[question.ID] = *question
	return nil
}

func (m *MockQuestionStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.questions[id]; !ok {
		return store.ErrQuestionNotFound
	}
	delete(m.questions, id)
	return nil
}

func (m *MockQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return m
}

// Len returns the number of stored questions.
func (m *MockQuestionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.questions)
}
