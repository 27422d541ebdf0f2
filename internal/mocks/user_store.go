package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/store"
)

// MockUserStore is an in-memory store.UserStore for testing.
// Ids are assigned from 1 upward and never reused.
type MockUserStore struct {
	// Function fields for customizable behavior
	ListFn   func(ctx context.Context) ([]*domain.User, error)
	CreateFn func(ctx context.Context, user *domain.User) error
	UpdateFn func(ctx context.Context, user *domain.User) error
	DeleteFn func(ctx context.Context, id int64) error

	mu     sync.Mutex
	users  map[int64]domain.User
	nextID int64

	// CreateCalls counts calls to Create, including failed ones.
	CreateCalls int
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:  make(map[int64]domain.User),
		nextID: 1,
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		u := m.users[id]
		users = append(users, &u)
	}
	return users, nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

// GetByIDForUpdate implements the UserStore interface
func (m *MockUserStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	return m.GetByID(ctx, id)
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = *user
	return nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	m.users[user.ID] = *user
	return nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// WithTx returns the same store; the mock has no transaction state.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// Len returns the number of stored users.
func (m *MockUserStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}
