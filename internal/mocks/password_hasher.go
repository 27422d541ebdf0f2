package mocks

import "github.com/o-magnata69/back-end-api/internal/service/auth"

// HashPrefix marks values produced by MockPasswordHasher.Hash.
const HashPrefix = "hashed:"

// MockPasswordHasher implements auth.PasswordHasher for testing.
// Hash returns HashPrefix followed by the plaintext.
type MockPasswordHasher struct {
	// HashFn allows for custom hashing logic in tests
	HashFn func(password string) (string, error)

	// HashCalledWith stores every argument passed to Hash
	HashCalledWith []string
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCalledWith = append(m.HashCalledWith, password)
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if password == "" {
		return "", auth.ErrEmptyPassword
	}
	return HashPrefix + password, nil
}
