package service

import "errors"

// Service errors used across service implementations.
// Store and domain errors pass through wrapped with %w so callers can still
// match store.ErrNotFound or domain.ErrValidation with errors.Is.
var (
	// ErrCredentialHash indicates the user credential could not be hashed.
	// API layer should map this to HTTP 500.
	ErrCredentialHash = errors.New("failed to hash credential")
)

// ServiceError adds the operation that failed to an underlying error.
type ServiceError struct {
	Operation string
	Err       error
}

// NewServiceError creates a ServiceError.
func NewServiceError(operation string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Err: err}
}

func (e *ServiceError) Error() string {
	return e.Operation + " failed: " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
