package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or not positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidPayload is returned when a request body is not a JSON object.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidFieldType is returned when a payload field cannot be stored as text.
	ErrInvalidFieldType = errors.New("invalid field type")

	// ErrMissingFields is returned when required fields are absent on create.
	ErrMissingFields = errors.New("missing required fields")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap exposes the wrapped sentinel, ErrValidation when none was given.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// Is makes every ValidationError match ErrValidation whatever it wraps.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MissingFieldsError reports every required field of a resource together with
// the subset that was absent or falsy in the payload.
type MissingFieldsError struct {
	Required []string
	Missing  []string
}

// NewMissingFieldsError creates a MissingFieldsError.
func NewMissingFieldsError(required, missing []string) *MissingFieldsError {
	return &MissingFieldsError{Required: required, Missing: missing}
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFields, strings.Join(e.Missing, ", "))
}

// Is makes MissingFieldsError match both ErrMissingFields and ErrValidation.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields || target == ErrValidation
}
