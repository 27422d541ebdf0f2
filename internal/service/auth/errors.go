package auth

import "errors"

// Common credential errors
var (
	// ErrEmptyPassword indicates an empty credential was given to Hash.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordMismatch indicates a plaintext credential does not match its hash.
	ErrPasswordMismatch = errors.New("password does not match")
)
