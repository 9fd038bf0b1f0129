package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on create.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUsernameTaken and ErrEmailTaken narrow ErrAlreadyExists to the
	// violated user uniqueness constraint.
	ErrUsernameTaken = fmt.Errorf("username %w", ErrAlreadyExists)
	ErrEmailTaken    = fmt.Errorf("email %w", ErrAlreadyExists)
	// ErrUnauthorized indicates a missing or invalid session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates the caller is authenticated but not entitled
	// to the resource.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError rejects malformed input at the boundary, optionally with
// per-field messages.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a single message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// FieldError records a per-field validation message, creating the field map
// on first use.
func (e *ValidationError) FieldError(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	return e
}
