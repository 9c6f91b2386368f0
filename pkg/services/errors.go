package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrUnauthenticated is returned when no identity is present
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the identity lacks a required scope or
	// does not own the resource
	ErrForbidden = errors.New("access denied")

	// ErrUpstreamUnavailable is returned when a bus publish fails or the
	// scheduler is not ready to accept work
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrTransientBackend is returned when a database connection was
	// invalidated mid-operation; the caller should retry
	ErrTransientBackend = errors.New("transient backend error, please retry")

	// ErrUpstreamTimeout is returned when an LLM call or subprocess exceeds
	// its deadline
	ErrUpstreamTimeout = errors.New("upstream timed out")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
