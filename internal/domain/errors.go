package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is the shared kind for entity validation failures.
	// Every entity-specific validation sentinel wraps it, so callers can
	// match the whole class with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed or not positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidPage is returned when a page number is less than 1.
	ErrInvalidPage = errors.New("page must be greater than or equal to 1")
)
