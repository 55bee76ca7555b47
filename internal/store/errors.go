package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrWordNotFound, ErrGroupNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a group with the same name).
	ErrDuplicate = errors.New("entity already exists")

	// ErrSessionAlreadyEnded is returned when ending a study session whose
	// ended_at is already set. The stored timestamp is left unchanged.
	ErrSessionAlreadyEnded = errors.New("study session already ended")

	// Entity-specific "not found" errors

	// ErrWordNotFound indicates that the requested word does not exist in the store.
	ErrWordNotFound = fmt.Errorf("%w: word", ErrNotFound)

	// ErrGroupNotFound indicates that the requested group does not exist in the store.
	ErrGroupNotFound = fmt.Errorf("%w: group", ErrNotFound)

	// ErrActivityNotFound indicates that the requested study activity does not exist in the store.
	ErrActivityNotFound = fmt.Errorf("%w: study activity", ErrNotFound)

	// ErrSessionNotFound indicates that the requested study session does not exist in the store.
	ErrSessionNotFound = fmt.Errorf("%w: study session", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrGroupNameExists indicates that a group with the given name already exists.
	ErrGroupNameExists = fmt.Errorf("%w: group name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
