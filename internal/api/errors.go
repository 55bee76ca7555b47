package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/lang-portal/internal/api/shared"
	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Lifecycle errors
	case errors.Is(err, store.ErrSessionAlreadyEnded):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidPage),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrGroupNotFound):
		return "Group not found"

	case errors.Is(err, store.ErrActivityNotFound):
		return "Study activity not found"

	case errors.Is(err, store.ErrSessionNotFound):
		return "Study session not found"

	case store.IsNotFoundError(err):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrGroupNameExists):
		return "Group name already exists"

	case store.IsDuplicateError(err):
		return "Resource already exists"

	// Lifecycle errors
	case errors.Is(err, store.ErrSessionAlreadyEnded):
		return "Study session already ended"

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidPage):
		return "Page must be greater than or equal to 1"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	// Entity validation errors carry client-safe messages
	case errors.Is(err, domain.ErrValidation):
		return err.Error()

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message and writes
// the JSON error response. defaultMessage overrides the mapped message when
// non-empty and the error does not carry a client-safe message of its own.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMessage string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if defaultMessage != "" && status == http.StatusInternalServerError {
		message = defaultMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
