package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/daylex/daylex/internal/domain/srs"
	"github.com/daylex/daylex/internal/service/vocab"
	"github.com/daylex/daylex/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Keeping
// the mapping in one place prevents handlers from leaking internal error
// types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found
	case errors.Is(err, store.ErrWordNotFound),
		errors.Is(err, store.ErrStateNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Version conflicts
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict

	// Operations that are valid requests but illegal in the word's
	// current lifecycle stage
	case errors.Is(err, srs.ErrWordSuspended),
		errors.Is(err, vocab.ErrAlreadySuspended),
		errors.Is(err, vocab.ErrNotSuspended):
		return http.StatusUnprocessableEntity

	// Bad request
	case errors.Is(err, srs.ErrInvalidOutcome),
		errors.Is(err, srs.ErrInvalidDays),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrWordExists),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly message for the
// error. Raw error strings never reach the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrStateNotFound):
		return "Learning state not found"

	case errors.Is(err, store.ErrConflict):
		return "The word was modified concurrently, retry with fresh data"

	case errors.Is(err, srs.ErrWordSuspended):
		return "Word is suspended"

	case errors.Is(err, vocab.ErrAlreadySuspended):
		return "Word is already suspended"

	case errors.Is(err, vocab.ErrNotSuspended):
		return "Word is not suspended"

	case errors.Is(err, srs.ErrInvalidOutcome):
		return "Invalid review outcome"

	case errors.Is(err, srs.ErrInvalidDays):
		return "Postpone days must be at least 1"

	case errors.Is(err, store.ErrWordExists),
		errors.Is(err, store.ErrDuplicate):
		return "Word already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid word data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a short message that
// names the offending field without echoing submitted values.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) > 1 {
			return "Validation failed: " + strings.TrimSpace(parts[1])
		}
	}

	return "Invalid request payload"
}
