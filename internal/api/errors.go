package api

import (
	"errors"
	"net/http"

	"github.com/PrasadBhosale419/TaskManagementAPI/internal/domain"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors. ErrValidation is the wrap base for all
	// domain validation sentinels, so one check covers the class.
	case errors.Is(err, store.ErrInvalidPage),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidStatusCode),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	// Map specific error types to user-friendly messages
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrInvalidPage):
		return "Page number and page size must be positive"

	case errors.Is(err, domain.ErrEmptyTaskTitle):
		return "Title is a required field"

	case errors.Is(err, domain.ErrInvalidTaskStatus):
		return "Status must be one of: pending, in_progress, completed"

	case errors.Is(err, domain.ErrInvalidStatusCode):
		return "Status code must be between 0 and 3"

	case errors.Is(err, domain.ErrInvalidID):
		return "Task ID must be a positive integer"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid task data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}
