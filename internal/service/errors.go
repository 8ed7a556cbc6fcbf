package service

import "fmt"

// TaskServiceError wraps errors from the task service with context.
// Store sentinels (store.ErrTaskNotFound, store.ErrInvalidPage) are
// preserved through Unwrap so callers can still match them with
// errors.Is; everything else surfaces as a server-side fault at the
// API layer.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "list_page")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
