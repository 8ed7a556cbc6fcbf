package domain

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Status filter codes accepted by the by-status query. Codes 0-2 map
// onto the three workflow states; code 3 selects the computed overdue
// classification.
const (
	StatusCodePending    = 0
	StatusCodeInProgress = 1
	StatusCodeCompleted  = 2
	StatusCodeOverdue    = 3
)

// Common validation errors for Task. Both wrap ErrValidation so
// callers can match the whole class with a single errors.Is check.
var (
	ErrEmptyTaskTitle    = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrInvalidTaskStatus = fmt.Errorf("%w: invalid task status", ErrValidation)
)

// Task represents a single task record: what needs to be done, its
// workflow state, and when it is due. The ID is assigned by the store
// on creation and is immutable afterwards.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     time.Time  `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task with the given title, description, and
// due date. The status is always pending for new tasks regardless of
// caller input; the ID is left zero until the store assigns one.
// Returns an error if validation fails.
func NewTask(title, description string, dueDate time.Time) (*Task, error) {
	task := &Task{
		Title:       title,
		Description: description,
		Status:      TaskStatusPending,
		DueDate:     dueDate,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTaskTitle
	}

	if !IsValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// IsOverdue reports whether the task is overdue at the given instant:
// the due date is strictly in the past and the task is not completed.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate.Before(now) && t.Status != TaskStatusCompleted
}

// UpdateStatus updates the task's status and refreshes the UpdatedAt
// timestamp. Returns an error if the new status is invalid.
func (t *Task) UpdateStatus(status TaskStatus) error {
	if !IsValidTaskStatus(status) {
		return ErrInvalidTaskStatus
	}

	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// IsValidTaskStatus checks if the given status is a valid TaskStatus.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// IsValidStatusCode reports whether the given integer filter code is
// one of the recognized by-status query codes (0-3).
func IsValidStatusCode(code int) bool {
	return code >= StatusCodePending && code <= StatusCodeOverdue
}

// StatusFromCode maps a filter code in 0-2 to its workflow status.
// The second return value is false for code 3 (overdue is computed,
// not stored) and for unrecognized codes.
func StatusFromCode(code int) (TaskStatus, bool) {
	switch code {
	case StatusCodePending:
		return TaskStatusPending, true
	case StatusCodeInProgress:
		return TaskStatusInProgress, true
	case StatusCodeCompleted:
		return TaskStatusCompleted, true
	default:
		return "", false
	}
}
