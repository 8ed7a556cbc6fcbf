package store

import (
	"context"
	"database/sql"

	"github.com/PrasadBhosale419/TaskManagementAPI/internal/domain"
)

// TaskStore defines the interface for task data persistence. It is
// the sole authority over persisted task records; every read and
// write passes through it.
type TaskStore interface {
	// Create saves a new task to the store. The task's status is
	// forced to pending regardless of what the caller supplied, and
	// the store assigns a new unique ID, filling it into the passed
	// entity along with the persistence timestamps.
	// Returns validation errors if the task data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist. Absence is
	// an expected outcome, not a fault: callers decide whether it is
	// a user error.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// GetAll retrieves every task, ordered by ID. Returns an empty
	// slice, never an error, when the store holds no tasks.
	GetAll(ctx context.Context) ([]*domain.Task, error)

	// GetByStatusCode retrieves tasks matching an integer filter code:
	// 0 pending, 1 in progress, 2 completed, 3 overdue (due date
	// strictly before the current time and status not completed).
	// Any other code returns all tasks unfiltered. That fall-through
	// is a documented part of the contract; callers that want strict
	// codes must validate before calling.
	GetByStatusCode(ctx context.Context, code int) ([]*domain.Task, error)

	// Update overwrites the title, description, status, and due date
	// of the task identified by task.ID.
	// Returns ErrTaskNotFound if no task with that ID exists.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID. Deleting an absent
	// ID is a no-op, not an error: callers who need "already gone"
	// feedback must check existence first via GetByID.
	Delete(ctx context.Context, id int64) error

	// GetPage retrieves one 1-indexed page of tasks ordered by ID,
	// skipping (pageNumber-1)*pageSize records and returning up to
	// pageSize records.
	// Returns ErrInvalidPage if pageNumber < 1 or pageSize <= 0, so a
	// negative offset can never reach the database.
	GetPage(ctx context.Context, pageNumber, pageSize int) ([]*domain.Task, error)

	// CountAll returns the number of live tasks, consistent with what
	// GetAll or GetPage would enumerate at the same instant.
	CountAll(ctx context.Context) (int64, error)

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. The transaction is created and managed by the
	// caller.
	WithTx(tx *sql.Tx) TaskStore
}
