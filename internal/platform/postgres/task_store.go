package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/PrasadBhosale419/TaskManagementAPI/internal/domain"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/platform/logger"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/store"
)

// taskColumns is the canonical column list shared by every SELECT so
// scanTask stays in sync with a single definition.
const taskColumns = "id, title, description, status, due_date, created_at, updated_at"

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// It saves a new task to the database, forcing the status to pending
// regardless of caller input and filling the generated ID and
// timestamps back into the passed entity.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	// New tasks always start pending; the ID comes from the database
	task.Status = domain.TaskStatusPending

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	// Validate task data
	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return err
	}

	query := `
		INSERT INTO tasks (title, description, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return MapError(err)
	}

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// It retrieves a task by its unique ID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1`, taskColumns)

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	return task, nil
}

// GetAll implements store.TaskStore.GetAll
// It retrieves every task ordered by ID. An empty result is not an
// error: callers receive an empty slice.
func (s *PostgresTaskStore) GetAll(ctx context.Context) ([]*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`SELECT %s FROM tasks ORDER BY id`, taskColumns)

	tasks, err := s.queryTasks(ctx, query)
	if err != nil {
		log.Error("failed to get all tasks", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("retrieved all tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByStatusCode implements store.TaskStore.GetByStatusCode
// Codes 0-2 select the matching workflow status, code 3 selects the
// computed overdue set (due date strictly in the past, not completed).
// Any other code falls through to all tasks unfiltered, per contract.
func (s *PostgresTaskStore) GetByStatusCode(ctx context.Context, code int) ([]*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving tasks by status code", slog.Int("code", code))

	if status, ok := domain.StatusFromCode(code); ok {
		query := fmt.Sprintf(`SELECT %s FROM tasks WHERE status = $1 ORDER BY id`, taskColumns)

		tasks, err := s.queryTasks(ctx, query, status)
		if err != nil {
			log.Error("failed to get tasks by status",
				slog.String("error", err.Error()),
				slog.String("status", string(status)))
			return nil, err
		}
		return tasks, nil
	}

	if code == domain.StatusCodeOverdue {
		query := fmt.Sprintf(
			`SELECT %s FROM tasks WHERE due_date < $1 AND status <> $2 ORDER BY id`,
			taskColumns,
		)

		tasks, err := s.queryTasks(ctx, query, time.Now().UTC(), domain.TaskStatusCompleted)
		if err != nil {
			log.Error("failed to get overdue tasks", slog.String("error", err.Error()))
			return nil, err
		}
		return tasks, nil
	}

	// Unrecognized codes return the full set unfiltered
	log.Debug("unrecognized status code, returning all tasks", slog.Int("code", code))
	return s.GetAll(ctx)
}

// Update implements store.TaskStore.Update
// It overwrites the title, description, status, and due date of the
// task identified by task.ID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate task data
	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}

	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, due_date = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.UpdatedAt,
		task.ID,
	)

	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return MapError(err)
	}

	// If no rows were affected, the task didn't exist
	if err := CheckRowsAffected(result, "task"); err != nil {
		log.Debug("task not found for update", slog.Int64("task_id", task.ID))
		return store.ErrTaskNotFound
	}

	log.Info("task updated successfully",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	return nil
}

// Delete implements store.TaskStore.Delete
// Deletion is idempotent: removing an absent ID is a logged no-op.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tasks WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("no task found with ID to delete, treating as no-op",
			slog.Int64("task_id", id))
		return nil
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return nil
}

// GetPage implements store.TaskStore.GetPage
// Pages are 1-indexed over the stable by-ID ordering.
// Returns store.ErrInvalidPage for parameters that would produce a
// negative offset or an empty window.
func (s *PostgresTaskStore) GetPage(ctx context.Context, pageNumber, pageSize int) ([]*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	if pageNumber < 1 || pageSize <= 0 {
		log.Warn("invalid pagination parameters",
			slog.Int("page_number", pageNumber),
			slog.Int("page_size", pageSize))
		return nil, fmt.Errorf("%w: page_number=%d page_size=%d",
			store.ErrInvalidPage, pageNumber, pageSize)
	}

	offset := (pageNumber - 1) * pageSize

	query := fmt.Sprintf(`SELECT %s FROM tasks ORDER BY id LIMIT $1 OFFSET $2`, taskColumns)

	tasks, err := s.queryTasks(ctx, query, pageSize, offset)
	if err != nil {
		log.Error("failed to get task page",
			slog.String("error", err.Error()),
			slog.Int("page_number", pageNumber),
			slog.Int("page_size", pageSize))
		return nil, err
	}

	log.Debug("retrieved task page",
		slog.Int("page_number", pageNumber),
		slog.Int("page_size", pageSize),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// CountAll implements store.TaskStore.CountAll
func (s *PostgresTaskStore) CountAll(ctx context.Context) (int64, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count)
	if err != nil {
		log.Error("failed to count tasks", slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	return count, nil
}

// WithTx implements store.TaskStore.WithTx
// It returns a new store instance bound to the provided transaction.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// queryTasks runs a multi-row task query and scans the results.
func (s *PostgresTaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanTask.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask scans one row in taskColumns order into a domain.Task.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var status string

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&status,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)
	return &task, nil
}
