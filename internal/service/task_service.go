package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/PrasadBhosale419/TaskManagementAPI/internal/domain"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/platform/logger"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/store"
)

// TaskPage is the paginated-result envelope composed by the service:
// the page contents together with the counts the caller needs to
// render paging controls. TotalPages is ceil(TotalCount / PageSize)
// and is computed here, not in the store.
type TaskPage struct {
	TotalCount  int64
	TotalPages  int
	CurrentPage int
	PageSize    int
	Tasks       []*domain.Task
}

// TaskService provides task-related operations to the API layer.
type TaskService interface {
	// CreateTask validates and persists a new task. The stored task
	// always starts pending; the assigned ID is filled into the
	// returned entity.
	CreateTask(ctx context.Context, task *domain.Task) error

	// GetTask retrieves a task by ID.
	// Returns store.ErrTaskNotFound (via errors.Is) when absent.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks retrieves every task in stable order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// ListTasksByStatusCode retrieves tasks by integer status code
	// (0 pending, 1 in progress, 2 completed, 3 overdue; other codes
	// return all tasks, per the store contract).
	ListTasksByStatusCode(ctx context.Context, code int) ([]*domain.Task, error)

	// ListPage retrieves one page of tasks together with the count
	// envelope. Returns store.ErrInvalidPage for bad parameters.
	ListPage(ctx context.Context, pageNumber, pageSize int) (*TaskPage, error)

	// UpdateTask overwrites an existing task's mutable fields.
	// Returns store.ErrTaskNotFound when the task does not exist.
	UpdateTask(ctx context.Context, task *domain.Task) error

	// DeleteTask removes a task. Deleting an absent ID is a no-op;
	// callers who need "already gone" feedback check GetTask first.
	DeleteTask(ctx context.Context, id int64) error
}

// taskService is the production implementation of TaskService.
type taskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService backed by the given store.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("task store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskService{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskService) CreateTask(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Create(ctx, task); err != nil {
		// Validation errors carry their own context; everything else
		// is a store fault worth wrapping
		if errors.Is(err, domain.ErrEmptyTaskTitle) || errors.Is(err, domain.ErrInvalidTaskStatus) {
			return err
		}
		log.Error("failed to create task", slog.String("error", err.Error()))
		return NewTaskServiceError("create_task", "failed to persist task", err)
	}

	return nil
}

// GetTask implements TaskService.GetTask
func (s *taskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			// Absence is an expected outcome; pass the sentinel through
			return nil, err
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, NewTaskServiceError("get_task", "failed to load task", err)
	}

	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.GetAll(ctx)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_tasks", "failed to load tasks", err)
	}

	return tasks, nil
}

// ListTasksByStatusCode implements TaskService.ListTasksByStatusCode
func (s *taskService) ListTasksByStatusCode(ctx context.Context, code int) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.GetByStatusCode(ctx, code)
	if err != nil {
		log.Error("failed to list tasks by status",
			slog.String("error", err.Error()),
			slog.Int("code", code))
		return nil, NewTaskServiceError("list_tasks_by_status", "failed to load tasks", err)
	}

	return tasks, nil
}

// ListPage implements TaskService.ListPage
// It issues the page query and the count query, then composes the
// envelope. The two reads are snapshot-consistent enough for paging
// controls; no staleness tolerance is required by the design.
func (s *taskService) ListPage(ctx context.Context, pageNumber, pageSize int) (*TaskPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.GetPage(ctx, pageNumber, pageSize)
	if err != nil {
		if errors.Is(err, store.ErrInvalidPage) {
			return nil, err
		}
		log.Error("failed to load task page",
			slog.String("error", err.Error()),
			slog.Int("page_number", pageNumber),
			slog.Int("page_size", pageSize))
		return nil, NewTaskServiceError("list_page", "failed to load task page", err)
	}

	totalCount, err := s.taskStore.CountAll(ctx)
	if err != nil {
		log.Error("failed to count tasks", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_page", "failed to count tasks", err)
	}

	return &TaskPage{
		TotalCount:  totalCount,
		TotalPages:  totalPages(totalCount, pageSize),
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		Tasks:       tasks,
	}, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskService) UpdateTask(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Update(ctx, task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) ||
			errors.Is(err, domain.ErrEmptyTaskTitle) ||
			errors.Is(err, domain.ErrInvalidTaskStatus) {
			return err
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return NewTaskServiceError("update_task", "failed to persist task update", err)
	}

	return nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Delete(ctx, id); err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	return nil
}

// totalPages computes ceil(totalCount / pageSize) without floating point.
func totalPages(totalCount int64, pageSize int) int {
	if totalCount == 0 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}
