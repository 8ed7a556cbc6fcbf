package api

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/PrasadBhosale419/TaskManagementAPI/internal/api/shared"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/domain"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/platform/logger"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/service"
)

// Defaults for the paged listing endpoint when the query parameters
// are omitted.
const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// CreateTaskRequest represents the request body for creating a task.
// Any status supplied by the client is ignored: new tasks always start
// pending.
type CreateTaskRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
}

// UpdateTaskRequest represents the request body for updating a task.
// Title and description are both required on update.
type UpdateTaskRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description" validate:"required"`
	Status      string    `json:"status"      validate:"required,oneof=pending in_progress completed"`
	DueDate     time.Time `json:"due_date"`
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PagedTasksResponse represents one page of tasks together with the
// counts clients need to render paging controls.
type PagedTasksResponse struct {
	TotalCount  int64          `json:"total_count"`
	TotalPages  int            `json:"total_pages"`
	CurrentPage int            `json:"current_page"`
	PageSize    int            `json:"page_size"`
	Tasks       []TaskResponse `json:"tasks"`
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
// It returns every task in stable order, or 404 when none exist.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to list tasks"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	if len(tasks) == 0 {
		log.Debug("no tasks found")
		shared.RespondWithError(w, r, http.StatusNotFound, "No tasks found")
		return
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// ListTasksPaged handles GET /tasks/paged requests.
// Page parameters come from the page and page_size query values,
// defaulting to page 1 with 10 tasks per page.
func (h *TaskHandler) ListTasksPaged(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	pageNumber := defaultPageNumber
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("invalid page parameter", slog.String("page", raw))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Page must be a positive integer")
			return
		}
		pageNumber = parsed
	}

	pageSize := defaultPageSize
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("invalid page_size parameter", slog.String("page_size", raw))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Page size must be a positive integer")
			return
		}
		pageSize = parsed
	}

	page, err := h.taskService.ListPage(r.Context(), pageNumber, pageSize)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to list tasks"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("listed task page",
		slog.Int("page", page.CurrentPage),
		slog.Int("page_size", page.PageSize),
		slog.Int64("total_count", page.TotalCount))
	shared.RespondWithJSON(w, r, http.StatusOK, PagedTasksResponse{
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		Tasks:       tasksToResponse(page.Tasks),
	})
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		switch statusCode {
		case http.StatusNotFound:
			safeMessage = fmt.Sprintf("Task with ID %d not found", id)
		case http.StatusInternalServerError:
			safeMessage = "Failed to get task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("retrieved task", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// GetTasksByStatus handles GET /tasks/status/{code} requests.
// Codes 0, 1 and 2 select the three workflow states; code 3 selects
// overdue tasks. Anything else is rejected.
func (h *TaskHandler) GetTasksByStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rawCode := chi.URLParam(r, "code")
	code, err := strconv.Atoi(rawCode)
	if err != nil || !domain.IsValidStatusCode(code) {
		log.Warn("invalid status code", slog.String("code", rawCode))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(domain.ErrInvalidStatusCode))
		return
	}

	tasks, err := h.taskService.ListTasksByStatusCode(r.Context(), code)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to list tasks by status"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	if len(tasks) == 0 {
		log.Debug("no tasks found for status code", slog.Int("code", code))
		shared.RespondWithError(w, r, http.StatusNotFound, "No tasks found")
		return
	}

	log.Debug("listed tasks by status",
		slog.Int("code", code),
		slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// The trim check runs before tag validation so whitespace-only
	// titles get the field-specific message too.
	if strings.TrimSpace(req.Title) == "" {
		log.Warn("task title missing or blank")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Title is a required field")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := domain.NewTask(req.Title, req.Description, req.DueDate)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.taskService.CreateTask(r.Context(), task); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("created task", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests.
// Title and description are both required; the task must exist.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		log.Warn("task title or description missing", slog.Int64("task_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Title and Description are required fields")
		return
	}

	// Tag validation enforces the status enum after the trim checks
	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("validation error",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Validation error: "+err.Error())
		return
	}
	status := domain.TaskStatus(req.Status)

	existing, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		switch statusCode {
		case http.StatusNotFound:
			safeMessage = fmt.Sprintf("Task with ID %d not found", id)
		case http.StatusInternalServerError:
			safeMessage = "Failed to update task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Status = status
	existing.DueDate = req.DueDate

	if err := h.taskService.UpdateTask(r.Context(), existing); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		switch statusCode {
		case http.StatusNotFound:
			safeMessage = fmt.Sprintf("Task with ID %d not found", id)
		case http.StatusInternalServerError:
			safeMessage = "Failed to update task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("updated task", slog.Int64("task_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask handles DELETE /tasks/{id} requests.
// Deleting an absent ID is reported as 404 at this boundary even
// though the store itself treats it as a no-op.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	if _, err := h.taskService.GetTask(r.Context(), id); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		switch statusCode {
		case http.StatusNotFound:
			safeMessage = fmt.Sprintf("Task with ID %d not found", id)
		case http.StatusInternalServerError:
			safeMessage = "Failed to delete task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to delete task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("deleted task", slog.Int64("task_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// ExportTasksCSV handles GET /tasks/export requests.
// The full task list is written as a CSV attachment; encoding/csv
// handles quoting of embedded commas, quotes, and newlines.
func (h *TaskHandler) ExportTasksCSV(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to export tasks"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=tasks.csv`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	records := [][]string{{"Id", "Title", "Description", "Status", "DueDate"}}
	for _, task := range tasks {
		records = append(records, []string{
			strconv.FormatInt(task.ID, 10),
			task.Title,
			task.Description,
			string(task.Status),
			task.DueDate.Format(time.RFC3339),
		})
	}
	if err := cw.WriteAll(records); err != nil {
		// Headers are already sent; all we can do is log.
		log.Error("failed to write CSV export", slog.String("error", err.Error()))
		return
	}

	log.Debug("exported tasks to CSV", slog.Int("count", len(tasks)))
}

// taskIDFromPath extracts and validates the task ID from the URL path.
// On failure it writes the error response and returns ok=false.
func (h *TaskHandler) taskIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		log.Warn("invalid task ID in URL path", slog.String("task_id", rawID))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(domain.ErrInvalidID))
		return 0, false
	}

	return id, true
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// tasksToResponse converts a slice of domain tasks to response form.
// The result is never nil so empty lists serialize as [].
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}
	return responses
}
