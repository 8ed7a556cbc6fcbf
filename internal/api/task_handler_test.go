package api_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrasadBhosale419/TaskManagementAPI/internal/api"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/domain"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/service"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/store"
)

// mockTaskService implements service.TaskService with function fields
// so each test can plug in exactly the behavior it needs.
type mockTaskService struct {
	createTaskFn            func(ctx context.Context, task *domain.Task) error
	getTaskFn               func(ctx context.Context, id int64) (*domain.Task, error)
	listTasksFn             func(ctx context.Context) ([]*domain.Task, error)
	listTasksByStatusCodeFn func(ctx context.Context, code int) ([]*domain.Task, error)
	listPageFn              func(ctx context.Context, pageNumber, pageSize int) (*service.TaskPage, error)
	updateTaskFn            func(ctx context.Context, task *domain.Task) error
	deleteTaskFn            func(ctx context.Context, id int64) error
}

var _ service.TaskService = (*mockTaskService)(nil)

func (m *mockTaskService) CreateTask(ctx context.Context, task *domain.Task) error {
	if m.createTaskFn != nil {
		return m.createTaskFn(ctx, task)
	}
	return nil
}

func (m *mockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.getTaskFn != nil {
		return m.getTaskFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *mockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.listTasksFn != nil {
		return m.listTasksFn(ctx)
	}
	return nil, nil
}

func (m *mockTaskService) ListTasksByStatusCode(
	ctx context.Context,
	code int,
) ([]*domain.Task, error) {
	if m.listTasksByStatusCodeFn != nil {
		return m.listTasksByStatusCodeFn(ctx, code)
	}
	return nil, nil
}

func (m *mockTaskService) ListPage(
	ctx context.Context,
	pageNumber, pageSize int,
) (*service.TaskPage, error) {
	if m.listPageFn != nil {
		return m.listPageFn(ctx, pageNumber, pageSize)
	}
	return nil, nil
}

func (m *mockTaskService) UpdateTask(ctx context.Context, task *domain.Task) error {
	if m.updateTaskFn != nil {
		return m.updateTaskFn(ctx, task)
	}
	return nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.deleteTaskFn != nil {
		return m.deleteTaskFn(ctx, id)
	}
	return nil
}

// newTestRouter mounts a TaskHandler on a chi router with the same
// route shape the server uses.
func newTestRouter(svc service.TaskService) http.Handler {
	handler := api.NewTaskHandler(svc, slog.Default())

	r := chi.NewRouter()
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", handler.ListTasks)
		r.Get("/paged", handler.ListTasksPaged)
		r.Get("/export", handler.ExportTasksCSV)
		r.Get("/status/{code}", handler.GetTasksByStatus)
		r.Get("/{id}", handler.GetTask)
		r.Post("/", handler.CreateTask)
		r.Put("/{id}", handler.UpdateTask)
		r.Delete("/{id}", handler.DeleteTask)
	})
	return r
}

func testTask(id int64) *domain.Task {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Task{
		ID:          id,
		Title:       fmt.Sprintf("Task %d", id),
		Description: fmt.Sprintf("Description %d", id),
		Status:      domain.TaskStatusPending,
		DueDate:     now.Add(24 * time.Hour),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	t.Run("returns all tasks", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			listTasksFn: func(ctx context.Context) ([]*domain.Task, error) {
				return []*domain.Task{testTask(1), testTask(2)}, nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []api.TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, "Task 2", got[1].Title)
	})

	t.Run("empty list returns 404", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			listTasksFn: func(ctx context.Context) ([]*domain.Task, error) {
				return []*domain.Task{}, nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "No tasks found")
	})

	t.Run("service failure returns 500 with generic message", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			listTasksFn: func(ctx context.Context) ([]*domain.Task, error) {
				return nil, errors.New("connection refused")
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}

func TestListTasksPaged(t *testing.T) {
	t.Parallel()

	t.Run("returns page envelope", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			listPageFn: func(ctx context.Context, pageNumber, pageSize int) (*service.TaskPage, error) {
				assert.Equal(t, 2, pageNumber)
				assert.Equal(t, 5, pageSize)
				return &service.TaskPage{
					TotalCount:  12,
					TotalPages:  3,
					CurrentPage: pageNumber,
					PageSize:    pageSize,
					Tasks:       []*domain.Task{testTask(6), testTask(7)},
				}, nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/paged?page=2&page_size=5", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got api.PagedTasksResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(12), got.TotalCount)
		assert.Equal(t, 3, got.TotalPages)
		assert.Equal(t, 2, got.CurrentPage)
		assert.Equal(t, 5, got.PageSize)
		require.Len(t, got.Tasks, 2)
	})

	t.Run("defaults applied when parameters missing", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			listPageFn: func(ctx context.Context, pageNumber, pageSize int) (*service.TaskPage, error) {
				assert.Equal(t, 1, pageNumber)
				assert.Equal(t, 10, pageSize)
				return &service.TaskPage{CurrentPage: 1, PageSize: 10, Tasks: nil}, nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/paged", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("non-numeric page returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(&mockTaskService{})

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/paged?page=abc", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid page values return 400", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			listPageFn: func(ctx context.Context, pageNumber, pageSize int) (*service.TaskPage, error) {
				return nil, store.ErrInvalidPage
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/paged?page=0&page_size=-1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetTask(t *testing.T) {
	t.Parallel()

	t.Run("returns task", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			getTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				require.Equal(t, int64(42), id)
				return testTask(42), nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/42", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got api.TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(42), got.ID)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("absent task returns 404 naming the ID", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			getTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return nil, store.ErrTaskNotFound
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/99", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Task with ID 99 not found")
	})

	t.Run("non-numeric ID returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(&mockTaskService{})

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/abc", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-positive ID returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(&mockTaskService{})

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/-5", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetTasksByStatus(t *testing.T) {
	t.Parallel()

	t.Run("valid code forwards to the service", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			listTasksByStatusCodeFn: func(ctx context.Context, code int) ([]*domain.Task, error) {
				assert.Equal(t, domain.StatusCodeOverdue, code)
				return []*domain.Task{testTask(1)}, nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/status/3", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []api.TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 1)
	})

	t.Run("code outside range returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(&mockTaskService{
			listTasksByStatusCodeFn: func(ctx context.Context, code int) ([]*domain.Task, error) {
				t.Fatal("service should not be called for invalid codes")
				return nil, nil
			},
		})

		for _, code := range []string{"4", "-1", "42", "abc"} {
			req := httptest.NewRequest(http.MethodGet, "/api/tasks/status/"+code, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "code %q", code)
		}
	})

	t.Run("empty result returns 404", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			listTasksByStatusCodeFn: func(ctx context.Context, code int) ([]*domain.Task, error) {
				return nil, nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/status/2", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	t.Run("creates task and returns 201", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			createTaskFn: func(ctx context.Context, task *domain.Task) error {
				assert.Equal(t, domain.TaskStatusPending, task.Status)
				task.ID = 7
				return nil
			},
		}
		router := newTestRouter(svc)

		body := `{"title":"Write report","description":"Quarterly numbers","due_date":"2025-07-01T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var got api.TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, "Write report", got.Title)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("status input ignored on create", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			createTaskFn: func(ctx context.Context, task *domain.Task) error {
				assert.Equal(t, domain.TaskStatusPending, task.Status)
				return nil
			},
		}
		router := newTestRouter(svc)

		body := `{"title":"Sneaky","status":"completed"}`
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("blank title returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(&mockTaskService{})

		for _, body := range []string{`{}`, `{"title":""}`, `{"title":"   "}`} {
			req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "body %s", body)
			assert.Contains(t, rr.Body.String(), "Title is a required field")
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(&mockTaskService{})

		req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{not json`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			createTaskFn: func(ctx context.Context, task *domain.Task) error {
				return errors.New("insert failed")
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/tasks",
			strings.NewReader(`{"title":"x"}`),
		)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "insert failed")
	})
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()

	validBody := `{"title":"New title","description":"New description","status":"in_progress","due_date":"2025-08-01T00:00:00Z"}`

	t.Run("updates task and returns 204", func(t *testing.T) {
		t.Parallel()
		var updated *domain.Task
		svc := &mockTaskService{
			getTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return testTask(id), nil
			},
			updateTaskFn: func(ctx context.Context, task *domain.Task) error {
				updated = task
				return nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/api/tasks/3", strings.NewReader(validBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		require.NotNil(t, updated)
		assert.Equal(t, int64(3), updated.ID)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, domain.TaskStatusInProgress, updated.Status)
	})

	t.Run("missing title or description returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(&mockTaskService{})

		bodies := []string{
			`{"description":"d","status":"pending"}`,
			`{"title":"t","status":"pending"}`,
			`{"title":"  ","description":"d","status":"pending"}`,
		}
		for _, body := range bodies {
			req := httptest.NewRequest(http.MethodPut, "/api/tasks/3", strings.NewReader(body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "body %s", body)
			assert.Contains(t, rr.Body.String(), "Title and Description are required fields")
		}
	})

	t.Run("invalid status returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(&mockTaskService{
			getTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				t.Fatal("service should not be called when validation fails")
				return nil, nil
			},
		})

		for _, status := range []string{"done", "archived", "PENDING"} {
			body := fmt.Sprintf(`{"title":"t","description":"d","status":%q}`, status)
			req := httptest.NewRequest(http.MethodPut, "/api/tasks/3", strings.NewReader(body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "status %q", status)
			assert.Contains(t, rr.Body.String(), "Validation error", "status %q", status)
		}
	})

	t.Run("missing status returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(&mockTaskService{})

		body := `{"title":"t","description":"d"}`
		req := httptest.NewRequest(http.MethodPut, "/api/tasks/3", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Validation error")
	})

	t.Run("absent task returns 404", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			getTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return nil, store.ErrTaskNotFound
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/api/tasks/99", strings.NewReader(validBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Task with ID 99 not found")
	})
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	t.Run("deletes task and returns 204", func(t *testing.T) {
		t.Parallel()
		var deletedID int64
		svc := &mockTaskService{
			getTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return testTask(id), nil
			},
			deleteTaskFn: func(ctx context.Context, id int64) error {
				deletedID = id
				return nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/tasks/5", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, int64(5), deletedID)
	})

	t.Run("absent task returns 404", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			getTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return nil, store.ErrTaskNotFound
			},
			deleteTaskFn: func(ctx context.Context, id int64) error {
				t.Fatal("delete should not be called for absent tasks")
				return nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/tasks/99", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestExportTasksCSV(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows with proper quoting", func(t *testing.T) {
		t.Parallel()
		due := time.Date(2025, 7, 15, 9, 0, 0, 0, time.UTC)
		svc := &mockTaskService{
			listTasksFn: func(ctx context.Context) ([]*domain.Task, error) {
				return []*domain.Task{
					{
						ID:          1,
						Title:       `Buy milk, eggs, and "bread"`,
						Description: "multi\nline",
						Status:      domain.TaskStatusPending,
						DueDate:     due,
					},
					{
						ID:          2,
						Title:       "Plain",
						Description: "nothing special",
						Status:      domain.TaskStatusCompleted,
						DueDate:     due,
					},
				}, nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/export", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "tasks.csv")

		// Round-trip through a CSV reader so quoting bugs surface as
		// parse failures or mangled fields.
		records, err := csv.NewReader(bytes.NewReader(rr.Body.Bytes())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"Id", "Title", "Description", "Status", "DueDate"}, records[0])
		assert.Equal(t, `Buy milk, eggs, and "bread"`, records[1][1])
		assert.Equal(t, "multi\nline", records[1][2])
		assert.Equal(t, "completed", records[2][3])
		assert.Equal(t, "2025-07-15T09:00:00Z", records[2][4])
	})

	t.Run("empty list still writes header", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			listTasksFn: func(ctx context.Context) ([]*domain.Task, error) {
				return nil, nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/export", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		records, err := csv.NewReader(bytes.NewReader(rr.Body.Bytes())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		t.Parallel()
		svc := &mockTaskService{
			listTasksFn: func(ctx context.Context) ([]*domain.Task, error) {
				return nil, errors.New("boom")
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/export", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
