package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// task mirrors the server's task response shape.
type task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// taskPage mirrors the server's paginated envelope.
type taskPage struct {
	TotalCount  int64  `json:"total_count"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
	PageSize    int    `json:"page_size"`
	Tasks       []task `json:"tasks"`
}

// taskInput is the request body for add and update commands.
type taskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type apiError struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id"`
}

// apiClient performs HTTP round-trips against the task API server.
// The base URL is read lazily from the flag so cobra has parsed it by
// the time any command runs.
type apiClient struct {
	serverFlag *string
	httpClient *http.Client
}

func newClient(serverFlag *string) *apiClient {
	return &apiClient{
		serverFlag: serverFlag,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *apiClient) baseURL() string {
	return strings.TrimRight(*c.serverFlag, "/")
}

func (c *apiClient) listTasks() ([]task, error) {
	var tasks []task
	if err := c.getJSON("/api/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *apiClient) listTasksByStatus(code int) ([]task, error) {
	var tasks []task
	if err := c.getJSON("/api/tasks/status/"+strconv.Itoa(code), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *apiClient) listTasksPaged(page, pageSize int) (*taskPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var result taskPage
	if err := c.getJSON("/api/tasks/paged?"+query.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *apiClient) getTask(id int64) (*task, error) {
	var result task
	if err := c.getJSON("/api/tasks/"+strconv.FormatInt(id, 10), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *apiClient) createTask(input taskInput) (*task, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(
		c.baseURL()+"/api/tasks",
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp)
	}

	var created task
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &created, nil
}

func (c *apiClient) updateTask(id int64, input taskInput) error {
	body, err := json.Marshal(input)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(
		http.MethodPut,
		c.baseURL()+"/api/tasks/"+strconv.FormatInt(id, 10),
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusNoContent {
		return decodeError(resp)
	}
	return nil
}

func (c *apiClient) deleteTask(id int64) error {
	req, err := http.NewRequest(
		http.MethodDelete,
		c.baseURL()+"/api/tasks/"+strconv.FormatInt(id, 10),
		nil,
	)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusNoContent {
		return decodeError(resp)
	}
	return nil
}

// exportTasks streams the server's CSV export to the given writer.
func (c *apiClient) exportTasks(w io.Writer) error {
	resp, err := c.httpClient.Get(c.baseURL() + "/api/tasks/export")
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}
	return nil
}

func (c *apiClient) getJSON(path string, v interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL() + path)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-success response into a readable error,
// preferring the server's error message when the body parses.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("server returned %s: %s", resp.Status, apiErr.Error)
	}
	return fmt.Errorf("server returned %s", resp.Status)
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
