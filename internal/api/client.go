// Package api is the typed façade over the TaskFlow REST backend. Every
// method issues exactly one HTTP call, returns the decoded 2xx body and
// normalizes failures into *Error. No retries, no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

type Client struct {
	base string
	http *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{},
	}
}

// SetToken attaches the access token as the default bearer credential for
// every subsequent request. The session owns this lifecycle.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.base + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: err.Error()}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: fmt.Sprintf("decoding response: %v", err)}
	}
	return nil
}

// list handles endpoints that may return either a bare JSON array or a
// paginated {"results": [...]} envelope.
func list[T any](c *Client, ctx context.Context, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &Error{Message: fmt.Sprintf("decoding list: %v", err)}
	}
	return envelope.Results, nil
}

// Authentication

// LoginResponse is the payload of a successful auth/login/ call.
type LoginResponse struct {
	Access  string     `json:"access"`
	Refresh string     `json:"refresh"`
	User    model.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string, remember bool) (*LoginResponse, error) {
	body := map[string]any{"email": email, "password": password, "remember": remember}
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "auth/login/", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshToken exchanges the refresh token for a fresh access token. Never
// called automatically; the session invokes it on demand.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	var out struct {
		Access string `json:"access"`
	}
	body := map[string]string{"refresh": refresh}
	if err := c.do(ctx, http.MethodPost, "auth/refresh/", nil, body, &out); err != nil {
		return "", err
	}
	return out.Access, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "auth/forgot-password/", nil, map[string]string{"email": email}, nil)
}

func (c *Client) VerifyResetCode(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	return c.do(ctx, http.MethodPost, "auth/verify-code/", nil, body, nil)
}

func (c *Client) ChangePassword(ctx context.Context, email, code, password string) error {
	body := map[string]string{"email": email, "code": code, "password": password}
	return c.do(ctx, http.MethodPost, "auth/change-password/", nil, body, nil)
}

// Dashboard

func (c *Client) DashboardStats(ctx context.Context) (model.Stats, error) {
	var out struct {
		Stats model.Stats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "dashboard/stats/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Stats, nil
}

func (c *Client) RecentTasks(ctx context.Context) ([]model.Task, error) {
	var out struct {
		Tasks []model.Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "dashboard/recent-tasks/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (c *Client) ActiveProjects(ctx context.Context) ([]model.Project, error) {
	var out struct {
		Projects []model.Project `json:"projects"`
	}
	if err := c.do(ctx, http.MethodGet, "dashboard/active-projects/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

// Users

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	return list[model.User](c, ctx, "users/", nil)
}

func (c *Client) CreateUser(ctx context.Context, data any) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodPost, "users/", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, data any) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodPut, "users/"+strconv.FormatInt(id, 10)+"/", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "users/"+strconv.FormatInt(id, 10)+"/", nil, nil, nil)
}

// AvailableUsers lists users eligible for assignment, optionally scoped to a
// project's remaining capacity.
func (c *Client) AvailableUsers(ctx context.Context, projectID int64) ([]model.User, error) {
	query := url.Values{}
	if projectID != 0 {
		query.Set("project_id", strconv.FormatInt(projectID, 10))
	}
	var out struct {
		Users []model.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "users/available/", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// Projects

func (c *Client) Projects(ctx context.Context) ([]model.Project, error) {
	return list[model.Project](c, ctx, "projects/", nil)
}

func (c *Client) CreateProject(ctx context.Context, data any) (*model.Project, error) {
	var out model.Project
	if err := c.do(ctx, http.MethodPost, "projects/", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int64, data any) (*model.Project, error) {
	var out model.Project
	if err := c.do(ctx, http.MethodPut, "projects/"+strconv.FormatInt(id, 10)+"/", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "projects/"+strconv.FormatInt(id, 10)+"/", nil, nil, nil)
}

// KanbanBoard is the column view of one project's tasks.
type KanbanBoard struct {
	Project model.Project                     `json:"project"`
	Columns map[model.TaskStatus][]model.Task `json:"kanban"`
}

func (c *Client) Kanban(ctx context.Context, projectID int64) (*KanbanBoard, error) {
	var out KanbanBoard
	path := "projects/" + strconv.FormatInt(projectID, 10) + "/kanban/"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tasks

func (c *Client) Tasks(ctx context.Context, projectID int64) ([]model.Task, error) {
	query := url.Values{}
	if projectID != 0 {
		query.Set("project_id", strconv.FormatInt(projectID, 10))
	}
	return list[model.Task](c, ctx, "tasks/", query)
}

// CreateTask sends assigned_to as an empty array rather than null when no
// assignees were picked; the backend rejects null for list fields.
func (c *Client) CreateTask(ctx context.Context, task model.NewTask) (*model.Task, error) {
	if task.AssignedTo == nil {
		task.AssignedTo = []int64{}
	}
	var out model.Task
	if err := c.do(ctx, http.MethodPost, "tasks/", nil, task, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, task model.NewTask) (*model.Task, error) {
	if task.AssignedTo == nil {
		task.AssignedTo = []int64{}
	}
	var out model.Task
	if err := c.do(ctx, http.MethodPut, "tasks/"+strconv.FormatInt(id, 10)+"/", nil, task, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "tasks/"+strconv.FormatInt(id, 10)+"/", nil, nil, nil)
}

// Notifications

func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	return list[model.Notification](c, ctx, "notifications/", nil)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	path := "notifications/" + strconv.FormatInt(id, 10) + "/read/"
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}
