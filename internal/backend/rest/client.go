// Package rest implements the service.Service interface against a
// REST-style JSON backend.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"utask/internal/config"
	"utask/internal/logging"
	"utask/internal/service"
)

// APITimeout is the timeout for a single API call.
const APITimeout = 5 * time.Second

// Client implements service.Service over HTTP.
// Every operation is exactly one round trip; there are no retries.
type Client struct {
	baseURL   string
	tasksPath string
	http      *http.Client
	log       *logging.Logger
}

// New creates a client for the backend named in cfg.
func New(cfg *config.Config, log *logging.Logger) (*Client, error) {
	base := strings.TrimSuffix(cfg.API.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("api.base_url is not configured (set it in %s/%s or UTASK_API_BASE_URL)", cfg.Dir, config.ConfigFile)
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid api.base_url: %w", err)
	}
	tasksPath := cfg.API.TasksPath
	if tasksPath == "" {
		tasksPath = config.DefaultTasksPath
	}
	return &Client{
		baseURL:   base,
		tasksPath: tasksPath,
		http:      &http.Client{},
		log:       log.With("component", "rest"),
	}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL, tasksPath string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		tasksPath: tasksPath,
		http:      httpClient,
		log:       logging.Discard(),
	}
}

// userBody is the wire shape for user create and update.
type userBody struct {
	Name string `json:"name"`
}

// ListUsers implements service.Service.
func (c *Client) ListUsers(ctx context.Context) ([]service.User, error) {
	var users []service.User
	err := c.do(ctx, "list users", http.MethodGet, c.usersPath(), nil, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser implements service.Service.
func (c *Client) CreateUser(ctx context.Context, name string) (service.User, error) {
	var user service.User
	err := c.do(ctx, "create user", http.MethodPost, c.usersPath(), userBody{Name: name}, &user)
	return user, err
}

// UpdateUser implements service.Service.
func (c *Client) UpdateUser(ctx context.Context, id, name string) (service.User, error) {
	var user service.User
	err := c.do(ctx, "update user", http.MethodPut, c.userPath(id), userBody{Name: name}, &user)
	return user, err
}

// DeleteUser implements service.Service.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, "delete user", http.MethodDelete, c.userPath(id), nil, nil)
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context, userID string) ([]service.Task, error) {
	var tasks []service.Task
	err := c.do(ctx, "list tasks", http.MethodGet, c.tasksCollectionPath(userID), nil, &tasks)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, userID string, draft service.TaskDraft) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, "create task", http.MethodPost, c.tasksCollectionPath(userID), draft, &task)
	return task, err
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, userID, taskID string, draft service.TaskDraft) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, "update task", http.MethodPut, c.taskPath(userID, taskID), draft, &task)
	return task, err
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, userID, taskID string) error {
	return c.do(ctx, "delete task", http.MethodDelete, c.taskPath(userID, taskID), nil, nil)
}

func (c *Client) usersPath() string {
	return c.baseURL + "/users"
}

func (c *Client) userPath(id string) string {
	return c.usersPath() + "/" + url.PathEscape(id)
}

func (c *Client) tasksCollectionPath(userID string) string {
	return c.userPath(userID) + "/" + c.tasksPath
}

func (c *Client) taskPath(userID, taskID string) string {
	return c.tasksCollectionPath(userID) + "/" + url.PathEscape(taskID)
}

// do performs one request. On 2xx the response body is decoded into out
// when out is non-nil; the decoded value is the backend echo and becomes
// the caller's source of truth. Any other outcome is a RemoteError.
func (c *Client) do(ctx context.Context, op, method, rawURL string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &service.RemoteError{Op: op, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return &service.RemoteError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", "op", op, "url", rawURL, "err", err)
		return &service.RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.log.Warn("backend error", "op", op, "url", rawURL, "status", resp.StatusCode)
		return &service.RemoteError{Op: op, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &service.RemoteError{Op: op, Err: fmt.Errorf("invalid response body: %w", err)}
		}
	} else {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	}

	c.log.Debug("request complete", "op", op, "status", resp.StatusCode)
	return nil
}
