package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/session"
)

// newRequestID is a test seam for correlation-id generation.
var newRequestID = uuid.NewString

// HTTPClient implements Client over the backend's REST surface.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login posts the credentials form-encoded and parses the issued token.
// Any non-2xx response maps to ErrUnauthorized without distinguishing the
// cause; the caller only needs to know the session stays Anonymous.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Request-Id", newRequestID())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", ErrUnauthorized
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("login response missing access_token")
	}
	return tr.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	payload := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/register", "", payload, nil)
}

func (c *HTTPClient) ListEmployees(ctx context.Context, token string) ([]models.Employee, error) {
	employees := []models.Employee{}
	if err := c.do(ctx, http.MethodGet, "/api/employees/", token, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *HTTPClient) GetEmployee(ctx context.Context, token string, id int64) (*models.Employee, error) {
	var e models.Employee
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/employees/%d", id), token, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) CreateEmployee(ctx context.Context, token string, payload models.NewEmployee) error {
	return c.do(ctx, http.MethodPost, "/api/employees/", token, payload, nil)
}

func (c *HTTPClient) UpdateEmployee(ctx context.Context, token string, id int64, payload models.EmployeeUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/employees/%d", id), token, payload, nil)
}

func (c *HTTPClient) DeleteEmployee(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/employees/%d", id), token, nil, nil)
}

func (c *HTTPClient) ListTasks(ctx context.Context, token string) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := c.do(ctx, http.MethodGet, "/api/tasks/", token, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) GetTask(ctx context.Context, token string, id int64) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), token, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, token string, payload models.NewTask) error {
	return c.do(ctx, http.MethodPost, "/api/tasks/", token, payload, nil)
}

func (c *HTTPClient) UpdateTask(ctx context.Context, token string, id int64, payload models.TaskUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), token, payload, nil)
}

func (c *HTTPClient) DeleteTask(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), token, nil, nil)
}

// do issues one JSON request. Authorization headers come exclusively from
// session.BearerHeader, so an empty token sends no header at all. A 401
// maps to ErrSessionExpired; other non-2xx statuses become plain errors.
// Empty response bodies are tolerated when decoding into out.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range session.BearerHeader(token) {
		req.Header.Set(k, v)
	}
	req.Header.Set("X-Request-Id", newRequestID())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %s", method, path, resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
