// Package taskapi implements the service.Service interface against the
// task manager REST API.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"taskman/internal/config"
	"taskman/internal/service"
	"taskman/internal/session"
)

// Client implements service.Service over HTTP.
//
// Every task operation attaches the session token as a bearer header.
// If the session holds no token the call fails fast without issuing a
// request. The client never retries; failures surface to the caller.
type Client struct {
	baseURL string
	httpc   *http.Client
	sess    *session.Store
	log     *logrus.Logger
	timeout time.Duration
}

// New creates a client for the configured API endpoint.
func New(cfg *config.Config, sess *session.Store, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{},
		sess:    sess,
		log:     log,
		timeout: cfg.Timeout,
	}
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpc *http.Client, sess *session.Store, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		sess:    sess,
		log:     log,
		timeout: config.DefaultTimeout,
	}
}

// apiError is the error body shape the server sends on 4xx/5xx.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, username, password string) (service.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result service.LoginResult
	if err := c.do(ctx, http.MethodPost, "/users/login", nil, body, false, &result); err != nil {
		return service.LoginResult{}, err
	}
	if result.Token == "" {
		return service.LoginResult{}, service.NewError(service.KindAuth, "login response carried no token")
	}
	return result, nil
}

// Register implements service.Service.
func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/users/register", nil, body, false, nil)
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context, page, pageSize int) (service.TaskPage, error) {
	if page < 1 {
		return service.TaskPage{}, service.Errorf(service.KindValidation, "invalid page number: %d", page)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(pageSize))

	var resp struct {
		Tasks      []service.Task `json:"tasks"`
		TotalPages int            `json:"totalPages"`
	}
	if err := c.do(ctx, http.MethodGet, "/tasks", q, nil, true, &resp); err != nil {
		return service.TaskPage{}, err
	}

	totalPages := resp.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	return service.TaskPage{
		Page:       page,
		TotalPages: totalPages,
		Tasks:      resp.Tasks,
	}, nil
}

// GetTask implements service.Service.
func (c *Client) GetTask(ctx context.Context, id string) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, nil, true, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// CreateTask implements service.Service.
// The request body never carries an identity; the server assigns one.
func (c *Client) CreateTask(ctx context.Context, fields service.NewTask) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, fields, true, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask implements service.Service.
// Only the fields set in patch appear in the request body.
func (c *Client) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id), nil, patch, true, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil, true, nil)
}

// do issues one request and decodes the response into out (unless nil).
// auth selects whether the session token is required and attached.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, auth bool, out any) error {
	var token string
	if auth {
		token = c.sess.Token()
		if token == "" {
			return service.NewError(service.KindAuth, "not logged in")
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return service.WrapError(service.KindNetwork, "request timed out", err)
		}
		return service.WrapError(service.KindNetwork, "request failed", err)
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"request_id": requestID,
	}).Debug("api call")

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return service.WrapError(service.KindNetwork, "invalid response body", err)
		}
	}
	return nil
}

// statusError maps an error response to the client error taxonomy.
func (c *Client) statusError(resp *http.Response) error {
	var body apiError
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(data, &body)

	msg := body.text()
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if msg == "" {
			msg = "invalid or expired token"
		}
		return service.NewError(service.KindAuth, msg)
	case http.StatusNotFound:
		if msg == "" {
			msg = "not found"
		}
		return service.NewError(service.KindNotFound, msg)
	case http.StatusConflict:
		if msg == "" {
			msg = "already exists"
		}
		return service.NewError(service.KindConflict, msg)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if msg == "" {
			msg = "invalid request"
		}
		return service.NewError(service.KindValidation, msg)
	}

	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return service.NewError(service.KindNetwork, msg)
}
