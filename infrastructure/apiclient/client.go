// Package apiclient is the HTTP client the terminal UI uses to talk to the
// todo list API.
package apiclient

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

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"todolists/domain/core/entities"
	pkgerrors "todolists/pkg/errors"
)

const (
	msgFetchFailed  = "Failed to fetch todo lists"
	msgCreateFailed = "Failed to create todo list"
	msgUpdateFailed = "Failed to update todo list"
)

// Update is a partial list update. Nil fields are left out of the request
// and keep their stored value.
type Update struct {
	Title *string          `json:"title,omitempty"`
	Todos *[]entities.Todo `json:"todos,omitempty"`
}

// TodosUpdate builds an Update that replaces the whole todo sequence
func TodosUpdate(todos []entities.Todo) Update {
	cloned := entities.CloneTodos(todos)
	return Update{Todos: &cloned}
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Client calls the todo list API
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	breaker    BreakerConfig
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithBreakerConfig replaces the circuit breaker configuration
func WithBreakerConfig(config BreakerConfig) Option {
	return func(o *clientOptions) {
		o.breaker = config
	}
}

// New creates a client for the API rooted at baseURL, e.g.
// http://localhost:3001/api
func New(baseURL string, timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	options := clientOptions{
		httpClient: &http.Client{Timeout: timeout},
		breaker:    DefaultBreakerConfig(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: options.httpClient,
		breaker:    newBreaker(options.breaker, logger),
		logger:     logger,
	}
}

// FetchTodoLists returns every list keyed by ID
func (c *Client) FetchTodoLists(ctx context.Context) (map[string]*entities.TodoList, error) {
	var lists map[string]*entities.TodoList
	if err := c.do(ctx, http.MethodGet, "/todolists", nil, http.StatusOK, &lists); err != nil {
		return nil, c.networkError(msgFetchFailed, err)
	}
	if lists == nil {
		lists = make(map[string]*entities.TodoList)
	}
	return lists, nil
}

// CreateTodoList creates a list with the given title
func (c *Client) CreateTodoList(ctx context.Context, title string) (*entities.TodoList, error) {
	body := map[string]string{"title": title}

	var list entities.TodoList
	if err := c.do(ctx, http.MethodPost, "/todolists", body, http.StatusCreated, &list); err != nil {
		return nil, c.networkError(msgCreateFailed, err)
	}
	return &list, nil
}

// UpdateTodoList merges update into the list with the given ID and returns
// the stored result.
func (c *Client) UpdateTodoList(ctx context.Context, id string, update Update) (*entities.TodoList, error) {
	var list entities.TodoList
	if err := c.do(ctx, http.MethodPut, "/todolists/"+url.PathEscape(id), update, http.StatusOK, &list); err != nil {
		return nil, c.networkError(msgUpdateFailed, err).
			WithDetails(map[string]interface{}{"id": id})
	}
	return &list, nil
}

func (c *Client) networkError(message string, cause error) *pkgerrors.AppError {
	c.logger.Error(message, zap.Error(cause))
	return pkgerrors.NewNetworkError(message, cause)
}

type response struct {
	status int
	body   []byte
}

// do sends one request through the circuit breaker. Transport failures and
// 5xx responses count against the breaker; other statuses do not.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}, want int, out interface{}) error {
	var encoded []byte
	if payload != nil {
		var err error
		encoded, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		res := &response{status: resp.StatusCode, body: body}
		if resp.StatusCode >= http.StatusInternalServerError {
			return res, statusError(res)
		}
		return res, nil
	})
	if err != nil {
		return err
	}

	res := result.(*response)
	if res.status != want {
		return statusError(res)
	}

	c.logger.Debug("API call succeeded",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.status),
	)

	if err := json.Unmarshal(res.body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func statusError(res *response) *StatusError {
	var body pkgerrors.ErrorResponse
	_ = json.Unmarshal(res.body, &body)
	return &StatusError{StatusCode: res.status, Message: body.Error}
}
