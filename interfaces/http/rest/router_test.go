package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolists/domain/core/entities"
	"todolists/domain/core/valueobjects"
	"todolists/infrastructure/config"
	"todolists/infrastructure/di"
)

type testServer struct {
	handler   http.Handler
	container *di.Container
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config.Default()
	cfg.IDStrategy = valueobjects.IDStrategySequence
	cfg.LogLevel = "error"

	container, err := di.InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)

	router := NewRouter(cfg, container.CommandBus, container.QueryBus, container.IDGenerator, container.Metrics, container.Logger)
	return &testServer{handler: router.Setup(), container: container}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *testServer) lists(t *testing.T) map[string]entities.TodoList {
	t.Helper()
	w := s.do(t, http.MethodGet, "/api/todolists", "")
	require.Equal(t, http.StatusOK, w.Code)
	return decode[map[string]entities.TodoList](t, w)
}

func TestWelcome(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to todo!", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestListTodoLists_Seeded(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/todolists", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"0000000001": {"id":"0000000001","title":"First List","todos":[{"id":"1001","text":"First todo of first list!","completed":false,"dueDate":null}]},
		"0000000002": {"id":"0000000002","title":"Second List","todos":[{"id":"2001","text":"First todo of second list!","completed":false,"dueDate":null}]}
	}`, w.Body.String())
}

func TestCreateTodoList(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/todolists", `{"title":"Groceries"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[entities.TodoList](t, w)
	assert.Equal(t, "0000000003", created.ID)
	assert.Equal(t, "Groceries", created.Title)
	assert.Empty(t, created.Todos)
	assert.Contains(t, w.Body.String(), `"todos":[]`)

	lists := s.lists(t)
	assert.Len(t, lists, 3)
	assert.Equal(t, "Groceries", lists["0000000003"].Title)

	second := decode[entities.TodoList](t, s.do(t, http.MethodPost, "/api/todolists", `{"title":"Chores"}`))
	assert.NotEqual(t, created.ID, second.ID)
	assert.Equal(t, 2.0, testutil.ToFloat64(s.container.Metrics.ListsCreated))
}

func TestCreateTodoList_TitleRequired(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{}`},
		{"empty title", `{"title":""}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			w := s.do(t, http.MethodPost, "/api/todolists", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Title is required"}`, w.Body.String())
			assert.Len(t, s.lists(t), 2)
		})
	}
}

func TestCreateTodoList_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/todolists", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestUpdateTodoList_NotFound(t *testing.T) {
	s := newTestServer(t)
	before := s.lists(t)

	w := s.do(t, http.MethodPut, "/api/todolists/missing", `{"title":"x"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Todo list not found"}`, w.Body.String())
	assert.Equal(t, before, s.lists(t))
}

func TestUpdateTodoList_Merge(t *testing.T) {
	seededTodos := []entities.Todo{{ID: "1001", Text: "First todo of first list!"}}
	due := "2024-01-10T00:00:00.000Z"

	tests := []struct {
		name      string
		body      string
		wantTitle string
		wantTodos []entities.Todo
	}{
		{
			name:      "title only keeps todos",
			body:      `{"title":"Renamed"}`,
			wantTitle: "Renamed",
			wantTodos: seededTodos,
		},
		{
			name:      "todos only keeps title",
			body:      `{"todos":[{"id":"9","text":"new","completed":true,"dueDate":"2024-01-10T00:00:00.000Z"}]}`,
			wantTitle: "First List",
			wantTodos: []entities.Todo{{ID: "9", Text: "new", Completed: true, DueDate: &due}},
		},
		{
			name:      "both replaces both",
			body:      `{"title":"Both","todos":[]}`,
			wantTitle: "Both",
			wantTodos: []entities.Todo{},
		},
		{
			name:      "empty title and null todos are ignored",
			body:      `{"title":"","todos":null}`,
			wantTitle: "First List",
			wantTodos: seededTodos,
		},
		{
			name:      "empty body changes nothing",
			body:      ``,
			wantTitle: "First List",
			wantTodos: seededTodos,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			w := s.do(t, http.MethodPut, "/api/todolists/0000000001", tt.body)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			updated := decode[entities.TodoList](t, w)
			assert.Equal(t, "0000000001", updated.ID)
			assert.Equal(t, tt.wantTitle, updated.Title)
			assert.Equal(t, tt.wantTodos, updated.Todos)

			stored := s.lists(t)["0000000001"]
			assert.Equal(t, updated, stored)
		})
	}
}

func TestUpdateTodoList_RoundTrip(t *testing.T) {
	s := newTestServer(t)

	created := decode[entities.TodoList](t, s.do(t, http.MethodPost, "/api/todolists", `{"title":"Trip"}`))

	body := `{"todos":[
		{"id":"1","text":"pack","completed":false,"dueDate":null},
		{"id":"2","text":"leave","completed":true,"dueDate":"2024-02-01T00:00:00.000Z"}
	]}`
	w := s.do(t, http.MethodPut, "/api/todolists/"+created.ID, body)
	require.Equal(t, http.StatusOK, w.Code)

	fetched := s.lists(t)[created.ID]
	require.Len(t, fetched.Todos, 2)
	assert.Equal(t, "pack", fetched.Todos[0].Text)
	assert.Nil(t, fetched.Todos[0].DueDate)
	assert.Equal(t, "leave", fetched.Todos[1].Text)
	assert.True(t, fetched.Todos[1].Completed)
	assert.Equal(t, "Trip", fetched.Title)
}

func TestGetTodoList(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/todolists/0000000002", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Second List", decode[entities.TodoList](t, w).Title)

	w = s.do(t, http.MethodGet, "/api/todolists/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Todo list not found"}`, w.Body.String())
}

func TestCORS_AnyOrigin(t *testing.T) {
	s := newTestServer(t)
	origin := "http://example.test"

	req := httptest.NewRequest(http.MethodGet, "/api/todolists", nil)
	req.Header.Set("Origin", origin)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, []string{"*", origin}, w.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/api/todolists/0000000001", nil)
	preflight.Header.Set("Origin", origin)
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w = httptest.NewRecorder()
	s.handler.ServeHTTP(w, preflight)

	assert.Contains(t, []string{"*", origin}, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	s.do(t, http.MethodGet, "/api/todolists", "")
	s.do(t, http.MethodPut, "/api/todolists/0000000001", `{"title":"x"}`)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		s.container.Metrics.HTTPRequests.WithLabelValues("PUT", "/api/todolists/{listID}", "200")))

	w := s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "todolists_http_requests_total")
	assert.Contains(t, w.Body.String(), "todolists_todolists_updated_total 1")
}
