package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"todolists/domain/core/entities"
	"todolists/domain/core/valueobjects"
	"todolists/infrastructure/apiclient"
	"todolists/infrastructure/config"
	"todolists/infrastructure/di"
	"todolists/interfaces/http/rest"
	pkgerrors "todolists/pkg/errors"
)

func strPtr(s string) *string {
	return &s
}

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.IDStrategy = valueobjects.IDStrategySequence
	cfg.LogLevel = "error"

	container, err := di.InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)

	router := rest.NewRouter(cfg, container.CommandBus, container.QueryBus, container.IDGenerator, container.Metrics, zap.NewNop())
	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

func newClient(baseURL string, opts ...apiclient.Option) *apiclient.Client {
	return apiclient.New(baseURL+"/api", 2*time.Second, zap.NewNop(), opts...)
}

func TestClient_FetchTodoLists(t *testing.T) {
	client := newClient(newAPI(t).URL)

	lists, err := client.FetchTodoLists(context.Background())

	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "First List", lists["0000000001"].Title)
}

func TestClient_CreateTodoList(t *testing.T) {
	ctx := context.Background()
	client := newClient(newAPI(t).URL)

	list, err := client.CreateTodoList(ctx, "Groceries")
	require.NoError(t, err)
	assert.Equal(t, "0000000003", list.ID)
	assert.Equal(t, "Groceries", list.Title)
	assert.Empty(t, list.Todos)

	_, err = client.CreateTodoList(ctx, "")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNetwork(err))
	assert.Equal(t, "Failed to create todo list", pkgerrors.GetAppError(err).Message)

	var statusErr *apiclient.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Title is required", statusErr.Message)
}

func TestClient_UpdateTodoList(t *testing.T) {
	ctx := context.Background()
	client := newClient(newAPI(t).URL)

	renamed, err := client.UpdateTodoList(ctx, "0000000001", apiclient.Update{Title: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", renamed.Title)
	assert.Len(t, renamed.Todos, 1)

	cleared, err := client.UpdateTodoList(ctx, "0000000001", apiclient.TodosUpdate(nil))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", cleared.Title)
	assert.Empty(t, cleared.Todos)

	_, err = client.UpdateTodoList(ctx, "missing", apiclient.Update{Title: strPtr("x")})
	require.Error(t, err)
	assert.Equal(t, "Failed to update todo list", pkgerrors.GetAppError(err).Message)
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newClient(newAPI(t).URL)

	list, err := client.CreateTodoList(ctx, "Trip")
	require.NoError(t, err)

	due := "2024-02-01T00:00:00.000Z"
	todos := entities.AddTodo(list.Todos, "1")
	todos = entities.SetTodoText(todos, 0, "pack")
	todos = entities.AddTodo(todos, "2")
	todos = entities.SetTodoText(todos, 1, "leave")
	todos = entities.SetTodoDueDate(todos, 1, &due)

	_, err = client.UpdateTodoList(ctx, list.ID, apiclient.TodosUpdate(todos))
	require.NoError(t, err)

	lists, err := client.FetchTodoLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, todos, lists[list.ID].Todos)
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := newClient(url)
	_, err := client.FetchTodoLists(context.Background())

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNetwork(err))
	assert.Equal(t, "Failed to fetch todo lists", pkgerrors.GetAppError(err).Message)
}

func TestClient_UsesSuppliedHTTPClient(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer slow.Close()

	client := newClient(slow.URL, apiclient.WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	_, err := client.FetchTodoLists(context.Background())

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNetwork(err))
}

func TestClient_UpdateEscapesListID(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"a/b?c","title":"x","todos":[]}`))
	}))
	defer server.Close()

	list, err := newClient(server.URL).UpdateTodoList(context.Background(), "a/b?c", apiclient.Update{Title: strPtr("x")})

	require.NoError(t, err)
	assert.Equal(t, "/api/todolists/a%2Fb%3Fc", gotPath)
	assert.Equal(t, "a/b?c", list.ID)
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
	}))
	t.Cleanup(server.Close)

	breaker := apiclient.DefaultBreakerConfig()
	breaker.MinRequests = 3
	breaker.FailureThreshold = 1
	breaker.Timeout = time.Minute
	client := newClient(server.URL, apiclient.WithBreakerConfig(breaker))

	for i := 0; i < 3; i++ {
		_, err := client.FetchTodoLists(context.Background())
		require.Error(t, err)
	}
	require.Equal(t, int32(3), atomic.LoadInt32(&hits))

	_, err := client.FetchTodoLists(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNetwork(err))
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits), "open breaker must not reach the server")
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	ctx := context.Background()
	breaker := apiclient.DefaultBreakerConfig()
	breaker.MinRequests = 2
	breaker.FailureThreshold = 1
	client := newClient(newAPI(t).URL, apiclient.WithBreakerConfig(breaker))

	for i := 0; i < 5; i++ {
		_, err := client.UpdateTodoList(ctx, "missing", apiclient.Update{Title: strPtr("x")})
		require.Error(t, err)
	}

	_, err := client.FetchTodoLists(ctx)
	assert.NoError(t, err)
}
