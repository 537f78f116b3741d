package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_IndependentRegistries(t *testing.T) {
	first := NewCollector("todolists")
	second := NewCollector("todolists")

	first.ListsCreated.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.ListsCreated))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.ListsCreated))
}

func TestCollector_ObserveHTTP(t *testing.T) {
	c := NewCollector("todolists")

	c.ObserveHTTP(http.MethodGet, "/api/todolists", http.StatusOK, 5*time.Millisecond)
	c.ObserveHTTP(http.MethodGet, "/api/todolists", http.StatusOK, 7*time.Millisecond)
	c.ObserveHTTP(http.MethodPut, "/api/todolists/{listID}", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/api/todolists", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("PUT", "/api/todolists/{listID}", "404")))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("todolists")
	c.ListsUpdated.Add(3)

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "todolists_todolists_updated_total 3")
}
