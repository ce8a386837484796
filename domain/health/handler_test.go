package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
)

type fakeIndex struct {
	loaded time.Time
	count  int
}

func (f fakeIndex) Loaded() time.Time { return f.loaded }
func (f fakeIndex) Count() int        { return f.count }

func newRegistry(t *testing.T, withTool bool) *tools.Registry {
	t.Helper()
	reg := tools.NewRegistry(slog.Default())
	if withTool {
		require.NoError(t, reg.Register(tools.Tool{
			Name: "noop",
			Run:  func(context.Context, tools.Args) (*tools.Result, error) { return nil, nil },
		}))
	}
	return reg
}

func serve(h *Handler, method, path string) *httptest.ResponseRecorder {
	e := echo.New()
	RegisterRoutes(e, h, NewMetricsHandler())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	cfg := &config.Config{Environment: "local"}

	tests := []struct {
		name       string
		index      fakeIndex
		withTool   bool
		wantCode   int
		wantStatus string
	}{
		{"healthy", fakeIndex{loaded: time.Now(), count: 3}, true, http.StatusOK, "healthy"},
		{"blog not loaded", fakeIndex{}, true, http.StatusServiceUnavailable, "unhealthy"},
		{"no tools", fakeIndex{loaded: time.Now()}, false, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandler(tt.index, newRegistry(t, tt.withTool), cfg)

			rec := serve(h, http.MethodGet, "/health")
			assert.Equal(t, tt.wantCode, rec.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Contains(t, resp.Checks, "blog")
			assert.Contains(t, resp.Checks, "tools")

			assert.Equal(t, tt.wantCode, serve(h, http.MethodGet, "/ready").Code)
		})
	}
}

func TestHealthz(t *testing.T) {
	h := newHandler(fakeIndex{}, newRegistry(t, false), &config.Config{})
	rec := serve(h, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestVersion(t *testing.T) {
	h := newHandler(fakeIndex{}, newRegistry(t, false), &config.Config{})
	rec := serve(h, http.MethodGet, "/api/version")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"dev"`)
}

func TestDebug(t *testing.T) {
	h := newHandler(fakeIndex{loaded: time.Now(), count: 2}, newRegistry(t, true), &config.Config{Environment: "local"})
	rec := serve(h, http.MethodGet, "/debug")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "host")
	assert.Contains(t, body, "memory")
	content := body["content"].(map[string]any)
	assert.Equal(t, float64(2), content["posts"])

	prod := newHandler(fakeIndex{}, newRegistry(t, true), &config.Config{Environment: "production"})
	assert.Equal(t, http.StatusNotFound, serve(prod, http.MethodGet, "/debug").Code)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_hits_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	e := echo.New()
	e.GET("/metrics", NewMetricsHandlerFor(reg).Metrics)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_hits_total 1")
}
