package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchin/unchin/internal/observability"
	"github.com/unchin/unchin/jobs"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func testRouter(cfg *Config, db Pinger) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(RouterParams{
		Logger:     logger,
		Config:     cfg,
		DB:         db,
		JobHandler: jobs.NewHandler(nil, logger),
		Metrics:    observability.NewMetrics(),
	})
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "192.0.2.10:5000"
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthz(t *testing.T) {
	rr := get(testRouter(nil, stubPinger{}), "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	rr = get(testRouter(nil, stubPinger{err: errors.New("down")}), "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestMetricsAndJobsMounted(t *testing.T) {
	router := testRouter(nil, nil)

	_ = get(router, "/healthz")
	rr := get(router, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `unchin_http_requests_total{code="200",route="/healthz"}`)

	rr = get(router, "/jobs/health")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"queue":"default","pending":0}`, rr.Body.String())
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	rr := get(testRouter(nil, nil), "/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error"`)
}

func TestRateLimit(t *testing.T) {
	cfg := &Config{RateLimitPerMinute: 2}
	router := testRouter(cfg, nil)

	assert.Equal(t, http.StatusOK, get(router, "/healthz").Code)
	assert.Equal(t, http.StatusOK, get(router, "/healthz").Code)
	rr := get(router, "/healthz")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), "rate limit")
}

func TestNewLoggerFormats(t *testing.T) {
	buf := &bytes.Buffer{}
	newLogger(buf, &Config{LogFormat: "json", AppEnv: "production"}).Info("hello", "k", "v")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"k":"v"`)

	buf.Reset()
	logger := newLogger(buf, &Config{LogFormat: "pretty", AppEnv: "production"})
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestInTestMode(t *testing.T) {
	t.Setenv(testModeEnv, "1")
	RefreshTestMode()
	assert.True(t, InTestMode())

	t.Setenv(testModeEnv, "")
	RefreshTestMode()
	assert.False(t, InTestMode())
}
