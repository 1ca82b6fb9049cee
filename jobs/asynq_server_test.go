package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchin/unchin/internal/shared"
)

type stubInspector struct {
	info *asynq.QueueInfo
	err  error
}

func (s stubInspector) GetQueueInfo(queue string) (*asynq.QueueInfo, error) {
	return s.info, s.err
}

func healthBody(t *testing.T, h *Handler) (int, QueueHealth) {
	t.Helper()
	r := chi.NewRouter()
	h.MountRoutes(r)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body QueueHealth
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	}
	return rr.Code, body
}

func TestHealthReportsPending(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	code, body := healthBody(t, NewHandler(nil, logger))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, QueueHealth{Queue: QueueDefault}, body)

	code, body = healthBody(t, NewHandler(stubInspector{info: &asynq.QueueInfo{Queue: "default", Pending: 4}}, logger))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 4, body.Pending)

	code, _ = healthBody(t, NewHandler(stubInspector{err: errors.New("dial tcp")}, logger))
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestClientEnqueueSummaryWarmup(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewClient(asynq.RedisClientOpt{Addr: mr.Addr()})
	defer client.Close()

	from := shared.NewDate(2024, time.May, 1)
	to := shared.NewDate(2024, time.May, 31)
	require.NoError(t, client.EnqueueSummaryWarmup(context.Background(), from, to))

	pending, err := mr.List("asynq:{default}:pending")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestNilClientIsNoop(t *testing.T) {
	var client *Client
	assert.NoError(t, client.EnqueueSummaryWarmup(context.Background(), shared.Date{}, shared.Date{}))
	assert.NoError(t, client.Close())
}
