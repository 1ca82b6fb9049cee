package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/unchin/unchin/internal/jobs"
	"github.com/unchin/unchin/internal/reports"
)

var defaultJobMetrics = jobmetrics.NewMetrics(nil)

// SummaryWarmer computes (and thereby caches) a customer summary.
type SummaryWarmer interface {
	CustomerSummary(ctx context.Context, req reports.SummaryRequest) (*reports.CustomerSummary, error)
}

// SummaryWarmupJob pre-populates the customer summary cache.
type SummaryWarmupJob struct {
	Reports SummaryWarmer
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
	clock   func() time.Time
}

// NewSummaryWarmupJob wires dependencies for the warmup handler.
func NewSummaryWarmupJob(warmer SummaryWarmer, logger *slog.Logger, metrics *jobmetrics.Metrics) *SummaryWarmupJob {
	return &SummaryWarmupJob{
		Reports: warmer,
		Logger:  logger,
		Metrics: metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes summary warmup tasks. Malformed payloads are not retried.
func (j *SummaryWarmupJob) Handle(ctx context.Context, t *asynq.Task) (resultErr error) {
	if j == nil || j.Reports == nil {
		return errors.New("summary warmup: handler not configured")
	}
	var payload SummaryWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("summary warmup: decode payload: %v: %w", err, asynq.SkipRetry)
	}
	from, to, err := payload.window(j.now())
	if err != nil {
		return fmt.Errorf("summary warmup: %v: %w", err, asynq.SkipRetry)
	}

	tracker := j.metrics().Track(TaskReportSummaryWarmup)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	logger := j.logger().With(
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Bool("only_unclosed", payload.OnlyUnclosed),
	)
	start := time.Now()

	summary, err := j.Reports.CustomerSummary(ctx, reports.SummaryRequest{From: &from, To: &to, OnlyUnclosed: payload.OnlyUnclosed})
	if err != nil {
		logger.Error("summary warmup failed", slog.Any("error", err))
		return err
	}
	j.metrics().AddWarmedRows(len(summary.Rows))
	logger.Info("completed summary warmup", slog.Int("customers", len(summary.Rows)), slog.Duration("duration", time.Since(start)))
	return nil
}

func (j *SummaryWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskReportSummaryWarmup))
	}
	return slog.Default().With(slog.String("job", TaskReportSummaryWarmup))
}

func (j *SummaryWarmupJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return defaultJobMetrics
}

func (j *SummaryWarmupJob) now() time.Time {
	if j.clock != nil {
		return j.clock()
	}
	return time.Now().UTC()
}
