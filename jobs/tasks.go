package jobs

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/unchin/unchin/internal/shared"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReportSummaryWarmup recomputes the customer summary for a window.
	TaskReportSummaryWarmup = "report:summary-warmup"
)

// SummaryWarmupPayload selects the window to warm. Blank bounds resolve to
// the current calendar month when the task runs.
type SummaryWarmupPayload struct {
	From         string `json:"from,omitempty"`
	To           string `json:"to,omitempty"`
	OnlyUnclosed bool   `json:"only_unclosed"`
}

// NewSummaryWarmupTask constructs an Asynq task.
func NewSummaryWarmupTask(payload SummaryWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportSummaryWarmup, data, asynq.MaxRetry(3), asynq.Timeout(time.Minute)), nil
}

// window resolves the payload bounds against now.
func (p SummaryWarmupPayload) window(now time.Time) (shared.Date, shared.Date, error) {
	if strings.TrimSpace(p.From) == "" && strings.TrimSpace(p.To) == "" {
		first := shared.NewDate(now.Year(), now.Month(), 1)
		last := shared.Date{Time: first.AddDate(0, 1, -1)}
		return first, last, nil
	}
	from, err := shared.ParseDate(p.From)
	if err != nil {
		return shared.Date{}, shared.Date{}, err
	}
	to, err := shared.ParseDate(p.To)
	if err != nil {
		return shared.Date{}, shared.Date{}, err
	}
	if to.Before(from) {
		return shared.Date{}, shared.Date{}, fmt.Errorf("%w: window %s..%s is inverted", shared.ErrValidation, p.From, p.To)
	}
	return from, to, nil
}
