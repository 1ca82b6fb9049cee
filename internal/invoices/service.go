package invoices

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/unchin/unchin/internal/shared"
	"github.com/unchin/unchin/internal/shipments"
)

// ShipmentLister reads shipments for previews.
type ShipmentLister interface {
	List(ctx context.Context, filter shipments.ListFilter) ([]shipments.Shipment, error)
}

// CacheInvalidator drops cached aggregates after a close.
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}

// SettlementRecorder counts settled shipments.
type SettlementRecorder interface {
	RecordSettlement(count int)
}

// WarmupEnqueuer schedules a customer summary recompute for a window.
type WarmupEnqueuer interface {
	EnqueueSummaryWarmup(ctx context.Context, from, to shared.Date) error
}

// Options carries the optional collaborators of Service.
type Options struct {
	Cache   CacheInvalidator
	Metrics SettlementRecorder
	Warmup  WarmupEnqueuer
	Logger  *slog.Logger
}

type Service struct {
	repo      Repository
	shipments ShipmentLister
	cache     CacheInvalidator
	metrics   SettlementRecorder
	warmup    WarmupEnqueuer
	logger    *slog.Logger
	newID     func() uuid.UUID
}

func NewService(repo Repository, lister ShipmentLister, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:      repo,
		shipments: lister,
		cache:     opts.Cache,
		metrics:   opts.Metrics,
		warmup:    opts.Warmup,
		logger:    logger,
		newID:     uuid.New,
	}
}

// Preview lists the window's shipments in billing order with their summary.
func (s *Service) Preview(ctx context.Context, req PreviewRequest) (*Preview, error) {
	w, err := req.Window()
	if err != nil {
		return nil, err
	}
	rows, err := s.shipments.List(ctx, w.Filter(req.OnlyUnclosed))
	if err != nil {
		return nil, fmt.Errorf("invoice preview: %w", err)
	}
	if rows == nil {
		rows = []shipments.Shipment{}
	}
	return &Preview{Rows: rows, Sum: Summarize(rows)}, nil
}

// Close settles every unclosed shipment in the window and records a ledger
// entry when at least one row changed. Repeating a close returns zero.
func (s *Service) Close(ctx context.Context, req CloseRequest) (*CloseResult, error) {
	w, err := req.Window()
	if err != nil {
		return nil, err
	}

	result := &CloseResult{}
	err = s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		sum, err := repo.CloseUnclosed(ctx, w)
		if err != nil {
			return fmt.Errorf("close shipments: %w", err)
		}
		result.ClosedCount = sum.Count
		if sum.Count == 0 {
			return nil
		}
		settlement, err := repo.InsertSettlement(ctx, newSettlement(s.newID(), w, sum))
		if err != nil {
			return err
		}
		result.SettlementID = &settlement.ID
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("invoice close: %w", err)
	}

	if result.ClosedCount > 0 {
		s.afterClose(ctx, w, result.ClosedCount)
	}
	return result, nil
}

// Settlements lists ledger entries newest first.
func (s *Service) Settlements(ctx context.Context, customerID *int64) ([]Settlement, error) {
	list, err := s.repo.ListSettlements(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	if list == nil {
		list = []Settlement{}
	}
	return list, nil
}

func (s *Service) afterClose(ctx context.Context, w Window, count int) {
	if s.metrics != nil {
		s.metrics.RecordSettlement(count)
	}
	if s.cache != nil {
		if err := s.cache.Bump(ctx); err != nil {
			s.logger.Warn("report cache invalidation failed", slog.Any("error", err))
		}
	}
	if s.warmup != nil {
		if err := s.warmup.EnqueueSummaryWarmup(ctx, w.From, w.To); err != nil {
			s.logger.Warn("enqueue summary warmup failed",
				slog.String("from", w.From.String()), slog.String("to", w.To.String()), slog.Any("error", err))
		}
	}
}
