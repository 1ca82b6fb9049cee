package reports

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/unchin/unchin/internal/shared"
	"github.com/unchin/unchin/internal/shipments"
)

// ShipmentLister reads the shipments a report aggregates.
type ShipmentLister interface {
	List(ctx context.Context, filter shipments.ListFilter) ([]shipments.Shipment, error)
}

// SummaryRequest selects the shipments of a customer summary. Nil bounds
// are open.
type SummaryRequest struct {
	From         *shared.Date
	To           *shared.Date
	OnlyUnclosed bool
}

// ParseSummaryRequest reads the raw query parameters.
func ParseSummaryRequest(from, to, onlyUnclosed string) (SummaryRequest, error) {
	f, err := shared.ParseOptionalDate(from)
	if err != nil {
		return SummaryRequest{}, err
	}
	t, err := shared.ParseOptionalDate(to)
	if err != nil {
		return SummaryRequest{}, err
	}
	return SummaryRequest{From: f, To: t, OnlyUnclosed: shared.ParseFlag(onlyUnclosed)}, nil
}

func (r SummaryRequest) filter() shipments.ListFilter {
	filter := shipments.ListFilter{From: r.From, To: r.To}
	if r.OnlyUnclosed {
		status := shipments.StatusUnclosed
		filter.Status = &status
	}
	return filter
}

func (r SummaryRequest) cacheParts() []string {
	bound := func(d *shared.Date) string {
		if d == nil {
			return "-"
		}
		return d.String()
	}
	scope := "all"
	if r.OnlyUnclosed {
		scope = "unclosed"
	}
	return []string{"reports", "customer-summary", bound(r.From), bound(r.To), scope}
}

type Service struct {
	shipments ShipmentLister
	cache     *Cache
	logger    *slog.Logger
}

func NewService(lister ShipmentLister, cache *Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{shipments: lister, cache: cache, logger: logger}
}

// Cache exposes the report cache for invalidation by writers.
func (s *Service) Cache() *Cache {
	return s.cache
}

// CustomerSummary groups the selected shipments by customer. Cache failures
// fall back to a direct aggregation.
func (s *Service) CustomerSummary(ctx context.Context, req SummaryRequest) (*CustomerSummary, error) {
	var loadErr error
	load := func(ctx context.Context) (any, error) {
		rows, err := s.shipments.List(ctx, req.filter())
		if err != nil {
			loadErr = err
			return nil, err
		}
		return GroupByCustomer(rows), nil
	}

	key, err := s.cache.BuildKey(ctx, req.cacheParts()...)
	if err == nil {
		var out CustomerSummary
		if err = s.cache.FetchJSON(ctx, key, &out, load); err == nil {
			return &out, nil
		}
		if loadErr != nil {
			return nil, fmt.Errorf("customer summary: %w", loadErr)
		}
	}
	s.logger.Warn("report cache unavailable", slog.Any("error", err))

	value, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("customer summary: %w", err)
	}
	summary := value.(CustomerSummary)
	return &summary, nil
}
