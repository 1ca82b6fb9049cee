package shipments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/unchin/unchin/internal/platform/httpx"
)

// CacheInvalidator drops cached aggregates after shipments change.
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}

type Service struct {
	repo     Repository
	cache    CacheInvalidator
	logger   *slog.Logger
	validate *validator.Validate
}

func NewService(repo Repository, cache CacheInvalidator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, logger: logger, validate: httpx.NewValidator()}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Shipment, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	if list == nil {
		list = []Shipment{}
	}
	return list, nil
}

func (s *Service) Create(ctx context.Context, in ShipmentInput) (int64, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	record := in.toShipment()
	record.ID = 0
	if record.Status == "" {
		record.Status = StatusUnclosed
	}

	id, err := s.repo.Create(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("create shipment: %w", err)
	}
	s.invalidate(ctx)
	return id, nil
}

// Update replaces an unclosed shipment. Updating a missing id is a no-op.
func (s *Service) Update(ctx context.Context, in ShipmentInput) error {
	if in.ID == nil || *in.ID <= 0 {
		return ErrIDRequired
	}
	if err := s.check(in); err != nil {
		return err
	}

	affected, err := s.repo.UpdateUnclosed(ctx, in.toShipment())
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	if affected == 0 {
		return s.explainMiss(ctx, *in.ID)
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes an unclosed shipment. Deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	affected, err := s.repo.DeleteUnclosed(ctx, id)
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	if affected == 0 {
		return s.explainMiss(ctx, id)
	}
	s.invalidate(ctx)
	return nil
}

// explainMiss tells a closed row apart from an absent one after a guarded
// write touched nothing.
func (s *Service) explainMiss(ctx context.Context, id int64) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrShipmentNotFound) {
			return nil
		}
		return fmt.Errorf("load shipment %d: %w", id, err)
	}
	if !existing.Status.CanEdit() {
		return ErrShipmentClosed
	}
	return nil
}

func (s *Service) check(in ShipmentInput) error {
	if in.Date.IsZero() {
		return ErrDateRequired
	}
	if in.CustomerID <= 0 {
		return ErrCustomerRequired
	}
	for _, amount := range []*int64{in.FreightAmount, in.TollAmount, in.TaxExemptAmount} {
		if amount != nil && *amount < 0 {
			return ErrInvalidAmount
		}
	}
	if in.Status != nil && !in.Status.IsValid() {
		return ErrInvalidStatus
	}
	if err := s.validate.Struct(in); err != nil {
		return httpx.ValidationError(err)
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("report cache invalidation failed", slog.Any("error", err))
	}
}
