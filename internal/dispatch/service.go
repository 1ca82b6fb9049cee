package dispatch

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/unchin/unchin/internal/shared"
	"github.com/unchin/unchin/internal/shipments"
)

// ShipmentLister reads the day's shipments.
type ShipmentLister interface {
	List(ctx context.Context, filter shipments.ListFilter) ([]shipments.Shipment, error)
}

var ErrDateRequired = fmt.Errorf("%w: date is required", shared.ErrValidation)

// BoardRequest selects the shipments shown on a board.
type BoardRequest struct {
	Date         shared.Date
	CustomerID   *int64
	OnlyUnclosed bool
}

// ParseBoardRequest reads the raw query parameters.
func ParseBoardRequest(date, customerID, onlyUnclosed string) (BoardRequest, error) {
	if strings.TrimSpace(date) == "" {
		return BoardRequest{}, ErrDateRequired
	}
	d, err := shared.ParseDate(date)
	if err != nil {
		return BoardRequest{}, err
	}
	req := BoardRequest{Date: d, OnlyUnclosed: shared.ParseFlag(onlyUnclosed)}
	if raw := strings.TrimSpace(customerID); raw != "" && raw != "all" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return BoardRequest{}, fmt.Errorf("%w: invalid customer_id %q", shared.ErrValidation, customerID)
		}
		req.CustomerID = &id
	}
	return req, nil
}

type Service struct {
	shipments ShipmentLister
}

func NewService(lister ShipmentLister) *Service {
	return &Service{shipments: lister}
}

// Board lists the day's shipments newest first and arranges them.
func (s *Service) Board(ctx context.Context, req BoardRequest) (*Board, error) {
	if req.Date.IsZero() {
		return nil, ErrDateRequired
	}
	day := req.Date
	filter := shipments.ListFilter{From: &day, To: &day, CustomerID: req.CustomerID}
	if req.OnlyUnclosed {
		status := shipments.StatusUnclosed
		filter.Status = &status
	}
	rows, err := s.shipments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("dispatch board: %w", err)
	}
	board := Build(req.Date, rows)
	return &board, nil
}
