package invoices

import (
	"time"

	"github.com/google/uuid"

	"github.com/unchin/unchin/internal/shared"
	"github.com/unchin/unchin/internal/shipments"
)

// Summary aggregates the monetary columns of a set of shipments.
type Summary struct {
	Count   int   `json:"count"`
	Freight int64 `json:"freight"`
	Toll    int64 `json:"toll"`
	Exempt  int64 `json:"exempt"`
	Total   int64 `json:"total"`
}

// Add folds one shipment into the summary.
func (s *Summary) Add(row shipments.Shipment) {
	s.Count++
	s.Freight += row.FreightAmount
	s.Toll += row.TollAmount
	s.Exempt += row.TaxExemptAmount
	s.Total = s.Freight + s.Toll + s.Exempt
}

// Summarize sums rows. It has no side effects and an empty input yields zeros.
func Summarize(rows []shipments.Shipment) Summary {
	var sum Summary
	for _, row := range rows {
		sum.Add(row)
	}
	return sum
}

// Window is one customer's inclusive billing period.
type Window struct {
	From       shared.Date
	To         shared.Date
	CustomerID int64
}

// Filter converts the window into a shipment listing in billing order.
func (w Window) Filter(onlyUnclosed bool) shipments.ListFilter {
	from, to, customer := w.From, w.To, w.CustomerID
	filter := shipments.ListFilter{
		From:       &from,
		To:         &to,
		CustomerID: &customer,
		Order:      shipments.OldestFirst,
	}
	if onlyUnclosed {
		status := shipments.StatusUnclosed
		filter.Status = &status
	}
	return filter
}

// Preview is the invoice body: the matching rows and their summary.
type Preview struct {
	Rows []shipments.Shipment `json:"rows"`
	Sum  Summary              `json:"sum"`
}

// CloseResult reports how many shipments a settlement closed.
type CloseResult struct {
	ClosedCount  int        `json:"closedCount"`
	SettlementID *uuid.UUID `json:"settlementId,omitempty"`
}

// Settlement is the ledger record written by a close that changed rows.
type Settlement struct {
	ID           uuid.UUID   `json:"id"`
	CustomerID   int64       `json:"customer_id"`
	CustomerName *string     `json:"customer_name"`
	From         shared.Date `json:"from"`
	To           shared.Date `json:"to"`
	ClosedCount  int         `json:"closed_count"`
	Freight      int64       `json:"freight"`
	Toll         int64       `json:"toll"`
	Exempt       int64       `json:"exempt"`
	Total        int64       `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
}

func newSettlement(id uuid.UUID, w Window, sum Summary) Settlement {
	return Settlement{
		ID:          id,
		CustomerID:  w.CustomerID,
		From:        w.From,
		To:          w.To,
		ClosedCount: sum.Count,
		Freight:     sum.Freight,
		Toll:        sum.Toll,
		Exempt:      sum.Exempt,
		Total:       sum.Total,
	}
}
