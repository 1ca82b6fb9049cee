package invoices

import (
	"context"
	"sort"
	"time"

	"github.com/unchin/unchin/internal/shared"
	"github.com/unchin/unchin/internal/shipments"
)

// memStore backs both the invoice repository and the shipment lister.
type memStore struct {
	rows        []shipments.Shipment
	settlements []Settlement
	nextID      int64

	listError   error
	closeError  error
	insertError error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) add(date shared.Date, customerID, freight, toll, exempt int64) int64 {
	id := m.nextID
	m.nextID++
	name := "得意先"
	m.rows = append(m.rows, shipments.Shipment{
		ID: id, Date: date, CustomerID: customerID, CustomerName: &name,
		FreightAmount: freight, TollAmount: toll, TaxExemptAmount: exempt,
		Status: shipments.StatusUnclosed,
	})
	return id
}

func (m *memStore) List(ctx context.Context, filter shipments.ListFilter) ([]shipments.Shipment, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var out []shipments.Shipment
	for _, s := range m.rows {
		if filter.Matches(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	rows := append([]shipments.Shipment(nil), m.rows...)
	settlements := append([]Settlement(nil), m.settlements...)
	if err := fn(ctx, m); err != nil {
		m.rows = rows
		m.settlements = settlements
		return err
	}
	return nil
}

func (m *memStore) CloseUnclosed(ctx context.Context, w Window) (Summary, error) {
	if m.closeError != nil {
		return Summary{}, m.closeError
	}
	filter := w.Filter(true)
	var sum Summary
	for i := range m.rows {
		if filter.Matches(m.rows[i]) {
			m.rows[i].Status = shipments.StatusClosed
			sum.Add(m.rows[i])
		}
	}
	return sum, nil
}

func (m *memStore) InsertSettlement(ctx context.Context, s Settlement) (Settlement, error) {
	if m.insertError != nil {
		return Settlement{}, m.insertError
	}
	s.CreatedAt = time.Date(2024, 6, 1, 0, 0, len(m.settlements), 0, time.UTC)
	m.settlements = append(m.settlements, s)
	return s, nil
}

func (m *memStore) ListSettlements(ctx context.Context, customerID *int64) ([]Settlement, error) {
	var out []Settlement
	for i := len(m.settlements) - 1; i >= 0; i-- {
		s := m.settlements[i]
		if customerID == nil || s.CustomerID == *customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type recorder struct {
	bumps   int
	settled []int
	warmups []string
	warmErr error
	bumpErr error
}

func (r *recorder) Bump(ctx context.Context) error {
	r.bumps++
	return r.bumpErr
}

func (r *recorder) RecordSettlement(count int) {
	r.settled = append(r.settled, count)
}

func (r *recorder) EnqueueSummaryWarmup(ctx context.Context, from, to shared.Date) error {
	r.warmups = append(r.warmups, from.String()+".."+to.String())
	return r.warmErr
}
