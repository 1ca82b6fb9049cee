package shipments

import (
	"context"
	"sort"
)

type mockRepository struct {
	rows      map[int64]Shipment
	customers map[int64]string
	nextID    int64

	listError   error
	createError error
	updateError error
	deleteError error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		rows:      make(map[int64]Shipment),
		customers: map[int64]string{1: "山田運送", 2: "佐藤商事"},
		nextID:    1,
	}
}

func (m *mockRepository) List(ctx context.Context, filter ListFilter) ([]Shipment, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var out []Shipment
	for _, s := range m.rows {
		if filter.Matches(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			if filter.Order == OldestFirst {
				return out[i].Date.Before(out[j].Date)
			}
			return out[j].Date.Before(out[i].Date)
		}
		if filter.Order == OldestFirst {
			return out[i].ID < out[j].ID
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (*Shipment, error) {
	s, ok := m.rows[id]
	if !ok {
		return nil, ErrShipmentNotFound
	}
	return &s, nil
}

func (m *mockRepository) Create(ctx context.Context, s Shipment) (int64, error) {
	if m.createError != nil {
		return 0, m.createError
	}
	name, ok := m.customers[s.CustomerID]
	if !ok {
		return 0, ErrCustomerNotFound
	}
	s.ID = m.nextID
	m.nextID++
	s.CustomerName = &name
	m.rows[s.ID] = s
	return s.ID, nil
}

func (m *mockRepository) UpdateUnclosed(ctx context.Context, s Shipment) (int64, error) {
	if m.updateError != nil {
		return 0, m.updateError
	}
	existing, ok := m.rows[s.ID]
	if !ok || existing.Status != StatusUnclosed {
		return 0, nil
	}
	name, ok := m.customers[s.CustomerID]
	if !ok {
		return 0, ErrCustomerNotFound
	}
	if s.Status == "" {
		s.Status = existing.Status
	}
	s.CustomerName = &name
	m.rows[s.ID] = s
	return 1, nil
}

func (m *mockRepository) DeleteUnclosed(ctx context.Context, id int64) (int64, error) {
	if m.deleteError != nil {
		return 0, m.deleteError
	}
	existing, ok := m.rows[id]
	if !ok || existing.Status != StatusUnclosed {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

type countingCache struct {
	bumps int
	err   error
}

func (c *countingCache) Bump(ctx context.Context) error {
	c.bumps++
	return c.err
}
