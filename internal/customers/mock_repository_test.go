package customers

import (
	"context"
	"sort"
	"time"
)

// mockRepository keeps customers in insertion order, which doubles as
// creation order.
type mockRepository struct {
	customers []Customer
	nextID    int64
	clock     time.Time

	lockCalls int

	txError     error
	listError   error
	createError error
}

func newMockRepository() *mockRepository {
	return &mockRepository{nextID: 1, clock: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (m *mockRepository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	if m.txError != nil {
		return m.txError
	}
	snapshot := append([]Customer(nil), m.customers...)
	nextID := m.nextID
	if err := fn(ctx, m); err != nil {
		m.customers = snapshot
		m.nextID = nextID
		return err
	}
	return nil
}

func (m *mockRepository) List(ctx context.Context, order ListOrder) ([]Customer, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	out := append([]Customer(nil), m.customers...)
	if order == OrderName {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, nil
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (m *mockRepository) LockCodes(ctx context.Context) error {
	m.lockCalls++
	return nil
}

func (m *mockRepository) RecentCodes(ctx context.Context, limit int) ([]string, error) {
	var codes []string
	for i := len(m.customers) - 1; i >= 0 && len(codes) < limit; i-- {
		if c := m.customers[i].Code; c != nil {
			codes = append(codes, *c)
		}
	}
	return codes, nil
}

func (m *mockRepository) Create(ctx context.Context, c Customer) (Customer, error) {
	if m.createError != nil {
		return Customer{}, m.createError
	}
	if c.Code != nil {
		for _, existing := range m.customers {
			if existing.Code != nil && *existing.Code == *c.Code {
				return Customer{}, ErrDuplicateCode
			}
		}
	}
	c.ID = m.nextID
	m.nextID++
	m.clock = m.clock.Add(time.Minute)
	c.CreatedAt = m.clock
	m.customers = append(m.customers, c)
	return c, nil
}

func (m *mockRepository) seed(codes ...string) {
	for _, code := range codes {
		code := code
		_, _ = m.Create(context.Background(), Customer{Name: "seed " + code, Code: &code, IsActive: true})
	}
}
