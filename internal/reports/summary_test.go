package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchin/unchin/internal/shipments"
)

func named(s string) *string { return &s }

func TestGroupByCustomer(t *testing.T) {
	rows := []shipments.Shipment{
		{CustomerID: 2, CustomerName: named("佐藤商事"), FreightAmount: 1000},
		{CustomerID: 1, CustomerName: named("山田運送"), FreightAmount: 3000, TollAmount: 500},
		{CustomerID: 2, CustomerName: named("佐藤商事"), FreightAmount: 2000, TaxExemptAmount: 500},
		{CustomerID: 3, FreightAmount: 3500},
		{CustomerID: 4, CustomerName: named(""), FreightAmount: 10},
	}

	got := GroupByCustomer(rows)
	require.Len(t, got.Rows, 4)

	// customers 1, 2 and 3 all total 3500; ties go to the lower id.
	assert.Equal(t, []int64{1, 2, 3, 4}, []int64{
		got.Rows[0].CustomerID, got.Rows[1].CustomerID, got.Rows[2].CustomerID, got.Rows[3].CustomerID,
	})
	assert.Equal(t, CustomerRow{CustomerID: 2, CustomerName: "佐藤商事", Count: 2, Freight: 3000, Exempt: 500, Total: 3500}, got.Rows[1])
	assert.Equal(t, "得意先#3", got.Rows[2].CustomerName)
	assert.Equal(t, "得意先#4", got.Rows[3].CustomerName)

	assert.Equal(t, 5, got.Grand.Count)
	assert.Equal(t, int64(10510), got.Grand.Total)
}

func TestGroupByCustomerEmpty(t *testing.T) {
	got := GroupByCustomer(nil)
	assert.NotNil(t, got.Rows)
	assert.Empty(t, got.Rows)
	assert.Zero(t, got.Grand.Total)
}
