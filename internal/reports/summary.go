package reports

import (
	"fmt"
	"sort"

	"github.com/unchin/unchin/internal/invoices"
	"github.com/unchin/unchin/internal/shipments"
)

// CustomerRow is one line of the customer summary.
type CustomerRow struct {
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Count        int    `json:"count"`
	Freight      int64  `json:"freight"`
	Toll         int64  `json:"toll"`
	Exempt       int64  `json:"exempt"`
	Total        int64  `json:"total"`
}

// CustomerSummary is the grouped report with its grand total.
type CustomerSummary struct {
	Rows  []CustomerRow    `json:"rows"`
	Grand invoices.Summary `json:"grand"`
}

// FallbackName labels a customer whose name is unknown.
func FallbackName(customerID int64) string {
	return fmt.Sprintf("得意先#%d", customerID)
}

// GroupByCustomer totals rows per customer, largest total first with ties
// broken by customer id.
func GroupByCustomer(rows []shipments.Shipment) CustomerSummary {
	groups := make(map[int64]*CustomerRow)
	var grand invoices.Summary
	for _, s := range rows {
		grand.Add(s)
		g, ok := groups[s.CustomerID]
		if !ok {
			g = &CustomerRow{CustomerID: s.CustomerID, CustomerName: FallbackName(s.CustomerID)}
			groups[s.CustomerID] = g
		}
		if s.CustomerName != nil && *s.CustomerName != "" {
			g.CustomerName = *s.CustomerName
		}
		g.Count++
		g.Freight += s.FreightAmount
		g.Toll += s.TollAmount
		g.Exempt += s.TaxExemptAmount
		g.Total = g.Freight + g.Toll + g.Exempt
	}

	out := make([]CustomerRow, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	return CustomerSummary{Rows: out, Grand: grand}
}
