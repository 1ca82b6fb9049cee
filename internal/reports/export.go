package reports

import (
	"github.com/unchin/unchin/internal/export"
)

// Table lays out the customer summary with a grand total footer.
func Table(s CustomerSummary) export.Table {
	rows := make([][]any, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, []any{r.CustomerID, r.CustomerName, r.Count, r.Freight, r.Toll, r.Exempt, r.Total})
	}
	return export.Table{
		Sheet:  "得意先別集計",
		Header: []string{"得意先ID", "得意先", "件数", "運賃", "高速代", "非課税", "合計"},
		Rows:   rows,
		Footer: [][]any{{"", "総合計", s.Grand.Count, s.Grand.Freight, s.Grand.Toll, s.Grand.Exempt, s.Grand.Total}},
	}
}

// Filename is the download name without extension.
func (r SummaryRequest) Filename() string {
	parts := r.cacheParts()
	return "customer_summary_" + parts[2] + "_" + parts[3]
}
