package invoices

import (
	"fmt"

	"github.com/unchin/unchin/internal/export"
)

var previewHeader = []string{
	"日付", "発地", "着地", "品名", "車番", "運転手", "傭車先",
	"運賃", "高速代", "非課税", "合計", "備考", "状態",
}

// Table lays out a preview as an invoice detail sheet with a totals footer.
func Table(p Preview) export.Table {
	rows := make([][]any, 0, len(p.Rows))
	for _, s := range p.Rows {
		rows = append(rows, []any{
			s.Date.String(), s.Origin, s.Destination, s.ItemName, s.VehicleNo, s.DriverName, s.PartnerName,
			s.FreightAmount, s.TollAmount, s.TaxExemptAmount, s.Total(), s.Note, string(s.Status),
		})
	}
	return export.Table{
		Sheet:  "請求明細",
		Header: previewHeader,
		Rows:   rows,
		Footer: [][]any{
			{"件数", p.Sum.Count},
			{"合計", "", "", "", "", "", "", p.Sum.Freight, p.Sum.Toll, p.Sum.Exempt, p.Sum.Total},
		},
	}
}

// Filename is the download name without extension.
func Filename(w Window) string {
	return fmt.Sprintf("invoice_%d_%s_%s", w.CustomerID, w.From.String(), w.To.String())
}
