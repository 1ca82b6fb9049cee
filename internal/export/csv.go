package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// utf8BOM lets spreadsheet applications detect UTF-8 for Japanese text.
const utf8BOM = "\ufeff"

// WriteCSV serialises table as UTF-8 CSV with a leading BOM.
func WriteCSV(w io.Writer, table Table) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(table.Header); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writer.Write(formatRow(row)); err != nil {
			return err
		}
	}
	if len(table.Footer) > 0 {
		if err := writer.Write(nil); err != nil {
			return err
		}
		for _, row := range table.Footer {
			if err := writer.Write(formatRow(row)); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatRow(row []any) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = formatCell(cell)
	}
	return out
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
