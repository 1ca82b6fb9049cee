// Package export renders tabular report data as XLSX or CSV downloads.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/unchin/unchin/internal/shared"
)

// Format selects the file type of an export.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts xlsx or csv; blank defaults to xlsx.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", shared.ErrValidation, raw)
	}
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Filename appends the format extension to base.
func (f Format) Filename(base string) string {
	return base + "." + string(f)
}

// Table is a sheet of header, body and footer rows. Cells are strings or
// integers; footer rows follow the body after one blank row.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]any
	Footer [][]any
}

// Write renders table in the requested format.
func Write(w io.Writer, format Format, table Table) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, table)
	case FormatXLSX:
		return WriteXLSX(w, table)
	default:
		return fmt.Errorf("%w: unsupported export format %q", shared.ErrValidation, format)
	}
}
