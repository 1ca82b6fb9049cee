package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteXLSX renders table as a single-sheet workbook with a bold header.
func WriteXLSX(w io.Writer, table Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := defaultSheet
	if table.Sheet != "" {
		if err := f.SetSheetName(defaultSheet, table.Sheet); err != nil {
			return fmt.Errorf("export: rename sheet: %w", err)
		}
		sheet = table.Sheet
	}

	header := make([]any, len(table.Header))
	for i, h := range table.Header {
		header[i] = h
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}

	rowNo := 2
	for _, row := range table.Rows {
		if err := setRow(f, sheet, rowNo, xlsxRow(row)); err != nil {
			return err
		}
		rowNo++
	}
	if len(table.Footer) > 0 {
		rowNo++
		for _, row := range table.Footer {
			if err := setRow(f, sheet, rowNo, xlsxRow(row)); err != nil {
				return err
			}
			if err := f.SetRowStyle(sheet, rowNo, rowNo, bold); err != nil {
				return fmt.Errorf("export: footer style: %w", err)
			}
			rowNo++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNo int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export: row %d: %w", rowNo, err)
	}
	return nil
}

// xlsxRow keeps integers numeric and flattens optional strings.
func xlsxRow(row []any) []any {
	out := make([]any, len(row))
	for i, cell := range row {
		switch v := cell.(type) {
		case int, int64, string, nil:
			out[i] = v
		default:
			out[i] = formatCell(v)
		}
	}
	return out
}
