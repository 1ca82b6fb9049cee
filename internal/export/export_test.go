package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/unchin/unchin/internal/shared"
)

func sampleTable() Table {
	note := "午前着"
	return Table{
		Sheet:  "請求明細",
		Header: []string{"日付", "運賃", "備考"},
		Rows: [][]any{
			{"2024-05-01", int64(25000), &note},
			{"2024-05-02", int64(1200), (*string)(nil)},
		},
		Footer: [][]any{{"合計", int64(26200), ""}},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)
	assert.Equal(t, "invoice.csv", f.Filename("invoice"))
	assert.Contains(t, f.ContentType(), "text/csv")

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestWriteCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, FormatCSV, sampleTable()))

	body := buf.String()
	require.True(t, strings.HasPrefix(body, utf8BOM))

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(body, utf8BOM)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"日付", "運賃", "備考"}, records[0])
	assert.Equal(t, []string{"2024-05-01", "25000", "午前着"}, records[1])
	assert.Equal(t, []string{"2024-05-02", "1200", ""}, records[2])
	assert.Equal(t, []string{"合計", "26200", ""}, records[3])
}

func TestWriteXLSX(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, FormatXLSX, sampleTable()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"請求明細"}, f.GetSheetList())
	rows, err := f.GetRows("請求明細")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"日付", "運賃", "備考"}, rows[0])
	assert.Equal(t, []string{"2024-05-01", "25000", "午前着"}, rows[1])
	assert.Empty(t, rows[3])
	assert.Equal(t, []string{"合計", "26200"}, rows[4])
}
