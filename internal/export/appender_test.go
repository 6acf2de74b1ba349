package export

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/invoicerd/invoicerd/internal/entity"
)

func TestWorkbookAppender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.xlsx")
	a := NewWorkbookAppender(path, "", nil)

	ctx := context.Background()
	require.NoError(t, a.AppendRow(ctx, []string{"ABC123", "2024-01-15", "1234.50"}))
	require.NoError(t, a.AppendRow(ctx, []string{"DEF456", "2024-02-01", "88.00"}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(invoiceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ABC123", "2024-01-15", "1234.50"}, rows[0])
	assert.Equal(t, "DEF456", rows[1][0])
}

func TestMappedColumns(t *testing.T) {
	v := &entity.Vendor{SpreadsheetColumnMapping: map[string]string{
		"total_amount":   "C",
		"invoice_number": "A",
		"invoice_date":   "B",
	}}
	assert.Equal(t, []string{"invoice_number", "invoice_date", "total_amount"}, MappedColumns(v))
	assert.Nil(t, MappedColumns(&entity.Vendor{}))
}
