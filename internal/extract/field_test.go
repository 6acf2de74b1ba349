package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/pdfio"
	"github.com/invoicerd/invoicerd/internal/rules"
	"github.com/invoicerd/invoicerd/internal/tabular"
)

// makePage lays text lines out as positioned words, top to bottom.
func makePage(num int, lines ...string) pdfio.Page {
	var words []pdfio.Word
	y := 760.0
	for _, line := range lines {
		x := 72.0
		for _, f := range strings.Fields(line) {
			w := float64(len(f)) * 6
			words = append(words, pdfio.Word{Text: f, X: x, Y: y, W: w, FontSize: 10})
			x += w + 12
		}
		y -= 20
	}
	return pdfio.Page{Number: num, Words: words}
}

func TestFieldFromKeyword(t *testing.T) {
	page := makePage(1, "Tax Invoice", "Invoice No. ABC123", "Date: 2024-01-02")

	t.Run("value after keyword", func(t *testing.T) {
		v, ok := FieldFromPage(page, rules.Rule{
			FieldName:    "invoice_number",
			DataType:     constants.DataTypeText,
			LocationType: constants.LocationTypeKeyword,
			Keyword:      "Invoice No.",
		})
		require.True(t, ok)
		assert.Equal(t, "ABC123", v)
	})

	t.Run("label colon stripped", func(t *testing.T) {
		v, ok := FieldFromPage(page, rules.Rule{
			LocationType: constants.LocationTypeKeyword,
			Keyword:      "Date",
		})
		require.True(t, ok)
		assert.Equal(t, "2024-01-02", v)
	})

	t.Run("keyword absent", func(t *testing.T) {
		_, ok := FieldFromPage(page, rules.Rule{
			LocationType: constants.LocationTypeKeyword,
			Keyword:      "PO Number",
		})
		assert.False(t, ok)
	})

	t.Run("keyword at end of line", func(t *testing.T) {
		_, ok := FieldFromPage(page, rules.Rule{
			LocationType: constants.LocationTypeKeyword,
			Keyword:      "Tax Invoice",
		})
		assert.False(t, ok)
	})
}

func TestFieldFromRegex(t *testing.T) {
	page := makePage(1, "Ref INV-2024-0042 issued")
	v, ok := FieldFromPage(page, rules.Rule{
		LocationType: constants.LocationTypeRegex,
		RegexPattern: `INV-\d{4}-\d{4}`,
	})
	require.True(t, ok)
	assert.Equal(t, "INV-2024-0042", v)
}

func TestFieldFromCoordinates(t *testing.T) {
	page := makePage(1, "Acme Pty Ltd", "12 Example St")
	area := pdfio.BBox{X: 0, Y: 750, Width: 600, Height: 20}
	v, ok := FieldFromPage(page, rules.Rule{
		LocationType: constants.LocationTypeCoordinates,
		Coordinates:  &area,
	})
	require.True(t, ok)
	assert.Equal(t, "Acme Pty Ltd", v)

	empty := pdfio.BBox{X: 0, Y: 0, Width: 10, Height: 10}
	_, ok = FieldFromPage(page, rules.Rule{
		LocationType: constants.LocationTypeCoordinates,
		Coordinates:  &empty,
	})
	assert.False(t, ok)
}

func TestFieldFromTables(t *testing.T) {
	tables := []tabular.Table{{Rows: [][]string{
		{"", "Subtotal", "Total"},
		{"", "90.00", "100.00"},
	}}}

	t.Run("cell below header", func(t *testing.T) {
		v, ok := FieldFromTables(tables, rules.Rule{
			LocationType: constants.LocationTypeHeader,
			TableConfig:  &rules.TableConfig{HeaderText: "Total"},
		})
		require.True(t, ok)
		assert.Equal(t, "100.00", v)
	})

	t.Run("explicit col index", func(t *testing.T) {
		col := 1
		v, ok := FieldFromTables(tables, rules.Rule{
			LocationType: constants.LocationTypeHeader,
			TableConfig:  &rules.TableConfig{HeaderText: "Total", ColIndex: &col},
		})
		require.True(t, ok)
		assert.Equal(t, "90.00", v)
	})

	t.Run("direct addressing", func(t *testing.T) {
		row, col := 1, 2
		v, ok := FieldFromTables(tables, rules.Rule{
			LocationType: constants.LocationTypeTable,
			TableConfig:  &rules.TableConfig{RowIndex: &row, ColIndex: &col},
		})
		require.True(t, ok)
		assert.Equal(t, "100.00", v)
	})

	t.Run("out of range", func(t *testing.T) {
		row, col := 7, 0
		_, ok := FieldFromTables(tables, rules.Rule{
			LocationType: constants.LocationTypeTable,
			TableConfig:  &rules.TableConfig{RowIndex: &row, ColIndex: &col},
		})
		assert.False(t, ok)
	})
}
