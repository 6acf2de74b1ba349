package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicerd/invoicerd/internal/pdfio"
)

// gridWords lays one word per cell at fixed column X positions with aligned
// left edges, one row every 20pt from the top.
func gridWords(topY float64, rows [][]string) []pdfio.Word {
	xs := []float64{50, 200, 350, 500}
	var words []pdfio.Word
	y := topY
	for _, row := range rows {
		for i, cell := range row {
			if cell == "" {
				continue
			}
			words = append(words, pdfio.Word{Text: cell, X: xs[i], Y: y, W: 60, FontSize: 10})
		}
		y -= 20
	}
	return words
}

func TestTablesRuled(t *testing.T) {
	page := pdfio.Page{Words: gridWords(700, [][]string{
		{"Code", "Description", "Qty"},
		{"A1", "Widget", "2"},
		{"B2", "Sprocket", "1"},
	})}

	tables := NewEngine(nil).Tables(page, Options{Flavor: "ruled"})
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Rows, 3)
	assert.Equal(t, []string{"Code", "Description", "Qty"}, tables[0].Rows[0])
	assert.Equal(t, []string{"B2", "Sprocket", "1"}, tables[0].Rows[2])
}

func TestTablesWhitespace(t *testing.T) {
	// Left edges jitter across rows so alignment carries no signal; only
	// the recurring gaps mark the columns.
	words := []pdfio.Word{
		{Text: "Code", X: 50, Y: 700, W: 40},
		{Text: "Qty", X: 200, Y: 700, W: 40},
		{Text: "A1", X: 62, Y: 680, W: 40},
		{Text: "2", X: 212, Y: 680, W: 40},
		{Text: "B2", X: 74, Y: 660, W: 40},
		{Text: "1", X: 224, Y: 660, W: 40},
	}

	tables := NewEngine(nil).Tables(pdfio.Page{Words: words}, Options{Flavor: "whitespace"})
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Rows, 3)
	assert.Equal(t, "A1", tables[0].Rows[1][0])
	assert.Equal(t, "2", tables[0].Rows[1][1])
}

func TestTablesHybridFallsBack(t *testing.T) {
	// Jittered edges defeat the ruled pass; hybrid must still find the
	// columns through the whitespace histogram.
	words := []pdfio.Word{
		{Text: "Code", X: 50, Y: 700, W: 40},
		{Text: "Qty", X: 200, Y: 700, W: 40},
		{Text: "A1", X: 62, Y: 680, W: 40},
		{Text: "2", X: 212, Y: 680, W: 40},
		{Text: "B2", X: 74, Y: 660, W: 40},
		{Text: "1", X: 224, Y: 660, W: 40},
	}

	tables := NewEngine(nil).Tables(pdfio.Page{Words: words}, Options{})
	require.Len(t, tables, 1)
	assert.Len(t, tables[0].Rows[0], 2)
}

func TestTablesStackedSplit(t *testing.T) {
	words := append(
		gridWords(700, [][]string{
			{"Code", "Qty", ""},
			{"A1", "2", ""},
			{"B2", "1", ""},
		}),
		gridWords(480, [][]string{
			{"Fee", "Amount", ""},
			{"Freight", "9.00", ""},
			{"Handling", "3.00", ""},
		})...,
	)

	tables := NewEngine(nil).Tables(pdfio.Page{Words: words}, Options{Flavor: "ruled"})
	require.Len(t, tables, 2)
	assert.Equal(t, "Code", tables[0].Rows[0][0])
	assert.Equal(t, "Fee", tables[1].Rows[0][0])
}

func TestTablesAreaRestriction(t *testing.T) {
	words := gridWords(700, [][]string{
		{"Code", "Qty", ""},
		{"A1", "2", ""},
	})
	// Area excludes every word.
	tables := NewEngine(nil).Tables(pdfio.Page{Words: words}, Options{
		Flavor: "ruled",
		Area:   pdfio.BBox{X: 0, Y: 0, Width: 20, Height: 20},
	})
	assert.Nil(t, tables)
}

func TestTablesTooSparse(t *testing.T) {
	tables := NewEngine(nil).Tables(pdfio.Page{Words: []pdfio.Word{
		{Text: "lonely", X: 50, Y: 700, W: 30},
	}}, Options{})
	assert.Nil(t, tables)
}
