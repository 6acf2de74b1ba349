package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicerd/invoicerd/internal/rules"
	"github.com/invoicerd/invoicerd/internal/tabular"
)

func TestLineItemsAutoDetect(t *testing.T) {
	tables := []tabular.Table{{Rows: [][]string{
		{"Code", "Description", "Qty", "Unit Price", "Ext. Price"},
		{"A1", "Widget", "2", "5.00", "10.00"},
		{"TOTAL", "", "", "", "10.00"},
	}}}

	set := LineItemsFromTables(tables, rules.Rule{FieldName: "line_items"})
	assert.Equal(t, []string{"Code", "Description", "Qty", "Unit Price", "Ext. Price"}, set.HeaderRow)
	require.Len(t, set.Items, 1)
	assert.Equal(t, LineItem{
		ColID:         "A1",
		ColDesc:       "Widget",
		ColQuantity:   "2",
		ColUnitPrice:  "5.00",
		ColTotalPrice: "10.00",
	}, set.Items[0])
}

func TestLineItemsTerminatorStopsScan(t *testing.T) {
	tables := []tabular.Table{{Rows: [][]string{
		{"Code", "Description", "Qty"},
		{"A1", "Widget", "2"},
		{"", "", ""},
		{"B2", "Sprocket", "1"},
		{"Total due", "", "3"},
		{"C3", "Should not appear", "9"},
	}}}

	set := LineItemsFromTables(tables, rules.Rule{})
	require.Len(t, set.Items, 2)
	assert.Equal(t, "A1", set.Items[0][ColID])
	assert.Equal(t, "B2", set.Items[1][ColID])
}

func TestLineItemsExplicitColumns(t *testing.T) {
	tables := []tabular.Table{{Rows: [][]string{
		{"Code", "Item", "Each"},
		{"A1", "Widget", "5.00"},
	}}}

	set := LineItemsFromTables(tables, rules.Rule{TableConfig: &rules.TableConfig{
		ItemColumns: map[string]rules.ColumnRef{
			ColID:        {Label: "code"},
			ColDesc:      {Label: "Item"},
			ColUnitPrice: {Index: 2, ByIndex: true},
		},
	}})
	require.Len(t, set.Items, 1)
	assert.Equal(t, LineItem{ColID: "A1", ColDesc: "Widget", ColUnitPrice: "5.00"}, set.Items[0])
}

func TestLineItemsMultiLineCells(t *testing.T) {
	tables := []tabular.Table{{Rows: [][]string{
		{"Code", "Description", "Qty"},
		{"A1", "Widget small\nWidget large", "2\n3"},
	}}}

	set := LineItemsFromTables(tables, rules.Rule{})
	require.Len(t, set.Items, 2)
	// The short code column carries its first segment into every split item.
	assert.Equal(t, LineItem{ColID: "A1", ColDesc: "Widget small", ColQuantity: "2"}, set.Items[0])
	assert.Equal(t, LineItem{ColID: "A1", ColDesc: "Widget large", ColQuantity: "3"}, set.Items[1])
}

func TestLineItemsCustomHeaderAndTerminator(t *testing.T) {
	tables := []tabular.Table{{Rows: [][]string{
		{"Item no.", "Description"},
		{"skip this row", ""},
		{"A1", "Widget"},
		{"Subtotal", "10.00"},
	}}}

	set := LineItemsFromTables(tables, rules.Rule{TableConfig: &rules.TableConfig{
		HeaderText:          "item",
		StartRowAfterHeader: 2,
		TerminatorPrefix:    "subtotal",
		ItemColumns: map[string]rules.ColumnRef{
			ColID:   {Index: 0, ByIndex: true},
			ColDesc: {Index: 1, ByIndex: true},
		},
	}})
	require.Len(t, set.Items, 1)
	assert.Equal(t, "A1", set.Items[0][ColID])
}

func TestLineItemsAggregateAcrossTables(t *testing.T) {
	tables := []tabular.Table{
		{Rows: [][]string{
			{"Code", "Description"},
			{"A1", "Widget"},
		}},
		{Rows: [][]string{
			{"Code", "Desc"},
			{"B2", "Sprocket"},
		}},
	}

	set := LineItemsFromTables(tables, rules.Rule{})
	// The first table's header row is the set's header.
	assert.Equal(t, []string{"Code", "Description"}, set.HeaderRow)
	require.Len(t, set.Items, 2)
	assert.Equal(t, "Sprocket", set.Items[1][ColDesc])
}

func TestLineItemsHeaderKeywordInAnyCell(t *testing.T) {
	// A row-number column in front of the header must not hide it.
	tables := []tabular.Table{{Rows: [][]string{
		{"#", "Code", "Description", "Qty", "Unit Price", "Ext. Price"},
		{"1", "A1", "Widget", "2", "5.00", "10.00"},
	}}}

	set := LineItemsFromTables(tables, rules.Rule{})
	require.Len(t, set.Items, 1)
	assert.Equal(t, "A1", set.Items[0][ColID])
	assert.Equal(t, "Widget", set.Items[0][ColDesc])
}

func TestLineItemsStartPastTableEnd(t *testing.T) {
	// Header on the last row plus a start offset stepping past it yields
	// zero items, never a bounds panic.
	tables := []tabular.Table{{Rows: [][]string{
		{"A1", "Widget"},
		{"Code", "Description"},
	}}}

	set := LineItemsFromTables(tables, rules.Rule{TableConfig: &rules.TableConfig{
		StartRowAfterHeader: 2,
	}})
	assert.Empty(t, set.Items)
	assert.Equal(t, []string{"Code", "Description"}, set.HeaderRow)
}

func TestLineItemsTerminatorChecksFirstCellOnly(t *testing.T) {
	// "TOTAL" outside column 0 is data, not a terminator.
	tables := []tabular.Table{{Rows: [][]string{
		{"Code", "Description", "Qty"},
		{"A1", "TOTAL STATION KIT", "1"},
		{"", "TOTAL FREIGHT", "1"},
		{"Total", "", "2"},
		{"B2", "Should not appear", "9"},
	}}}

	set := LineItemsFromTables(tables, rules.Rule{})
	require.Len(t, set.Items, 2)
	assert.Equal(t, "TOTAL STATION KIT", set.Items[0][ColDesc])
	assert.Equal(t, "TOTAL FREIGHT", set.Items[1][ColDesc])
}

func TestLineItemsNoHeaderRow(t *testing.T) {
	tables := []tabular.Table{{Rows: [][]string{
		{"Something", "Else"},
		{"A1", "Widget"},
	}}}

	set := LineItemsFromTables(tables, rules.Rule{})
	assert.True(t, set.Empty())
}
