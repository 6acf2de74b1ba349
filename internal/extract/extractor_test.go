package extract

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/pdfio"
	"github.com/invoicerd/invoicerd/internal/rules"
	"github.com/invoicerd/invoicerd/internal/tabular"
)

func keywordRule(field, keyword string, required bool) rules.Rule {
	return rules.Rule{
		FieldName:    field,
		DataType:     constants.DataTypeText,
		LocationType: constants.LocationTypeKeyword,
		Keyword:      keyword,
		Required:     required,
	}
}

func TestExtractBestEffort(t *testing.T) {
	e := NewExtractor(Config{}, nil, nil)
	pages := []pdfio.Page{makePage(1, "Invoice No. ABC123")}
	ruleSet := []rules.Rule{
		keywordRule("invoice_number", "Invoice No.", true),
		keywordRule("po_number", "PO Number", true),
		keywordRule("terms", "Terms", true),
		keywordRule("notes", "Notes", false),
	}

	record, issues, err := e.Extract(context.Background(), pages, ruleSet)
	require.Error(t, err)
	assert.Equal(t, "Extraction failed for fields: po_number, terms", err.Error())

	// Partial results survive in best-effort mode.
	assert.Equal(t, "ABC123", record["invoice_number"])
	assert.NotContains(t, record, "po_number")
	assert.NotContains(t, record, "notes")

	var missing []string
	for _, is := range issues {
		if is.Kind == IssueRequiredFieldMissing {
			missing = append(missing, is.Field)
		}
	}
	assert.Equal(t, []string{"po_number", "terms"}, missing)
}

func TestExtractStrictDiscardsPartial(t *testing.T) {
	e := NewExtractor(Config{StrictRequiredFields: true}, nil, nil)
	pages := []pdfio.Page{makePage(1, "Invoice No. ABC123")}
	ruleSet := []rules.Rule{
		keywordRule("invoice_number", "Invoice No.", true),
		keywordRule("po_number", "PO Number", true),
	}

	record, _, err := e.Extract(context.Background(), pages, ruleSet)
	require.Error(t, err)
	assert.Nil(t, record)
}

func TestExtractFirstPageWins(t *testing.T) {
	e := NewExtractor(Config{}, nil, nil)
	pages := []pdfio.Page{
		makePage(1, "Invoice No. FIRST"),
		makePage(2, "Invoice No. SECOND"),
	}

	record, _, err := e.Extract(context.Background(), pages, []rules.Rule{
		keywordRule("invoice_number", "Invoice No.", true),
	})
	require.NoError(t, err)
	assert.Equal(t, "FIRST", record["invoice_number"])
}

func TestExtractCurrencyField(t *testing.T) {
	e := NewExtractor(Config{}, nil, nil)
	pages := []pdfio.Page{makePage(1, "Amount due: $1,234.50")}

	record, _, err := e.Extract(context.Background(), pages, []rules.Rule{{
		FieldName:    "total",
		DataType:     constants.DataTypeCurrency,
		LocationType: constants.LocationTypeKeyword,
		Keyword:      "Amount due",
		Required:     true,
	}})
	require.NoError(t, err)
	a, ok := record["total"].(Amount)
	require.True(t, ok)
	assert.True(t, a.Equal(decimal.RequireFromString("1234.50")))
	assert.Equal(t, "1234.50", a.String())
}

func TestExtractValidationFailureOmitsField(t *testing.T) {
	e := NewExtractor(Config{}, nil, nil)
	pages := []pdfio.Page{makePage(1, "Invoice No. notanumber")}

	record, issues, err := e.Extract(context.Background(), pages, []rules.Rule{{
		FieldName:    "invoice_number",
		DataType:     constants.DataTypeText,
		LocationType: constants.LocationTypeKeyword,
		Keyword:      "Invoice No.",
		Required:     true,
		Validation:   &rules.Validation{Regex: `\d+`},
	}})
	require.Error(t, err)
	assert.Equal(t, "Extraction failed for fields: invoice_number", err.Error())
	assert.NotContains(t, record, "invoice_number")
	require.NotEmpty(t, issues)
	assert.Equal(t, IssueValidationFailed, issues[0].Kind)
}

func TestExtractIdempotent(t *testing.T) {
	e := NewExtractor(Config{}, nil, nil)
	pages := []pdfio.Page{makePage(1, "Invoice No. ABC123", "Date: 2024-01-15")}
	ruleSet := []rules.Rule{
		keywordRule("invoice_number", "Invoice No.", true),
		{
			FieldName:    "date",
			DataType:     constants.DataTypeDate,
			LocationType: constants.LocationTypeKeyword,
			Keyword:      "Date",
		},
	}

	first, _, err := e.Extract(context.Background(), pages, ruleSet)
	require.NoError(t, err)
	second, _, err := e.Extract(context.Background(), pages, ruleSet)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "2024-01-15", first["date"])
}

// tableWords lays rows of cells at fixed column X positions so the ruled
// detector sees aligned left edges.
func tableWords(rows [][]string) []pdfio.Word {
	xs := []float64{50, 200, 350, 500, 650}
	var words []pdfio.Word
	y := 700.0
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

func TestExtractLineItemsFromPage(t *testing.T) {
	page := pdfio.Page{Number: 1, Words: tableWords([][]string{
		{"Code", "Description", "Qty", "Unit", "Amount"},
		{"A1", "Widget", "2", "ea", "5.00"},
		{"B2", "Sprocket", "1", "ea", "3.00"},
		{"TOTAL", "", "", "", "8.00"},
	})}

	e := NewExtractor(Config{}, nil, nil)
	record, _, err := e.Extract(context.Background(), []pdfio.Page{page}, []rules.Rule{{
		FieldName:    "line_items",
		DataType:     constants.DataTypeLineItems,
		LocationType: constants.LocationTypeTable,
		Required:     true,
		TableConfig:  &rules.TableConfig{ParsingMethod: "ruled"},
	}})
	require.NoError(t, err)

	set, ok := record["line_items"].(*LineItemSet)
	require.True(t, ok)
	require.Len(t, set.Items, 2)
	assert.Equal(t, "A1", set.Items[0][ColID])
	assert.Equal(t, "Widget", set.Items[0][ColDesc])
	assert.Equal(t, "Sprocket", set.Items[1][ColDesc])
}

func TestTableCacheDetectsOncePerOptionSet(t *testing.T) {
	cache := newTableCache(tabular.NewEngine(nil))
	page := pdfio.Page{Number: 1, Words: tableWords([][]string{
		{"Code", "Description", "Qty"},
		{"A1", "Widget", "2"},
		{"B2", "Sprocket", "1"},
	})}

	opts := tabular.Options{Flavor: constants.ParsingMethodRuled}
	first := cache.tables(page, opts)
	second := cache.tables(page, opts)
	require.Len(t, cache.memo, 1)
	assert.Equal(t, first, second)

	// A different flavor is a different detection run.
	cache.tables(page, tabular.Options{Flavor: constants.ParsingMethodWhitespace})
	assert.Len(t, cache.memo, 2)
}

func TestExtractCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewExtractor(Config{}, nil, nil)
	_, _, err := e.Extract(ctx, []pdfio.Page{makePage(1, "x")}, []rules.Rule{
		keywordRule("f", "x", false),
	})
	assert.ErrorIs(t, err, context.Canceled)
}
