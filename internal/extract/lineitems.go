package extract

import (
	"strings"

	"github.com/invoicerd/invoicerd/internal/rules"
	"github.com/invoicerd/invoicerd/internal/tabular"
)

// Canonical line-item column names. Extracted items use these keys
// regardless of what the vendor's table headers say.
const (
	ColID         = "id"
	ColDesc       = "description"
	ColQuantity   = "quantity"
	ColUnit       = "unit"
	ColUnitPrice  = "unit_price"
	ColTotalPrice = "total_price"
)

const (
	defaultHeaderText       = "code"
	defaultTerminatorPrefix = "total"
)

// LineItemsFromTables extracts line items from every matching table on one
// page. The header row is the first row where any cell, lower-cased,
// contains the configured header text; body rows run from
// start_row_after_header past the header until a terminator row (first cell
// starting with the terminator prefix) or the table ends.
func LineItemsFromTables(tables []tabular.Table, rule rules.Rule) LineItemSet {
	tc := rule.TableConfig
	headerText := defaultHeaderText
	startAfter := 1
	terminator := defaultTerminatorPrefix
	if tc != nil {
		if tc.HeaderText != "" {
			headerText = tc.HeaderText
		}
		if tc.StartRowAfterHeader > 0 {
			startAfter = tc.StartRowAfterHeader
		}
		if tc.TerminatorPrefix != "" {
			terminator = tc.TerminatorPrefix
		}
	}
	headerText = strings.ToLower(headerText)
	terminator = strings.ToLower(terminator)

	var set LineItemSet
	for _, t := range tables {
		headerIdx := findHeaderRow(t, headerText)
		if headerIdx < 0 {
			continue
		}
		header := t.Rows[headerIdx]
		if len(set.HeaderRow) == 0 {
			set.HeaderRow = header
		}
		mapping := resolveColumns(header, tc)
		if len(mapping) == 0 {
			continue
		}
		start := headerIdx + startAfter
		if start > len(t.Rows) {
			start = len(t.Rows)
		}
		for _, row := range t.Rows[start:] {
			if blankRow(row) {
				continue
			}
			first := strings.ToLower(strings.TrimSpace(row[0]))
			if strings.HasPrefix(first, terminator) {
				break
			}
			set.Items = append(set.Items, itemsFromRow(row, mapping)...)
		}
	}
	return set
}

// findHeaderRow returns the first row where any cell contains the header
// text, or -1. The keyword can sit in any column, a leading row-number or
// blank column must not hide the header.
func findHeaderRow(t tabular.Table, headerText string) int {
	for i, row := range t.Rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), headerText) {
				return i
			}
		}
	}
	return -1
}

// resolveColumns maps canonical column names to table column indexes, either
// from the rule's explicit item_columns or by inspecting the header labels.
func resolveColumns(header []string, tc *rules.TableConfig) map[string]int {
	if tc != nil && len(tc.ItemColumns) > 0 {
		return explicitColumns(header, tc.ItemColumns)
	}
	return detectColumns(header)
}

func explicitColumns(header []string, cols map[string]rules.ColumnRef) map[string]int {
	mapping := make(map[string]int, len(cols))
	for name, ref := range cols {
		if ref.ByIndex {
			if ref.Index >= 0 && ref.Index < len(header) {
				mapping[name] = ref.Index
			}
			continue
		}
		for i, label := range header {
			if strings.EqualFold(strings.TrimSpace(label), ref.Label) {
				mapping[name] = i
				break
			}
		}
	}
	return mapping
}

// detectColumns guesses the canonical column for each header label from
// substrings commonly seen on invoices. "unit price" is checked before
// "unit" so a price column is never taken for a unit-of-measure column, and
// a label starting with "total" is the grand-total column, not a per-item
// amount.
func detectColumns(header []string) map[string]int {
	mapping := make(map[string]int)
	claim := func(name string, i int) {
		if _, taken := mapping[name]; !taken {
			mapping[name] = i
		}
	}
	for i, raw := range header {
		label := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case label == "":
		case strings.Contains(label, "code"):
			claim(ColID, i)
		case strings.Contains(label, "desc") || strings.Contains(label, "product"):
			claim(ColDesc, i)
		case strings.Contains(label, "qty") || strings.Contains(label, "quantity"):
			claim(ColQuantity, i)
		case strings.Contains(label, "unit") && strings.Contains(label, "price"):
			claim(ColUnitPrice, i)
		case strings.Contains(label, "unit"):
			claim(ColUnit, i)
		case strings.Contains(label, "ext") || strings.Contains(label, "amount"):
			claim(ColTotalPrice, i)
		case strings.Contains(label, "total") && !strings.HasPrefix(label, "total"):
			claim(ColTotalPrice, i)
		}
	}
	return mapping
}

// itemsFromRow turns one table row into one or more line items. Cells that
// hold several newline-separated segments fan out into one item per
// segment; columns with fewer segments than the widest cell reuse their
// first segment for the extra items.
func itemsFromRow(row []string, mapping map[string]int) []LineItem {
	segments := make(map[string][]string, len(mapping))
	maxSegs := 1
	for name, idx := range mapping {
		var cell string
		if idx < len(row) {
			cell = row[idx]
		}
		segs := strings.Split(cell, "\n")
		for i := range segs {
			segs[i] = strings.TrimSpace(segs[i])
		}
		segments[name] = segs
		if len(segs) > maxSegs {
			maxSegs = len(segs)
		}
	}

	var items []LineItem
	for k := 0; k < maxSegs; k++ {
		item := make(LineItem, len(segments))
		empty := true
		for name, segs := range segments {
			v := segs[0]
			if k < len(segs) {
				v = segs[k]
			}
			item[name] = v
			if v != "" {
				empty = false
			}
		}
		if !empty {
			items = append(items, item)
		}
	}
	return items
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
