package extract

import (
	"regexp"
	"strings"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/pdfio"
	"github.com/invoicerd/invoicerd/internal/rules"
	"github.com/invoicerd/invoicerd/internal/tabular"
)

// FieldFromPage resolves a coordinates, keyword or regex rule against one
// page. Returns the raw matched text and whether anything matched.
func FieldFromPage(page pdfio.Page, rule rules.Rule) (string, bool) {
	switch rule.LocationType {
	case constants.LocationTypeCoordinates:
		return fieldFromCoordinates(page, rule)
	case constants.LocationTypeKeyword:
		return fieldFromKeyword(page.Text(), rule.Keyword)
	case constants.LocationTypeRegex:
		return fieldFromRegex(page.Text(), rule.RegexPattern)
	}
	return "", false
}

func fieldFromCoordinates(page pdfio.Page, rule rules.Rule) (string, bool) {
	if rule.Coordinates == nil {
		return "", false
	}
	words := page.WordsIn(*rule.Coordinates)
	if len(words) == 0 {
		return "", false
	}
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " "), true
}

// fieldFromKeyword takes the text following the first occurrence of the
// keyword, up to the next line break. A colon directly after the keyword is
// part of the label, not the value.
func fieldFromKeyword(text, keyword string) (string, bool) {
	idx := strings.Index(text, keyword)
	if idx < 0 {
		return "", false
	}
	rest := text[idx+len(keyword):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":"))
	rest = strings.TrimSuffix(rest, ":")
	if rest == "" {
		return "", false
	}
	return rest, true
}

func fieldFromRegex(text, pattern string) (string, bool) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false
	}
	m := re.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

// FieldFromTables resolves a table or header rule against the tables found
// on one page. Header lookups find the row holding header_text, then step
// row_index rows down (default 1) and read col_index; when col_index is
// unset the column the header cell occupies is reused. Without header_text
// the cell is addressed directly by row_index and col_index.
func FieldFromTables(tables []tabular.Table, rule rules.Rule) (string, bool) {
	tc := rule.TableConfig
	if tc == nil {
		return "", false
	}
	for _, t := range tables {
		if tc.HeaderText != "" {
			if v, ok := cellBelowHeader(t, tc); ok {
				return v, true
			}
			continue
		}
		if tc.RowIndex == nil || tc.ColIndex == nil {
			return "", false
		}
		if v, ok := cellAt(t, *tc.RowIndex, *tc.ColIndex); ok {
			return v, true
		}
	}
	return "", false
}

func cellBelowHeader(t tabular.Table, tc *rules.TableConfig) (string, bool) {
	for ri, row := range t.Rows {
		for ci, cell := range row {
			if strings.TrimSpace(cell) != tc.HeaderText {
				continue
			}
			step := 1
			if tc.RowIndex != nil {
				step = *tc.RowIndex
			}
			col := ci
			if tc.ColIndex != nil {
				col = *tc.ColIndex
			}
			return cellAt(t, ri+step, col)
		}
	}
	return "", false
}

func cellAt(t tabular.Table, row, col int) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return "", false
	}
	v := strings.TrimSpace(r[col])
	if v == "" {
		return "", false
	}
	return v, true
}
