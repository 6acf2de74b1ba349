package tabular

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/pdfio"
)

const (
	// columnGapThreshold is the minimum horizontal gap treated as a column
	// separator by the whitespace flavor.
	columnGapThreshold = 15.0
	// gapBucketSize buckets gap centers so slightly shifted gaps across rows
	// still vote for the same boundary.
	gapBucketSize = 20.0
	// edgeBucketSize buckets word left edges for the ruled flavor.
	edgeBucketSize = 10.0
	// tableBreakFactor times the median row pitch marks a break between
	// stacked tables on the same page.
	tableBreakFactor = 3.0

	minTableRows = 2
	minTableCols = 2
)

// Table is rows of cell strings. Cells are empty strings when blank, never
// absent, so every row has the same width.
type Table struct {
	Rows [][]string
}

// Options selects the detection flavor and an optional page area.
type Options struct {
	Flavor constants.ParsingMethod
	Area   pdfio.BBox
}

// Engine turns positioned words into tables. It is pure geometric analysis;
// callers hand it pages and the engine never touches the PDF backend.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// DocumentTables extracts tables for one 1-based page of an open document.
// Backend failures are logged and reported as "nothing found": callers must
// treat an empty result as no tables, not as a hard error.
func (e *Engine) DocumentTables(doc *pdfio.Document, pageNum int, opts Options) []Table {
	page, err := doc.Page(pageNum)
	if err != nil {
		e.logger.Warn("tabular.page.unreadable", "path", doc.Path(), "page", pageNum, "error", err)
		return nil
	}
	return e.Tables(page, opts)
}

// Tables detects tables on one page under the requested flavor. Stacked
// tables separated by large vertical gaps are returned as separate tables in
// top-to-bottom order. The ordering of tables across pages carries no
// meaning; callers iterate page-by-page when row order matters.
func (e *Engine) Tables(page pdfio.Page, opts Options) []Table {
	words := page.WordsIn(opts.Area)
	if len(words) == 0 {
		return nil
	}

	rows := groupRows(words)
	if len(rows) < minTableRows {
		return nil
	}

	var tables []Table
	for _, band := range splitBands(rows) {
		if t, ok := e.buildTable(band, opts.Flavor); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

func (e *Engine) buildTable(rows []wordRow, flavor constants.ParsingMethod) (Table, bool) {
	if len(rows) < minTableRows {
		return Table{}, false
	}

	var boundaries []float64
	switch constants.NormalizeParsingMethod(string(flavor)) {
	case constants.ParsingMethodRuled:
		boundaries = ruledBoundaries(rows)
	case constants.ParsingMethodWhitespace:
		boundaries = whitespaceBoundaries(rows)
	default: // hybrid: ruled first, whitespace when the grid is too sparse
		boundaries = ruledBoundaries(rows)
		if len(boundaries) < minTableCols-1 {
			boundaries = whitespaceBoundaries(rows)
		}
	}

	if len(boundaries) < minTableCols-1 {
		return Table{}, false
	}

	cols := len(boundaries) + 1
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([][]string, cols)
		for _, w := range row.words {
			idx := columnIndex(boundaries, w.X+w.W/2)
			cells[idx] = append(cells[idx], w.Text)
		}
		rendered := make([]string, cols)
		for i, parts := range cells {
			rendered[i] = strings.Join(parts, " ")
		}
		out = append(out, rendered)
	}
	return Table{Rows: out}, true
}

type wordRow struct {
	y     float64
	words []pdfio.Word
}

func groupRows(words []pdfio.Word) []wordRow {
	grouped := pdfio.Page{Words: words}.Rows()
	rows := make([]wordRow, 0, len(grouped))
	for _, g := range grouped {
		if len(g) == 0 {
			continue
		}
		rows = append(rows, wordRow{y: g[0].Y, words: g})
	}
	return rows
}

// splitBands cuts the row sequence where the vertical pitch jumps, so two
// stacked tables do not merge into one.
func splitBands(rows []wordRow) [][]wordRow {
	if len(rows) < 3 {
		return [][]wordRow{rows}
	}

	pitches := make([]float64, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		pitches = append(pitches, rows[i-1].y-rows[i].y)
	}
	sorted := append([]float64(nil), pitches...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	if median <= 0 {
		return [][]wordRow{rows}
	}

	var bands [][]wordRow
	start := 0
	for i, pitch := range pitches {
		if pitch > median*tableBreakFactor {
			bands = append(bands, rows[start:i+1])
			start = i + 1
		}
	}
	bands = append(bands, rows[start:])
	return bands
}

// ruledBoundaries infers column separators from aligned word left edges,
// the way drawn cell borders align cell starts.
func ruledBoundaries(rows []wordRow) []float64 {
	edgeVotes := make(map[int]int)
	for _, row := range rows {
		seen := make(map[int]struct{})
		for _, w := range row.words {
			b := int(w.X / edgeBucketSize)
			if _, dup := seen[b]; dup {
				continue
			}
			seen[b] = struct{}{}
			edgeVotes[b]++
		}
	}

	minVotes := len(rows) * 3 / 10
	if minVotes < 2 {
		minVotes = 2
	}

	var centers []float64
	for b, votes := range edgeVotes {
		if votes >= minVotes {
			centers = append(centers, float64(b)*edgeBucketSize+edgeBucketSize/2)
		}
	}
	sort.Float64s(centers)
	if len(centers) < minTableCols {
		return nil
	}

	// Boundaries sit midway between consecutive aligned edges.
	boundaries := make([]float64, 0, len(centers)-1)
	for i := 1; i < len(centers); i++ {
		boundaries = append(boundaries, (centers[i-1]+centers[i])/2)
	}
	return boundaries
}

// whitespaceBoundaries builds a histogram of inter-word gaps across rows and
// keeps gap positions that recur in enough rows.
func whitespaceBoundaries(rows []wordRow) []float64 {
	gapVotes := make(map[int]int)
	for _, row := range rows {
		for i := 1; i < len(row.words); i++ {
			left := row.words[i-1].X + row.words[i-1].W
			right := row.words[i].X
			if right-left < columnGapThreshold {
				continue
			}
			b := int(((left + right) / 2) / gapBucketSize)
			gapVotes[b]++
		}
	}

	minVotes := len(rows) / 4
	if minVotes < 2 {
		minVotes = 2
	}

	var boundaries []float64
	for b, votes := range gapVotes {
		if votes >= minVotes {
			boundaries = append(boundaries, float64(b)*gapBucketSize+gapBucketSize/2)
		}
	}
	sort.Float64s(boundaries)

	// Merge boundaries closer than two buckets.
	merged := boundaries[:0]
	for _, b := range boundaries {
		if len(merged) == 0 || b-merged[len(merged)-1] > gapBucketSize*2 {
			merged = append(merged, b)
		}
	}
	return merged
}

func columnIndex(boundaries []float64, x float64) int {
	idx := sort.SearchFloat64s(boundaries, x)
	return idx
}
