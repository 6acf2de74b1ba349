package pdfio

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// rowTolerance is the Y distance within which glyphs belong to one row.
	rowTolerance = 3.0
	// wordSpaceMultiplier of the font size is the gap that separates words.
	wordSpaceMultiplier = 0.3
	// fallbackWordGap is used when a glyph carries no font size.
	fallbackWordGap = 3.0
)

// Word is a positioned run of text on a page. X/Y is the left edge and
// baseline of the word, W its width, in page points.
type Word struct {
	Text     string
	X        float64
	Y        float64
	W        float64
	FontSize float64
}

// Center returns the midpoint of the word's horizontal extent at its baseline.
func (w Word) Center() (x, y float64) {
	return w.X + w.W/2, w.Y
}

// Page is the extracted content of one PDF page: words in reading order
// (top-to-bottom, left-to-right). It is a plain value so the extraction
// engine can be exercised without any PDF backend.
type Page struct {
	Number int
	Words  []Word
}

// Text renders the page as plain text, one detected row per line.
func (p Page) Text() string {
	rows := p.Rows()
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, w := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(w.Text)
		}
	}
	return sb.String()
}

// Rows groups the page's words into visual rows by Y proximity, ordered
// top-to-bottom with words left-to-right inside each row.
func (p Page) Rows() [][]Word {
	return groupWordsIntoRows(p.Words)
}

// WordsIn returns the words whose center point lies inside area, in reading
// order. A zero area selects every word.
func (p Page) WordsIn(area BBox) []Word {
	if area.IsZero() {
		return p.Words
	}
	var out []Word
	for _, w := range p.Words {
		cx, cy := w.Center()
		if area.Contains(cx, cy) {
			out = append(out, w)
		}
	}
	return out
}

// wordsFromTexts merges per-glyph text elements into words. Glyphs are
// bucketed into rows by Y tolerance, sorted by X, and joined while the gap
// to the previous glyph stays below a fraction of the font size.
func wordsFromTexts(texts []pdf.Text) []Word {
	filtered := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if s := strings.TrimSpace(t.S); s == "" {
			continue
		}
		filtered = append(filtered, t)
	}
	if len(filtered) == 0 {
		return nil
	}

	rows := groupTextsIntoRows(filtered)

	var words []Word
	for _, row := range rows {
		sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })

		var cur *Word
		for _, t := range row {
			if cur == nil {
				w := Word{Text: t.S, X: t.X, Y: t.Y, W: t.W, FontSize: t.FontSize}
				cur = &w
				continue
			}
			gap := t.X - (cur.X + cur.W)
			threshold := wordSpaceMultiplier * cur.FontSize
			if threshold == 0 {
				threshold = fallbackWordGap
			}
			if gap <= threshold {
				cur.W = t.X + t.W - cur.X
				cur.Text += t.S
			} else {
				words = append(words, *cur)
				w := Word{Text: t.S, X: t.X, Y: t.Y, W: t.W, FontSize: t.FontSize}
				cur = &w
			}
		}
		if cur != nil {
			words = append(words, *cur)
		}
	}
	return words
}

func groupTextsIntoRows(texts []pdf.Text) [][]pdf.Text {
	type bucket struct {
		yMin, yMax float64
		texts      []pdf.Text
	}
	var buckets []bucket
	for _, t := range texts {
		placed := false
		for i := range buckets {
			if t.Y >= buckets[i].yMin-rowTolerance && t.Y <= buckets[i].yMax+rowTolerance {
				buckets[i].texts = append(buckets[i].texts, t)
				if t.Y < buckets[i].yMin {
					buckets[i].yMin = t.Y
				}
				if t.Y > buckets[i].yMax {
					buckets[i].yMax = t.Y
				}
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: t.Y, yMax: t.Y, texts: []pdf.Text{t}})
		}
	}

	// Top of page first: higher Y is higher on the page.
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].yMax > buckets[j].yMax })

	rows := make([][]pdf.Text, len(buckets))
	for i, b := range buckets {
		rows[i] = b.texts
	}
	return rows
}

func groupWordsIntoRows(words []Word) [][]Word {
	type bucket struct {
		yMin, yMax float64
		words      []Word
	}
	var buckets []bucket
	for _, w := range words {
		placed := false
		for i := range buckets {
			if w.Y >= buckets[i].yMin-rowTolerance && w.Y <= buckets[i].yMax+rowTolerance {
				buckets[i].words = append(buckets[i].words, w)
				if w.Y < buckets[i].yMin {
					buckets[i].yMin = w.Y
				}
				if w.Y > buckets[i].yMax {
					buckets[i].yMax = w.Y
				}
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: w.Y, yMax: w.Y, words: []Word{w}})
		}
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].yMax > buckets[j].yMax })

	rows := make([][]Word, len(buckets))
	for i, b := range buckets {
		row := b.words
		sort.Slice(row, func(x, y int) bool { return row[x].X < row[y].X })
		rows[i] = row
	}
	return rows
}
