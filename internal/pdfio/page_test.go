package pdfio

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBBoxContains(t *testing.T) {
	b := BBox{X: 10, Y: 20, Width: 100, Height: 50}
	assert.True(t, b.Contains(10, 20))
	assert.True(t, b.Contains(110, 70))
	assert.False(t, b.Contains(9, 30))
	assert.False(t, b.Contains(50, 71))

	// Zero box means "no area configured" and matches everything.
	assert.True(t, BBox{}.Contains(-500, 9999))
}

func TestBBoxIntersects(t *testing.T) {
	a := BBox{X: 0, Y: 0, Width: 10, Height: 10}
	assert.True(t, a.Intersects(BBox{X: 5, Y: 5, Width: 10, Height: 10}))
	assert.False(t, a.Intersects(BBox{X: 20, Y: 0, Width: 5, Height: 5}))
}

func TestRowsTopToBottomLeftToRight(t *testing.T) {
	p := Page{Words: []Word{
		{Text: "right", X: 200, Y: 700},
		{Text: "lower", X: 50, Y: 650},
		{Text: "left", X: 50, Y: 701}, // within row tolerance of "right"
	}}

	rows := p.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "left", rows[0][0].Text)
	assert.Equal(t, "right", rows[0][1].Text)
	assert.Equal(t, "lower", rows[1][0].Text)

	assert.Equal(t, "left right\nlower", p.Text())
}

func TestWordsIn(t *testing.T) {
	p := Page{Words: []Word{
		{Text: "in", X: 100, Y: 500, W: 20},
		{Text: "out", X: 400, Y: 500, W: 20},
	}}
	got := p.WordsIn(BBox{X: 90, Y: 490, Width: 50, Height: 20})
	require.Len(t, got, 1)
	assert.Equal(t, "in", got[0].Text)
}

func TestWordsFromTextsMergesGlyphs(t *testing.T) {
	glyph := func(s string, x float64) pdf.Text {
		return pdf.Text{S: s, X: x, Y: 700, W: 5, FontSize: 10}
	}
	texts := []pdf.Text{
		glyph("I", 50), glyph("n", 55), glyph("v", 60),
		// Gap of 9pt exceeds 0.3 x font size, so a new word starts.
		glyph("N", 74), glyph("o", 79),
		{S: " ", X: 90, Y: 700, W: 3, FontSize: 10}, // whitespace glyphs are dropped
	}

	words := wordsFromTexts(texts)
	require.Len(t, words, 2)
	assert.Equal(t, "Inv", words[0].Text)
	assert.Equal(t, 50.0, words[0].X)
	assert.Equal(t, 15.0, words[0].W)
	assert.Equal(t, "No", words[1].Text)
}

func TestWordsFromTextsFallbackGap(t *testing.T) {
	texts := []pdf.Text{
		{S: "a", X: 50, Y: 700, W: 5},
		{S: "b", X: 57, Y: 700, W: 5}, // gap 2 < fallback 3, no font size
		{S: "c", X: 70, Y: 700, W: 5},
	}
	words := wordsFromTexts(texts)
	require.Len(t, words, 2)
	assert.Equal(t, "ab", words[0].Text)
	assert.Equal(t, "c", words[1].Text)
}
