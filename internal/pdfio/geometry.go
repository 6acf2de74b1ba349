package pdfio

// BBox is a rectangle in page coordinates. The origin follows the text
// backend: (0,0) is the lower-left corner of the page and Y grows upward.
type BBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether the point (x, y) lies inside the box.
// A zero-valued box contains every point, matching the "no area configured"
// behavior of the extraction rules.
func (b BBox) Contains(x, y float64) bool {
	if b.IsZero() {
		return true
	}
	return b.X <= x && x <= b.X+b.Width &&
		b.Y <= y && y <= b.Y+b.Height
}

// Intersects reports whether the two boxes overlap.
func (b BBox) Intersects(o BBox) bool {
	return !(b.X+b.Width < o.X ||
		o.X+o.Width < b.X ||
		b.Y+b.Height < o.Y ||
		o.Y+o.Height < b.Y)
}

// IsZero reports whether the box is unset.
func (b BBox) IsZero() bool {
	return b.X == 0 && b.Y == 0 && b.Width == 0 && b.Height == 0
}
