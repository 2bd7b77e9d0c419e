package neomatrix

// Layout describes how the physical LED strip folds into a 2D grid.
//
// A serpentine layout runs even rows left to right and odd rows right to
// left, which is how most off-the-shelf 8x8 panels are wired because it
// keeps the strip continuous. A linear (progressive) layout runs every row
// left to right.
type Layout struct {
	// Width and Height of the grid in pixels.
	Width  int
	Height int

	// Serpentine is true when odd rows are wired in reverse.
	Serpentine bool
}

// NumPixels returns the number of pixels on the strip.
func (l Layout) NumPixels() int {
	return l.Width * l.Height
}

// Contains reports whether (x, y) lies on the grid.
func (l Layout) Contains(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Index converts a grid coordinate to the strip index.
//
// The caller must ensure (x, y) lies on the grid; see [Layout.Contains].
// For every valid coordinate the mapping is a bijection onto
// [0, Width*Height).
func (l Layout) Index(x, y int) int {
	if l.Serpentine && y&1 == 1 {
		return y*l.Width + (l.Width - 1 - x)
	}
	return y*l.Width + x
}

// Coordinate converts a strip index back to a grid coordinate. It is the
// inverse of [Layout.Index] over valid indices.
func (l Layout) Coordinate(index int) (x, y int) {
	y = index / l.Width
	x = index % l.Width
	if l.Serpentine && y&1 == 1 {
		x = l.Width - 1 - x
	}
	return x, y
}
