package anim

import (
	"image"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// Spiral lights pixels one by one along a spiral path from the top-left
// corner inward, or from the center outward.
type Spiral struct {
	Color pixel.Color

	// Inward runs the spiral from the edge towards the center. False
	// reverses the path.
	Inward bool

	path []image.Point
}

func (a *Spiral) Name() string { return "spiral" }

func (a *Spiral) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	if a.path == nil {
		a.path = spiralPath(layout)
		if !a.Inward {
			for i, j := 0, len(a.path)-1; i < j; i, j = i+1, j-1 {
				a.path[i], a.path[j] = a.path[j], a.path[i]
			}
		}
		m.Clear()
	}
	if frame >= len(a.path) {
		return false
	}
	p := a.path[frame]
	m.SetPixel(p.X, p.Y, a.Color)
	return frame+1 < len(a.path)
}

// spiralPath walks the grid clockwise from (0,0), turning right whenever
// the next cell is off-grid or already visited.
func spiralPath(layout neomatrix.Layout) []image.Point {
	var (
		path    = make([]image.Point, 0, layout.NumPixels())
		visited = make(map[image.Point]bool, layout.NumPixels())
		pos     = image.Point{}
		dir     = image.Point{X: 1}
	)
	for i := 0; i < layout.NumPixels(); i++ {
		path = append(path, pos)
		visited[pos] = true

		next := pos.Add(dir)
		if !layout.Contains(next.X, next.Y) || visited[next] {
			dir = image.Point{X: -dir.Y, Y: dir.X} // turn right
			next = pos.Add(dir)
		}
		pos = next
	}
	return path
}

// ExpandingSquare grows a square outline from the center of the matrix
// outward, over and over.
type ExpandingSquare struct {
	Color pixel.Color

	// Cycles is the number of expansions.
	Cycles int
}

func (a *ExpandingSquare) Name() string { return "expanding-square" }

func (a *ExpandingSquare) Step(m *neomatrix.Matrix, frame int) bool {
	cycles := a.Cycles
	if cycles <= 0 {
		cycles = 3
	}

	layout := m.Layout()
	sizes := layout.Width/2 + 1
	size := frame % sizes

	var (
		cx0 = layout.Width/2 - 1
		cy0 = layout.Height/2 - 1
		cx1 = layout.Width / 2
		cy1 = layout.Height / 2
	)

	m.Clear()
	m.DrawRect(cx0-size, cy0-size, cx1+size, cy1+size, a.Color, false)
	return frame+1 < cycles*sizes
}
