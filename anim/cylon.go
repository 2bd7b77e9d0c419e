package anim

import (
	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// CylonSweep bounces a glowing eye with faded edges back and forth along
// the middle rows of the matrix.
type CylonSweep struct {
	Color pixel.Color

	// Sweeps is the number of full left-right-left passes.
	Sweeps int
}

func (a *CylonSweep) Name() string { return "cylon-sweep" }

func (a *CylonSweep) Step(m *neomatrix.Matrix, frame int) bool {
	sweeps := a.Sweeps
	if sweeps <= 0 {
		sweeps = 4
	}

	layout := m.Layout()

	// One sweep is there and back again, minus the shared end points.
	period := 2 * (layout.Width - 1)
	pos := frame % period
	if pos >= layout.Width {
		pos = period - pos
	}

	m.Clear()
	row := layout.Height / 2
	for _, r := range []int{row - 1, row} {
		m.SetPixel(pos, r, a.Color)
		m.SetPixel(pos-1, r, a.Color.Scale(0.4))
		m.SetPixel(pos+1, r, a.Color.Scale(0.4))
		m.SetPixel(pos-2, r, a.Color.Scale(0.1))
		m.SetPixel(pos+2, r, a.Color.Scale(0.1))
	}
	return frame+1 < sweeps*period
}
