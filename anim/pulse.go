package anim

import (
	"image"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/draw"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// Pulse emits circles expanding from the center of the matrix, fading as
// they grow.
type Pulse struct {
	Color pixel.Color

	// Cycles is the number of pulses to emit.
	Cycles int
}

func (a *Pulse) Name() string { return "pulse" }

func (a *Pulse) Step(m *neomatrix.Matrix, frame int) bool {
	cycles := a.Cycles
	if cycles <= 0 {
		cycles = 3
	}

	layout := m.Layout()
	center := image.Pt(layout.Width/2, layout.Height/2)

	// Radii past the corner distance leave the matrix entirely.
	maxRadius := layout.Width/2 + layout.Height/2
	radius := frame % (maxRadius + 1)
	cycle := frame / (maxRadius + 1)
	if cycle >= cycles {
		return false
	}

	m.Clear()
	fade := 1 - float64(radius)/float64(maxRadius+1)
	draw.Circle(m, center, radius, a.Color.Scale(fade))
	return true
}
