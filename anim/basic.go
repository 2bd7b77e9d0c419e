package anim

import (
	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// ColorWipe fills the matrix one pixel at a time in strip order, so the
// wipe follows the physical wiring.
type ColorWipe struct {
	Color pixel.Color
}

func (a *ColorWipe) Name() string { return "color-wipe" }

func (a *ColorWipe) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	if frame >= layout.NumPixels() {
		return false
	}
	m.SetIndex(frame, a.Color)
	return frame+1 < layout.NumPixels()
}

// Breathing fades the whole matrix in and out, like breathing.
type Breathing struct {
	Color pixel.Color

	// Cycles is the number of in-and-out cycles.
	Cycles int
}

// One cycle is a 50 step fade in followed by a 50 step fade out.
const breathingSteps = 100

func (a *Breathing) Name() string { return "breathing" }

func (a *Breathing) Step(m *neomatrix.Matrix, frame int) bool {
	cycles := a.Cycles
	if cycles <= 0 {
		cycles = 2
	}

	step := frame % breathingSteps
	var t float64
	if step < breathingSteps/2 {
		t = float64(step) / float64(breathingSteps/2)
	} else {
		t = float64(breathingSteps-step) / float64(breathingSteps/2)
	}
	m.Fill(a.Color.Scale(t))
	return frame+1 < cycles*breathingSteps
}

// Checkerboard flashes an alternating checkerboard of two colors, shifting
// the pattern by one cell every flash.
type Checkerboard struct {
	A, B pixel.Color

	// Flashes is the number of pattern flips.
	Flashes int
}

func (a *Checkerboard) Name() string { return "checkerboard" }

func (a *Checkerboard) Step(m *neomatrix.Matrix, frame int) bool {
	flashes := a.Flashes
	if flashes <= 0 {
		flashes = 6
	}

	layout := m.Layout()
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			if (x+y+frame)%2 == 0 {
				m.SetPixel(x, y, a.A)
			} else {
				m.SetPixel(x, y, a.B)
			}
		}
	}
	return frame+1 < flashes
}
