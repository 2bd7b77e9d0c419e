package anim

import (
	"math/rand"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// WaterRipples simulates water with drops falling at random positions.
// Waves propagate using the classic two-buffer height field method.
type WaterRipples struct {
	// Frames is the number of frames to run.
	Frames int

	// Rand is the random source. Nil seeds a new one.
	Rand *rand.Rand

	rng      *rand.Rand
	current  [][]float64
	previous [][]float64
}

const rippleDamping = 0.92

func (a *WaterRipples) Name() string { return "water-ripples" }

func (a *WaterRipples) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	if a.current == nil {
		a.rng = randSource(a.Rand)
		a.current = makeField(layout)
		a.previous = makeField(layout)
	}

	// Drop in roughly every tenth frame.
	if a.rng.Float64() < 0.1 {
		x := a.rng.Intn(layout.Width)
		y := a.rng.Intn(layout.Height)
		a.previous[y][x] = 4
	}

	// Wave equation: every cell moves opposite its last position, driven
	// by the average of its neighbors.
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			sum := 0.0
			count := 0
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nx, ny := x+d[0], y+d[1]
				if layout.Contains(nx, ny) {
					sum += a.previous[ny][nx]
					count++
				}
			}
			a.current[y][x] = (sum/float64(count))*2 - a.current[y][x]
			a.current[y][x] *= rippleDamping
		}
	}
	a.current, a.previous = a.previous, a.current

	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			m.SetPixel(x, y, waterColor(a.previous[y][x]))
		}
	}
	return frame+1 < a.Frames
}

func makeField(layout neomatrix.Layout) [][]float64 {
	field := make([][]float64, layout.Height)
	for y := range field {
		field[y] = make([]float64, layout.Width)
	}
	return field
}

// waterColor maps a wave height to a deep-blue to white gradient.
func waterColor(h float64) pixel.Color {
	if h < 0 {
		h = -h
	}
	if h > 1 {
		h = 1
	}
	deep := pixel.RGB(0, 20, 80)
	crest := pixel.RGB(150, 220, 255)
	return pixel.Lerp(deep, crest, h)
}
