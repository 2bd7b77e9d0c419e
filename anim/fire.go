package anim

import (
	"math/rand"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// Fire simulates flames rising from the bottom of the matrix. Heat is
// seeded at the bottom row, diffuses upwards and cools randomly.
type Fire struct {
	// Frames is the number of frames to run.
	Frames int

	// Rand is the random source. Nil seeds a new one.
	Rand *rand.Rand

	rng  *rand.Rand
	heat [][]int
}

func (a *Fire) Name() string { return "fire" }

func (a *Fire) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	if a.heat == nil {
		a.rng = randSource(a.Rand)
		a.heat = make([][]int, layout.Height)
		for y := range a.heat {
			a.heat[y] = make([]int, layout.Width)
		}
	}

	// Cool every cell a little.
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			a.heat[y][x] -= a.rng.Intn(21)
			if a.heat[y][x] < 0 {
				a.heat[y][x] = 0
			}
		}
	}

	// Heat rises: every cell becomes the average of the three below it.
	for y := layout.Height - 1; y > 0; y-- {
		for x := 0; x < layout.Width; x++ {
			left, right := x-1, x+1
			if left < 0 {
				left = 0
			}
			if right > layout.Width-1 {
				right = layout.Width - 1
			}
			a.heat[y][x] = (a.heat[y-1][left] + a.heat[y-1][x] + a.heat[y-1][right]) / 3
		}
	}

	// Random sparks at the bottom.
	for x := 0; x < layout.Width; x++ {
		if a.rng.Float64() < 0.5 {
			a.heat[0][x] += 160 + a.rng.Intn(96)
			if a.heat[0][x] > 255 {
				a.heat[0][x] = 255
			}
		}
	}

	// Row 0 of the heat field is the base of the fire, so flip Y when
	// drawing to make the flames rise.
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			m.SetPixel(x, layout.Height-1-y, firePalette(a.heat[y][x]))
		}
	}
	return frame+1 < a.Frames
}

// firePalette maps heat to the black, red, yellow, white fire gradient.
func firePalette(h int) pixel.Color {
	switch {
	case h < 85:
		return pixel.RGB(uint8(h*3), 0, 0)
	case h < 170:
		return pixel.RGB(255, uint8((h-85)*3), 0)
	default:
		return pixel.RGB(255, 255, uint8((h-170)*3))
	}
}
