package anim

import (
	"math/rand"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// MatrixRain rains green drops with fading trails down every column.
type MatrixRain struct {
	// Frames is the number of frames to run.
	Frames int

	// Rand is the random source. Nil seeds a new one.
	Rand *rand.Rand

	rng   *rand.Rand
	drops []int
}

const rainTrail = 4

func (a *MatrixRain) Name() string { return "matrix-rain" }

func (a *MatrixRain) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	if a.drops == nil {
		a.rng = randSource(a.Rand)
		a.drops = make([]int, layout.Width)
		for x := range a.drops {
			a.drops[x] = -a.rng.Intn(layout.Height + 1)
		}
	}

	m.Clear()

	for x := 0; x < layout.Width; x++ {
		for trail := 0; trail < rainTrail; trail++ {
			y := a.drops[x] - trail
			if y < 0 || y >= layout.Height {
				continue
			}
			// Brightest at the head, fading along the trail.
			intensity := 255 - trail*60
			if intensity < 0 {
				intensity = 0
			}
			m.SetPixel(x, y, pixel.RGB(0, uint8(intensity), 0))
		}

		a.drops[x]++
		if a.drops[x] > layout.Height+rainTrail {
			a.drops[x] = -a.rng.Intn(rainTrail + 1)
		}
	}
	return frame+1 < a.Frames
}
