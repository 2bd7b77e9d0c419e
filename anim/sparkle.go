package anim

import (
	"math/rand"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// Sparkle twinkles random pixels on and off.
type Sparkle struct {
	Color pixel.Color

	// Count is the number of simultaneous sparkles per frame.
	Count int

	// Frames is the number of frames to run.
	Frames int

	// Rand is the random source. Nil seeds a new one.
	Rand *rand.Rand

	rng *rand.Rand
}

func (a *Sparkle) Name() string { return "sparkle" }

func (a *Sparkle) Step(m *neomatrix.Matrix, frame int) bool {
	if a.rng == nil {
		a.rng = randSource(a.Rand)
	}

	m.Clear()

	count := a.Count
	if count <= 0 {
		count = 10
	}
	numPixels := m.Layout().NumPixels()
	for i := 0; i < count; i++ {
		index := a.rng.Intn(numPixels)
		// Vary the sparkle intensity below the configured brightness.
		m.SetIndex(index, a.Color.Scale(0.2+0.8*a.rng.Float64()))
	}
	return frame+1 < a.Frames
}
