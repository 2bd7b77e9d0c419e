package anim

import (
	"math"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// RainbowWave flows rainbow colors diagonally across the matrix.
type RainbowWave struct {
	// Frames is the number of frames to run.
	Frames int
}

func (a *RainbowWave) Name() string { return "rainbow-wave" }

func (a *RainbowWave) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			m.SetPixel(x, y, pixel.Wheel(x*32+y*32+frame*4))
		}
	}
	return frame+1 < a.Frames
}

// Plasma renders a moving interference pattern of sine fields.
type Plasma struct {
	// Frames is the number of frames to run.
	Frames int
}

func (a *Plasma) Name() string { return "plasma" }

func (a *Plasma) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	t := float64(frame) * 0.1
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			fx, fy := float64(x), float64(y)
			v := math.Sin(fx*0.8 + t)
			v += math.Sin((fy*0.8 + t) * 0.5)
			v += math.Sin((fx+fy)*0.5 + t)
			cx := fx + 4*math.Sin(t*0.5)
			cy := fy + 4*math.Cos(t*0.3)
			v += math.Sin(math.Sqrt(cx*cx+cy*cy)*0.5 + t)

			hue := math.Mod((v+4)*45, 360)
			m.SetPixel(x, y, pixel.HSV(hue, 1, 1))
		}
	}
	return frame+1 < a.Frames
}
