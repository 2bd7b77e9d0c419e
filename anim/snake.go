package anim

import (
	"image"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// Snake slithers a rainbow-colored snake across the matrix, turning
// clockwise whenever it hits a wall.
type Snake struct {
	// Length is the body length in pixels.
	Length int

	// Frames is the number of frames to run.
	Frames int

	body      []image.Point
	direction int
}

var snakeSteps = []image.Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

func (a *Snake) Name() string { return "snake" }

func (a *Snake) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	if a.body == nil {
		a.body = []image.Point{{0, 0}}
	}
	length := a.Length
	if length <= 0 {
		length = 8
	}

	head := a.body[len(a.body)-1]
	next := head.Add(snakeSteps[a.direction])
	if !layout.Contains(next.X, next.Y) {
		a.direction = (a.direction + 1) % len(snakeSteps)
		next = head.Add(snakeSteps[a.direction])
	}

	a.body = append(a.body, next)
	if len(a.body) > length {
		a.body = a.body[1:]
	}

	m.Clear()
	for i, p := range a.body {
		// Hue gradient along the body, shifting as the snake moves.
		m.SetPixel(p.X, p.Y, pixel.Wheel(frame*5+i*30))
	}
	return frame+1 < a.Frames
}
