package anim

import (
	"image"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// LangtonAnt runs Langton's Ant on a wrap-around grid. The ant turns right
// on an off cell and left on an on cell, flips the cell and moves forward.
// Two rules, yet the trail is chaotic before settling into a highway; on a
// wrapped 8x8 grid the highway loops back into the mess it left behind.
type LangtonAnt struct {
	// Steps is the number of ant steps to run.
	Steps int

	grid [][]bool
	pos  image.Point
	dir  int
}

var antCellColor = pixel.RGB(200, 200, 200)

func (a *LangtonAnt) Name() string { return "langtons-ant" }

func (a *LangtonAnt) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	if a.grid == nil {
		a.grid = make([][]bool, layout.Height)
		for y := range a.grid {
			a.grid[y] = make([]bool, layout.Width)
		}
		a.pos = image.Pt(layout.Width/2, layout.Height/2)
	}

	if a.grid[a.pos.Y][a.pos.X] {
		a.dir = (a.dir + 3) % len(snakeSteps) // turn left
	} else {
		a.dir = (a.dir + 1) % len(snakeSteps) // turn right
	}
	a.grid[a.pos.Y][a.pos.X] = !a.grid[a.pos.Y][a.pos.X]

	next := a.pos.Add(snakeSteps[a.dir])
	a.pos = image.Pt(
		(next.X+layout.Width)%layout.Width,
		(next.Y+layout.Height)%layout.Height,
	)

	m.Clear()
	for y := range a.grid {
		for x, on := range a.grid[y] {
			if on {
				m.SetPixel(x, y, antCellColor)
			}
		}
	}
	m.SetPixel(a.pos.X, a.pos.Y, pixel.Red)
	return frame+1 < a.Steps
}
