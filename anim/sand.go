package anim

import (
	"math/rand"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// Sand rains colored grains from the top of the matrix. Grains fall
// straight down, slide off each other diagonally and pile up; once the
// pile is complete the grid resets and a new pour begins.
type Sand struct {
	// Frames is the number of frames to run.
	Frames int

	// Rand is the random source. Nil seeds a new one.
	Rand *rand.Rand

	rng    *rand.Rand
	grid   [][]pixel.Color
	grains int
	layer  int
}

const (
	sandSpawnChance = 0.3
	sandMaxGrains   = 50
	// A new color layer starts every 8 grains.
	sandLayerSize = 8
)

var sandColors = []pixel.Color{
	{194, 178, 128},
	{210, 180, 140},
	{139, 119, 101},
	{255, 200, 100},
	{180, 140, 100},
}

func (a *Sand) Name() string { return "sand" }

func (a *Sand) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	if a.rng == nil {
		a.rng = randSource(a.Rand)
	}
	if a.grid == nil {
		a.reset(layout)
	}

	a.spawn(layout)
	moved := a.settle(layout)
	if !moved && a.grains >= sandMaxGrains {
		a.reset(layout)
	}

	m.Clear()
	for y := range a.grid {
		for x, c := range a.grid[y] {
			if c != pixel.Black {
				m.SetPixel(x, y, c)
			}
		}
	}
	return frame+1 < a.Frames
}

func (a *Sand) reset(layout neomatrix.Layout) {
	a.grid = make([][]pixel.Color, layout.Height)
	for y := range a.grid {
		a.grid[y] = make([]pixel.Color, layout.Width)
	}
	a.grains = 0
	a.layer = 0
}

// spawn drops a new grain on a free top-row cell.
func (a *Sand) spawn(layout neomatrix.Layout) {
	if a.grains >= sandMaxGrains || a.rng.Float64() >= sandSpawnChance {
		return
	}

	free := make([]int, 0, layout.Width)
	for x := 0; x < layout.Width; x++ {
		if a.grid[0][x] == pixel.Black {
			free = append(free, x)
		}
	}
	if len(free) == 0 {
		return
	}

	x := free[a.rng.Intn(len(free))]
	a.grid[0][x] = sandColors[a.layer%len(sandColors)]
	a.grains++
	if a.grains%sandLayerSize == 0 {
		a.layer++
	}
}

// settle advances every grain by one cell, bottom rows first so a grain
// falls into the gap its neighbor just left.
func (a *Sand) settle(layout neomatrix.Layout) bool {
	moved := false
	for y := layout.Height - 2; y >= 0; y-- {
		for x := 0; x < layout.Width; x++ {
			c := a.grid[y][x]
			if c == pixel.Black {
				continue
			}

			if a.grid[y+1][x] == pixel.Black {
				a.grid[y+1][x] = c
				a.grid[y][x] = pixel.Black
				moved = true
				continue
			}

			sides := []int{-1, 1}
			if a.rng.Intn(2) == 0 {
				sides[0], sides[1] = sides[1], sides[0]
			}
			for _, dx := range sides {
				nx := x + dx
				if nx >= 0 && nx < layout.Width && a.grid[y+1][nx] == pixel.Black {
					a.grid[y+1][nx] = c
					a.grid[y][x] = pixel.Black
					moved = true
					break
				}
			}
		}
	}
	return moved
}
