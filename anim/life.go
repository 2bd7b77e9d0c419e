package anim

import (
	"math/rand"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// GameOfLife runs Conway's Game of Life on a wrap-around grid. Cells are
// colored by age, and the grid reseeds itself when the population dies out
// or settles into a still life.
type GameOfLife struct {
	// Generations is the number of generations to run.
	Generations int

	// Rand is the random source for seeding. Nil seeds a new one.
	Rand *rand.Rand

	rng    *rand.Rand
	cells  [][]bool
	ages   [][]int
	frozen int
}

func (a *GameOfLife) Name() string { return "game-of-life" }

func (a *GameOfLife) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	if a.cells == nil {
		a.rng = randSource(a.Rand)
		a.seed(layout)
	}

	a.draw(m)

	changed := a.advance(layout)
	if !changed {
		a.frozen++
	} else {
		a.frozen = 0
	}
	// A still life (or an empty board) is boring after a few frames.
	if a.frozen >= 4 {
		a.seed(layout)
	}
	return frame+1 < a.Generations
}

func (a *GameOfLife) seed(layout neomatrix.Layout) {
	a.cells = make([][]bool, layout.Height)
	a.ages = make([][]int, layout.Height)
	for y := range a.cells {
		a.cells[y] = make([]bool, layout.Width)
		a.ages[y] = make([]int, layout.Width)
		for x := range a.cells[y] {
			a.cells[y][x] = a.rng.Float64() < 0.3
		}
	}
	a.frozen = 0
}

func (a *GameOfLife) draw(m *neomatrix.Matrix) {
	m.Clear()
	for y := range a.cells {
		for x, alive := range a.cells[y] {
			if !alive {
				continue
			}
			// Young cells are green, older cells drift through the wheel.
			m.SetPixel(x, y, pixel.Wheel(85+a.ages[y][x]*10))
		}
	}
}

func (a *GameOfLife) advance(layout neomatrix.Layout) bool {
	next := make([][]bool, layout.Height)
	changed := false
	for y := range a.cells {
		next[y] = make([]bool, layout.Width)
		for x := range a.cells[y] {
			n := a.neighbors(layout, x, y)
			alive := a.cells[y][x]
			switch {
			case alive && (n == 2 || n == 3):
				next[y][x] = true
				a.ages[y][x]++
			case !alive && n == 3:
				next[y][x] = true
				a.ages[y][x] = 0
			default:
				next[y][x] = false
				a.ages[y][x] = 0
			}
			if next[y][x] != alive {
				changed = true
			}
		}
	}
	a.cells = next
	return changed
}

func (a *GameOfLife) neighbors(layout neomatrix.Layout, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + layout.Width) % layout.Width
			ny := (y + dy + layout.Height) % layout.Height
			if a.cells[ny][nx] {
				count++
			}
		}
	}
	return count
}
