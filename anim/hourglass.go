package anim

import (
	"math/rand"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// Hourglass pours sand through the neck of an hourglass drawn across the
// matrix. The glass is two triangles meeting in a two cell neck at the
// middle; grains seeded in the top chamber trickle through and pile up in
// the bottom one, then the glass flips and the pour starts over.
type Hourglass struct {
	// Cycles is the number of complete pours.
	Cycles int

	// Rand is the random source. Nil seeds a new one.
	Rand *rand.Rand

	rng    *rand.Rand
	grid   [][]pixel.Color
	cycles int
}

const hourglassGrains = 12

var (
	hourglassSand  = pixel.Color{255, 200, 100}
	hourglassGlass = pixel.Color{20, 20, 30}
)

func (a *Hourglass) Name() string { return "hourglass" }

// hourglassAllows reports whether (x, y) is inside the glass. The top
// triangle narrows towards the middle, the bottom one widens again.
func hourglassAllows(layout neomatrix.Layout, x, y int) bool {
	if y < layout.Height/2 {
		return x >= y && x < layout.Width-y
	}
	return x >= layout.Height-1-y && x <= y
}

func (a *Hourglass) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	if a.rng == nil {
		a.rng = randSource(a.Rand)
	}
	if a.grid == nil {
		a.seed(layout)
	}

	cycles := a.Cycles
	if cycles <= 0 {
		cycles = 1
	}

	if !a.pour(layout) {
		a.cycles++
		if a.cycles >= cycles {
			return false
		}
		a.seed(layout)
	}

	m.Clear()
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			switch {
			case a.grid[y][x] != pixel.Black:
				m.SetPixel(x, y, a.grid[y][x])
			case !hourglassAllows(layout, x, y):
				m.SetPixel(x, y, hourglassGlass)
			}
		}
	}
	return true
}

// seed refills the top chamber.
func (a *Hourglass) seed(layout neomatrix.Layout) {
	a.grid = make([][]pixel.Color, layout.Height)
	for y := range a.grid {
		a.grid[y] = make([]pixel.Color, layout.Width)
	}

	grains := 0
	for y := 0; y < layout.Height/2-1 && grains < hourglassGrains; y++ {
		for x := 0; x < layout.Width && grains < hourglassGrains; x++ {
			if hourglassAllows(layout, x, y) && x > 1 && x < layout.Width-2 {
				// Slight per-grain shade variation, like real sand.
				v := uint8(a.rng.Intn(40))
				a.grid[y][x] = pixel.Color{
					hourglassSand[0] - v,
					hourglassSand[1] - v,
					hourglassSand[2] - v,
				}
				grains++
			}
		}
	}
}

// pour advances every grain one cell towards the bottom of the glass and
// reports whether anything moved. A still glass means the pour is done.
func (a *Hourglass) pour(layout neomatrix.Layout) bool {
	moved := false
	for y := layout.Height - 2; y >= 0; y-- {
		for x := 0; x < layout.Width; x++ {
			c := a.grid[y][x]
			if c == pixel.Black {
				continue
			}

			sides := []int{0, -1, 1}
			if a.rng.Intn(2) == 0 {
				sides[1], sides[2] = sides[2], sides[1]
			}
			for _, dx := range sides {
				nx := x + dx
				if nx < 0 || nx >= layout.Width {
					continue
				}
				if !hourglassAllows(layout, nx, y+1) || a.grid[y+1][nx] != pixel.Black {
					continue
				}
				a.grid[y+1][nx] = c
				a.grid[y][x] = pixel.Black
				moved = true
				break
			}
		}
	}
	return moved
}
