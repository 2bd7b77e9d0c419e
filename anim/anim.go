// Package anim implements animation routines for LED matrices.
//
// Every animation is a sequence of frame-buffer mutations; the [Player]
// interleaves them with a fixed delay and pushes each frame to the panel.
// Animations that use randomness take a *rand.Rand so runs can be made
// deterministic.
package anim

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// Animation renders frames into a matrix frame buffer.
type Animation interface {
	// Name identifies the animation.
	Name() string

	// Step draws frame number frame into the matrix and reports whether
	// more frames follow. The player calls Show after every step.
	Step(m *neomatrix.Matrix, frame int) bool
}

// Player runs animations against a matrix at a fixed frame interval.
type Player struct {
	// Matrix is the frame buffer to draw into.
	Matrix *neomatrix.Matrix

	// Interval is the delay between frames. Zero means 60ms.
	Interval time.Duration

	// Logger logs frame loop events. Nil means slog.Default().
	Logger *slog.Logger
}

const defaultInterval = 60 * time.Millisecond

// Run plays the animation until it reports completion or the context is
// canceled. The panel is left dark afterwards.
func (p *Player) Run(ctx context.Context, a Animation) error {
	interval := p.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("starting animation", "name", a.Name(), "interval", interval)

	defer func() {
		p.Matrix.Clear()
		_ = p.Matrix.Show()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		more := a.Step(p.Matrix, frame)
		if err := p.Matrix.Show(); err != nil {
			return errors.Wrapf(err, "animation %q failed to show frame %d", a.Name(), frame)
		}
		if !more {
			logger.Debug("animation finished", "name", a.Name(), "frames", frame+1)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// randSource returns r, or a freshly seeded source when r is nil.
func randSource(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewSource(rand.Int63()))
}

// All returns every animation in showcase order, seeded with the given
// random source.
func All(rng *rand.Rand) []Animation {
	return []Animation{
		&RainbowWave{Frames: 250},
		&ColorWipe{Color: pixel.Red},
		&Sparkle{Color: pixel.White, Count: 10, Frames: 60, Rand: rng},
		&Breathing{Color: pixel.Blue, Cycles: 2},
		&MatrixRain{Frames: 50, Rand: rng},
		&ExpandingSquare{Color: pixel.Cyan, Cycles: 3},
		&Snake{Length: 8, Frames: 50},
		&Fire{Frames: 100, Rand: rng},
		&Checkerboard{A: pixel.Red, B: pixel.Blue, Flashes: 6},
		&Spiral{Color: pixel.Green, Inward: true},
		&Pulse{Color: pixel.Magenta, Cycles: 3},
		&ShapeShow{},
		&Plasma{Frames: 150},
		&GameOfLife{Generations: 80, Rand: rng},
		&LangtonAnt{Steps: 300},
		&Sand{Frames: 200, Rand: rng},
		&Hourglass{Cycles: 2, Rand: rng},
		&CylonSweep{Color: pixel.Red, Sweeps: 4},
		&WaterRipples{Frames: 120, Rand: rng},
	}
}
