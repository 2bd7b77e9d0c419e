// Package neomatrix drives WS2812B addressable LED matrices.
//
// The package keeps an in-memory frame buffer addressed by (x, y)
// coordinates, maps them onto the single folded LED strip (serpentine or
// linear wiring) and hands the packed buffer to an [Output] for physical
// transmission. Nothing reaches the hardware until [Matrix.Show] is called,
// so batched draws render as one frame.
package neomatrix

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("NEOMATRIX_DEBUG") != ""
}

// Errors
var (
	// ErrBounds is returned for coordinates or strip indices outside the
	// matrix.
	ErrBounds = errors.New("neomatrix: out of matrix bounds")

	// ErrStreamLength is returned by outputs for pixel streams that are not
	// a whole number of 3-byte pixels.
	ErrStreamLength = errors.New("neomatrix: invalid pixel stream length")
)

// Output transmits a packed pixel stream to the LED hardware. The stream is
// in wire channel order, 3 bytes per LED, head of the strip first.
//
// Write blocks until the stream has been handed to the hardware. A failed
// Write leaves the panel showing the previous frame; the caller may simply
// call Show again.
type Output interface {
	String() string

	// Write transmits the packed pixel stream.
	Write(pix []byte) (int, error)

	// Close the output.
	Close() error
}

// Discard is an Output that silently accepts every frame. It is useful for
// tests and dry runs without hardware attached.
var Discard Output = discard{}

type discard struct{}

func (discard) String() string                { return "discard" }
func (discard) Write(pix []byte) (int, error) { return len(pix), nil }
func (discard) Close() error                  { return nil }
