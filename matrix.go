package neomatrix

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/dominicmooney007/neomatrix/pixel"
)

// Default configuration values for the common 8x8 panel.
const (
	DefaultWidth      = 8
	DefaultHeight     = 8
	DefaultBrightness = 0.3
)

// Config is the matrix configuration.
type Config struct {
	// Width of the matrix in pixels.
	Width int

	// Height of the matrix in pixels.
	Height int

	// Serpentine is true when odd rows are wired in reverse. Use
	// [Matrix.TestLayout] to find out what your panel does.
	Serpentine bool

	// Brightness is the uniform scale (0,1] applied to every channel when a
	// pixel is set. Keep it low: 64 LEDs at full white draw close to 4A.
	Brightness float64

	// Order is the channel order the hardware expects on the wire.
	Order pixel.Order

	// DummyFirst inserts a dark lead-in pixel before the frame. Some panels
	// ship with a sacrificial first LED acting as a level shifter.
	DummyFirst bool
}

// DefaultConfig is the configuration for a common serpentine 8x8 GRB panel.
var DefaultConfig = Config{
	Width:      DefaultWidth,
	Height:     DefaultHeight,
	Serpentine: true,
	Brightness: DefaultBrightness,
	Order:      pixel.OrderGRB,
}

// Matrix is a frame buffer for an addressable LED matrix.
//
// The buffer is allocated once and never resized. Brightness scaling happens
// when a pixel is set, so reading a pixel back returns the scaled color that
// will go on the wire. All drawing is in-memory until [Matrix.Show].
//
// Matrix implements [draw.Image]; Set and At clip silently like the stdlib
// image types, while SetPixel and PixelAt report [ErrBounds].
type Matrix struct {
	out        Output
	layout     Layout
	buf        []pixel.Color
	wire       []byte
	brightness float64
	order      pixel.Order
	dummyFirst bool
}

// New creates a matrix frame buffer that transmits frames to the given
// output. A nil config selects [DefaultConfig].
func New(out Output, config *Config) *Matrix {
	if out == nil {
		out = Discard
	}
	if config == nil {
		c := DefaultConfig
		config = &c
	}
	width, height := config.Width, config.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	brightness := config.Brightness
	if brightness <= 0 || brightness > 1 {
		brightness = DefaultBrightness
	}

	numPixels := width * height
	wireLen := numPixels * 3
	if config.DummyFirst {
		wireLen += 3
	}

	return &Matrix{
		out: out,
		layout: Layout{
			Width:      width,
			Height:     height,
			Serpentine: config.Serpentine,
		},
		buf:        make([]pixel.Color, numPixels),
		wire:       make([]byte, wireLen),
		brightness: brightness,
		order:      config.Order,
		dummyFirst: config.DummyFirst,
	}
}

// Layout returns the strip layout of the matrix.
func (m *Matrix) Layout() Layout {
	return m.layout
}

// Brightness returns the current brightness scale.
func (m *Matrix) Brightness() float64 {
	return m.brightness
}

// SetBrightness changes the brightness scale, clamped to [0,1]. It only
// affects subsequent writes; colors already in the buffer keep the scale
// they were set with.
//
// Unlike [Config.Brightness], which must be positive, zero is accepted
// here and blacks out every subsequent write. That mutes the panel on the
// next frames without touching colors already drawn.
func (m *Matrix) SetBrightness(brightness float64) {
	if brightness < 0 {
		brightness = 0
	} else if brightness > 1 {
		brightness = 1
	}
	m.brightness = brightness
}

// Bounds is the matrix bounding box.
func (m *Matrix) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.layout.Width, m.layout.Height)
}

// ColorModel returns the 24-bit RGB color model.
func (m *Matrix) ColorModel() color.Model {
	return pixel.Model
}

// At returns the stored (brightness-scaled) color at (x, y), or
// color.Transparent outside the matrix.
func (m *Matrix) At(x, y int) color.Color {
	if !m.layout.Contains(x, y) {
		return color.Transparent
	}
	return m.buf[m.layout.Index(x, y)]
}

// Set stores the color at (x, y), scaled by the current brightness.
// Coordinates outside the matrix clip silently; this is what the draw
// helpers rely on.
func (m *Matrix) Set(x, y int, c color.Color) {
	if !m.layout.Contains(x, y) {
		return
	}
	m.buf[m.layout.Index(x, y)] = pixel.Convert(c).Scale(m.brightness)
}

// SetPixel stores the color at (x, y), scaled by the current brightness.
// It returns ErrBounds for coordinates outside the matrix.
func (m *Matrix) SetPixel(x, y int, c pixel.Color) error {
	if !m.layout.Contains(x, y) {
		return ErrBounds
	}
	m.buf[m.layout.Index(x, y)] = c.Scale(m.brightness)
	return nil
}

// PixelAt returns the stored (brightness-scaled) color at (x, y).
func (m *Matrix) PixelAt(x, y int) (pixel.Color, error) {
	if !m.layout.Contains(x, y) {
		return pixel.Black, ErrBounds
	}
	return m.buf[m.layout.Index(x, y)], nil
}

// SetIndex stores the color at a raw strip index, bypassing the coordinate
// mapping. The layout diagnostic and strip-order effects use this.
func (m *Matrix) SetIndex(index int, c pixel.Color) error {
	if index < 0 || index >= len(m.buf) {
		return ErrBounds
	}
	m.buf[index] = c.Scale(m.brightness)
	return nil
}

// Fill sets every pixel to the color, scaled by the current brightness.
func (m *Matrix) Fill(c pixel.Color) {
	scaled := c.Scale(m.brightness)
	for i := range m.buf {
		m.buf[i] = scaled
	}
}

// Clear turns every pixel off. The panel itself stays lit until Show.
func (m *Matrix) Clear() {
	for i := range m.buf {
		m.buf[i] = pixel.Black
	}
}

// DrawRow draws a horizontal line across the entire row y.
func (m *Matrix) DrawRow(y int, c pixel.Color) {
	for x := 0; x < m.layout.Width; x++ {
		m.Set(x, y, c)
	}
}

// DrawColumn draws a vertical line down the entire column x.
func (m *Matrix) DrawColumn(x int, c pixel.Color) {
	for y := 0; y < m.layout.Height; y++ {
		m.Set(x, y, c)
	}
}

// DrawRect draws a rectangle between corners (x0,y0) and (x1,y1) inclusive.
// Parts of the rectangle outside the matrix clip silently.
func (m *Matrix) DrawRect(x0, y0, x1, y1 int, c pixel.Color, filled bool) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if filled || x == x0 || x == x1 || y == y0 || y == y1 {
				m.Set(x, y, c)
			}
		}
	}
}

// DrawBorder draws a one pixel border around the edge of the matrix.
func (m *Matrix) DrawBorder(c pixel.Color) {
	m.DrawRect(0, 0, m.layout.Width-1, m.layout.Height-1, c, false)
}

// DrawImage scales the source image onto the matrix. Colors pass through
// the brightness scale like any other write.
func (m *Matrix) DrawImage(src image.Image) {
	xdraw.NearestNeighbor.Scale(m, m.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// Show packs the frame buffer in wire order and hands it to the output.
// This is the only operation with an effect outside the process; there is
// no implicit flush anywhere else.
func (m *Matrix) Show() error {
	off := 0
	if m.dummyFirst {
		m.wire[0], m.wire[1], m.wire[2] = 0, 0, 0
		off = 3
	}
	for i, c := range m.buf {
		m.order.Put(m.wire[off+i*3:], c)
	}
	_, err := m.out.Write(m.wire)
	return err
}

// TestLayout lights pixels one at a time in raw strip order so that a human
// can tell how the panel is wired: if the second row lights right to left
// the panel is serpentine, left to right means linear.
//
// The routine blocks for delay between pixels and returns early when the
// context is canceled. The panel is dark when it returns.
func (m *Matrix) TestLayout(ctx context.Context, delay time.Duration) error {
	defer func() {
		m.Clear()
		_ = m.Show()
	}()

	for i := range m.buf {
		m.Clear()
		if err := m.SetIndex(i, pixel.Red); err != nil {
			return err
		}
		if err := m.Show(); err != nil {
			return err
		}
		if debug {
			x, y := m.layout.Coordinate(i)
			slog.Debug("layout test pixel", "index", i, "x", x, "y", y)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil
}
