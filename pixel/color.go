package pixel

import (
	"image/color"
	"math"
)

// Model is the color model for 24-bit RGB LED colors.
var Model color.Model = color.ModelFunc(model)

// Common colors.
var (
	Black   = Color{0x00, 0x00, 0x00}
	White   = Color{0xff, 0xff, 0xff}
	Red     = Color{0xff, 0x00, 0x00}
	Green   = Color{0x00, 0xff, 0x00}
	Blue    = Color{0x00, 0x00, 0xff}
	Yellow  = Color{0xff, 0xff, 0x00}
	Cyan    = Color{0x00, 0xff, 0xff}
	Magenta = Color{0xff, 0x00, 0xff}
	Orange  = Color{0xff, 0xa5, 0x00}
	Purple  = Color{0x80, 0x00, 0x80}
)

// Color is a 24-bit RGB color, stored as one byte per channel in R, G, B
// order. The wire order of the LED hardware is handled separately by [Order].
type Color [3]uint8

// RGB returns the color with the given channel intensities.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c[0])
	r |= r << 8
	g = uint32(c[1])
	g |= g << 8
	b = uint32(c[2])
	b |= b << 8
	return r, g, b, 0xffff
}

func model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// Convert returns c converted to a Color using [Model].
func Convert(c color.Color) Color {
	return model(c).(Color)
}

// Scale returns the color with every channel multiplied by the given factor.
// The factor is clamped to [0,1], so a scaled channel always stays in range.
func (c Color) Scale(factor float64) Color {
	if factor <= 0 {
		return Black
	}
	if factor >= 1 {
		return c
	}
	return Color{
		uint8(float64(c[0]) * factor),
		uint8(float64(c[1]) * factor),
		uint8(float64(c[2]) * factor),
	}
}

// Lerp returns the linear interpolation between colors a and b at position
// t in [0,1].
func Lerp(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Color{
		uint8(float64(a[0]) + (float64(b[0])-float64(a[0]))*t),
		uint8(float64(a[1]) + (float64(b[1])-float64(a[1]))*t),
		uint8(float64(a[2]) + (float64(b[2])-float64(a[2]))*t),
	}
}

// Wheel generates rainbow colors across positions 0-255, wrapping around.
// Position 0 is red, 85 is green and 170 is blue.
func Wheel(pos int) Color {
	pos &= 0xff
	switch {
	case pos < 85:
		return Color{uint8(255 - pos*3), uint8(pos * 3), 0}
	case pos < 170:
		pos -= 85
		return Color{0, uint8(255 - pos*3), uint8(pos * 3)}
	default:
		pos -= 170
		return Color{uint8(pos * 3), 0, uint8(255 - pos*3)}
	}
}

// HSV converts a hue in degrees [0,360) with saturation and value in [0,1]
// to a Color.
func HSV(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if s <= 0 {
		y := uint8(v * 255)
		return Color{y, y, y}
	}

	h /= 60
	i := int(h)
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return Color{uint8(r * 255), uint8(g * 255), uint8(b * 255)}
}
