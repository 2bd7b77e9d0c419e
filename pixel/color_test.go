package pixel

import (
	"image/color"
	"math/rand"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	for i := 0; i < 256; i += 15 {
		c := Color{uint8(i), uint8(i), uint8(i)}
		r, g, b, a := c.RGBA()
		want := uint32(i) | uint32(i)<<8
		if r != want {
			t.Errorf("expected red to be %#04x, got %#04x", want, r)
		}
		if g != want {
			t.Errorf("expected green to be %#04x, got %#04x", want, g)
		}
		if b != want {
			t.Errorf("expected blue to be %#04x, got %#04x", want, b)
		}
		if a != 0xffff {
			t.Errorf("expected alpha to be opaque, got %#04x", a)
		}
	}
}

func TestConvert(t *testing.T) {
	for i := 0; i < 64; i++ {
		c := color.RGBA{
			R: uint8(rand.Intn(256)),
			G: uint8(rand.Intn(256)),
			B: uint8(rand.Intn(256)),
			A: 0xff,
		}
		v := Convert(c)
		if v[0] != c.R || v[1] != c.G || v[2] != c.B {
			t.Fatalf("expected %v to convert to {%d %d %d}, got %v", c, c.R, c.G, c.B, v)
		}
	}

	// Converting a Color must be the identity.
	c := Color{1, 2, 3}
	if v := Model.Convert(c); v != c {
		t.Errorf("expected %v, got %v", c, v)
	}
}

func TestScale(t *testing.T) {
	testCases := []struct {
		color  Color
		factor float64
		want   Color
	}{
		{Color{255, 255, 255}, 1.0, Color{255, 255, 255}},
		{Color{255, 255, 255}, 2.0, Color{255, 255, 255}},
		{Color{255, 255, 255}, 0.0, Color{0, 0, 0}},
		{Color{255, 255, 255}, -1.0, Color{0, 0, 0}},
		{Color{255, 255, 255}, 0.3, Color{76, 76, 76}},
		{Color{200, 100, 50}, 0.5, Color{100, 50, 25}},
		{Color{0, 0, 0}, 0.3, Color{0, 0, 0}},
	}
	for _, test := range testCases {
		if v := test.color.Scale(test.factor); v != test.want {
			t.Errorf("expected %v scaled by %v to be %v, got %v",
				test.color, test.factor, test.want, v)
		}
	}

	// Scaling is deterministic.
	a := Color{123, 45, 67}.Scale(0.3)
	b := Color{123, 45, 67}.Scale(0.3)
	if a != b {
		t.Errorf("expected scaling to be deterministic, got %v and %v", a, b)
	}
}

func TestWheel(t *testing.T) {
	testCases := []struct {
		pos  int
		want Color
	}{
		{0, Color{255, 0, 0}},
		{85, Color{0, 255, 0}},
		{170, Color{0, 0, 255}},
		{256, Color{255, 0, 0}}, // wraps
	}
	for _, test := range testCases {
		if v := Wheel(test.pos); v != test.want {
			t.Errorf("expected Wheel(%d) to be %v, got %v", test.pos, test.want, v)
		}
	}

	// Every wheel position keeps at most two channels lit.
	for pos := 0; pos < 256; pos++ {
		c := Wheel(pos)
		if c[0] != 0 && c[1] != 0 && c[2] != 0 {
			t.Fatalf("expected Wheel(%d) to have a dark channel, got %v", pos, c)
		}
	}
}

func TestHSV(t *testing.T) {
	testCases := []struct {
		h, s, v float64
		want    Color
	}{
		{0, 1, 1, Color{255, 0, 0}},
		{120, 1, 1, Color{0, 255, 0}},
		{240, 1, 1, Color{0, 0, 255}},
		{360, 1, 1, Color{255, 0, 0}},
		{0, 0, 1, Color{255, 255, 255}},
		{0, 0, 0, Color{0, 0, 0}},
	}
	for _, test := range testCases {
		if c := HSV(test.h, test.s, test.v); c != test.want {
			t.Errorf("expected HSV(%v,%v,%v) to be %v, got %v",
				test.h, test.s, test.v, test.want, c)
		}
	}
}

func TestLerp(t *testing.T) {
	a := Color{0, 0, 0}
	b := Color{200, 100, 50}
	if v := Lerp(a, b, 0); v != a {
		t.Errorf("expected lerp at 0 to be %v, got %v", a, v)
	}
	if v := Lerp(a, b, 1); v != b {
		t.Errorf("expected lerp at 1 to be %v, got %v", b, v)
	}
	if v, want := Lerp(a, b, 0.5), (Color{100, 50, 25}); v != want {
		t.Errorf("expected lerp at 0.5 to be %v, got %v", want, v)
	}
}
