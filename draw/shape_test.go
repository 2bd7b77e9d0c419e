package draw

import (
	"image"
	"image/color"
	"testing"
)

var (
	on  = color.Gray{Y: 0xff}
	off = color.Gray{Y: 0x00}
)

func testCanvas(w, h int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, w, h))
}

func litPixels(img *image.Gray) map[image.Point]bool {
	lit := make(map[image.Point]bool)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				lit[image.Pt(x, y)] = true
			}
		}
	}
	return lit
}

func TestHorizontalLine(t *testing.T) {
	img := testCanvas(8, 8)
	HorizontalLine(img, 1, 3, 5, on)

	lit := litPixels(img)
	if len(lit) != 5 {
		t.Fatalf("expected 5 lit pixels, got %d", len(lit))
	}
	for x := 1; x < 6; x++ {
		if !lit[image.Pt(x, 3)] {
			t.Errorf("expected (%d,3) to be lit", x)
		}
	}
}

func TestVerticalLine(t *testing.T) {
	img := testCanvas(8, 8)
	VerticalLine(img, 6, 0, 8, on)

	lit := litPixels(img)
	if len(lit) != 8 {
		t.Fatalf("expected 8 lit pixels, got %d", len(lit))
	}
	for y := 0; y < 8; y++ {
		if !lit[image.Pt(6, y)] {
			t.Errorf("expected (6,%d) to be lit", y)
		}
	}
}

func TestLineDiagonal(t *testing.T) {
	img := testCanvas(8, 8)
	Line(img, image.Pt(0, 0), image.Pt(7, 7), on)

	lit := litPixels(img)
	if len(lit) != 8 {
		t.Fatalf("expected 8 lit pixels, got %d", len(lit))
	}
	for i := 0; i < 8; i++ {
		if !lit[image.Pt(i, i)] {
			t.Errorf("expected (%d,%d) to be lit", i, i)
		}
	}
}

func TestRectangle(t *testing.T) {
	img := testCanvas(8, 8)
	Rectangle(img, image.Rect(0, 0, 8, 8), on)

	lit := litPixels(img)
	if len(lit) != 28 {
		t.Fatalf("expected 28 perimeter pixels, got %d", len(lit))
	}
	for p := range lit {
		if p.X != 0 && p.X != 7 && p.Y != 0 && p.Y != 7 {
			t.Errorf("interior pixel %v is lit", p)
		}
	}
}

func TestBox(t *testing.T) {
	img := testCanvas(8, 8)
	Box(img, image.Rect(2, 2, 6, 6), on)

	lit := litPixels(img)
	if len(lit) != 16 {
		t.Fatalf("expected 16 lit pixels, got %d", len(lit))
	}
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if !lit[image.Pt(x, y)] {
				t.Errorf("expected (%d,%d) to be lit", x, y)
			}
		}
	}
}

func TestCircle(t *testing.T) {
	img := testCanvas(9, 9)
	Circle(img, image.Pt(4, 4), 3, on)

	lit := litPixels(img)

	// Cardinal points of the circle.
	for _, p := range []image.Point{{4, 1}, {4, 7}, {1, 4}, {7, 4}} {
		if !lit[p] {
			t.Errorf("expected %v to be lit", p)
		}
	}
	if lit[image.Pt(4, 4)] {
		t.Error("expected center to be dark")
	}
}

func TestCircleDegenerate(t *testing.T) {
	img := testCanvas(3, 3)
	Circle(img, image.Pt(1, 1), 0, on)
	if got := litPixels(img); len(got) != 1 || !got[image.Pt(1, 1)] {
		t.Errorf("expected only the center to be lit, got %v", got)
	}

	Circle(img, image.Pt(1, 1), -1, off)
	if got := litPixels(img); len(got) != 1 {
		t.Errorf("expected a negative radius to draw nothing, got %v", got)
	}
}

func TestFilledCircle(t *testing.T) {
	img := testCanvas(9, 9)
	FilledCircle(img, image.Pt(4, 4), 3, on)

	lit := litPixels(img)
	if !lit[image.Pt(4, 4)] {
		t.Error("expected center to be lit")
	}
	for _, p := range []image.Point{{4, 1}, {4, 7}, {1, 4}, {7, 4}} {
		if !lit[p] {
			t.Errorf("expected %v to be lit", p)
		}
	}
	if lit[image.Pt(0, 0)] {
		t.Error("expected corner to be dark")
	}
}

func TestClipping(t *testing.T) {
	// Shapes partially outside the canvas must not panic; the destination
	// clips.
	img := testCanvas(4, 4)
	Rectangle(img, image.Rect(-2, -2, 6, 6), on)
	Circle(img, image.Pt(0, 0), 5, on)
	Line(img, image.Pt(-3, -3), image.Pt(8, 8), on)
}
