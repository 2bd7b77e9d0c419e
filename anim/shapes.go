package anim

import (
	"image"
	"math"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/draw"
	"github.com/dominicmooney007/neomatrix/pixel"
)

// ShapeShow runs through the geometry primitives: expanding circles, a
// rotating line, a triangle, nested boxes and a filled circle pulse.
type ShapeShow struct{}

// Frame counts per phase.
const (
	shapeCircleFrames   = 6
	shapeLineFrames     = 72
	shapeTriangleFrames = 12
	shapeBoxFrames      = 20
	shapeFilledFrames   = 8

	shapeShowFrames = shapeCircleFrames + shapeLineFrames +
		shapeTriangleFrames + shapeBoxFrames + shapeFilledFrames
)

var shapeBoxColors = []pixel.Color{pixel.Red, pixel.Green, pixel.Blue, pixel.Yellow}

func (a *ShapeShow) Name() string { return "shape-show" }

func (a *ShapeShow) Step(m *neomatrix.Matrix, frame int) bool {
	layout := m.Layout()
	center := image.Pt(layout.Width/2, layout.Height/2)

	m.Clear()
	switch {
	case frame < shapeCircleFrames:
		draw.Circle(m, center, frame, pixel.Cyan)

	case frame < shapeCircleFrames+shapeLineFrames:
		angle := (frame - shapeCircleFrames) * 5
		rad := float64(angle) * math.Pi / 180
		dx := int(math.Round(float64(layout.Width/2) * math.Cos(rad)))
		dy := int(math.Round(float64(layout.Height/2) * math.Sin(rad)))
		draw.Line(m,
			image.Pt(center.X-dx, center.Y-dy),
			image.Pt(center.X+dx, center.Y+dy),
			pixel.Wheel(angle))

	case frame < shapeCircleFrames+shapeLineFrames+shapeTriangleFrames:
		apex := image.Pt(layout.Width/2-1, 0)
		left := image.Pt(0, layout.Height-1)
		right := image.Pt(layout.Width-1, layout.Height-1)
		draw.Line(m, apex, left, pixel.Orange)
		draw.Line(m, left, right, pixel.Orange)
		draw.Line(m, right, apex, pixel.Orange)

	case frame < shapeCircleFrames+shapeLineFrames+shapeTriangleFrames+shapeBoxFrames:
		hold := shapeBoxFrames / len(shapeBoxColors)
		i := (frame - shapeCircleFrames - shapeLineFrames - shapeTriangleFrames) / hold
		draw.Box(m, image.Rect(i, i, layout.Width-i, layout.Height-i), shapeBoxColors[i])
		draw.Rectangle(m, image.Rect(i, i, layout.Width-i, layout.Height-i), pixel.White)

	default:
		radius := (frame - shapeShowFrames + shapeFilledFrames) % (layout.Width / 2)
		draw.FilledCircle(m, center, radius, pixel.Magenta)
	}
	return frame+1 < shapeShowFrames
}
