// Package draw implements shape primitives for LED matrices.
//
// All primitives operate on a [draw.Image] and rely on the destination to
// clip out-of-bounds pixels, which the matrix frame buffer does.
package draw

import "image/draw"

// Image is an alias for [image/draw.Image].
type Image = draw.Image
