// Package pixel implements the color types and color math used to drive
// WS2812-style addressable LEDs.
//
// The [Color] type is compatible with Go's native [color.Color] interface, so
// the matrix frame buffer can be used with [image] and [image/draw] code. The
// package also carries the channel [Order] packing used by the different
// hardware variants (GRB is the most common wire order for WS2812B).
package pixel
