package pixel

import "fmt"

// Order is the channel order the LED hardware expects on the wire. Most
// WS2812B parts are GRB; some clones and older WS2811 strips use RGB or BRG.
type Order uint8

// Supported channel orders.
const (
	OrderGRB Order = iota
	OrderRGB
	OrderBRG
	OrderRBG
	OrderGBR
	OrderBGR
)

var orderNames = map[Order]string{
	OrderGRB: "GRB",
	OrderRGB: "RGB",
	OrderBRG: "BRG",
	OrderRBG: "RBG",
	OrderGBR: "GBR",
	OrderBGR: "BGR",
}

// offsets maps each wire byte position to the R, G, B channel index.
var orderOffsets = map[Order][3]int{
	OrderGRB: {1, 0, 2},
	OrderRGB: {0, 1, 2},
	OrderBRG: {2, 0, 1},
	OrderRBG: {0, 2, 1},
	OrderGBR: {1, 2, 0},
	OrderBGR: {2, 1, 0},
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// ParseOrder parses a channel order name such as "GRB".
func ParseOrder(name string) (Order, error) {
	for order, orderName := range orderNames {
		if name == orderName {
			return order, nil
		}
	}
	return 0, fmt.Errorf("pixel: unknown channel order %q", name)
}

// Put packs the color into dst using the channel order. dst must have room
// for at least 3 bytes.
func (o Order) Put(dst []byte, c Color) {
	off, ok := orderOffsets[o]
	if !ok {
		off = orderOffsets[OrderGRB]
	}
	dst[0] = c[off[0]]
	dst[1] = c[off[1]]
	dst[2] = c[off[2]]
}
