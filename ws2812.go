package neomatrix

import (
	"fmt"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// WS2812Config describes the SPI connection to a WS2812B strip.
type WS2812Config struct {
	// Port is the SPI port name as understood by spireg, for example
	// "SPI0.0". Empty selects the first available port.
	Port string

	// NumPixels is the number of LEDs on the strip, including a dummy
	// lead-in pixel when the panel has one.
	NumPixels int
}

// ws2812 encodes pixel streams as NRZ symbols on an SPI bus.
//
// The WS2812B data line runs at 800kHz with a long high pulse for a 1 bit
// and a short one for a 0 bit. Clocking the SPI bus at 3x that rate turns
// every data bit into a 3-bit symbol: 0b110 for 1, 0b100 for 0. MOSI then
// produces a waveform within the chip's timing tolerances and no bit
// banging is needed.
type ws2812 struct {
	port spi.PortCloser
	conn spi.Conn
	name string
	buf  []byte
}

const (
	// 800kHz data rate, 3 SPI bits per data bit.
	ws2812Freq = 3 * 800 * physic.KiloHertz

	// The datasheet asks for >50us low to latch. 24 zero bytes at 2.4MHz
	// is 80us.
	ws2812ResetBytes = 24
)

// OpenWS2812 opens a WS2812B strip on an SPI port. Failures here are the
// only hardware errors that surface at startup; later Write errors just
// leave the previous frame on the panel.
func OpenWS2812(config *WS2812Config) (Output, error) {
	if config == nil || config.NumPixels <= 0 {
		return nil, errors.New("neomatrix: ws2812 needs a pixel count")
	}

	port, err := spireg.Open(config.Port)
	if err != nil {
		return nil, errors.Wrap(err, "neomatrix: failed to open SPI port")
	}

	conn, err := port.Connect(ws2812Freq, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, errors.Wrap(err, "neomatrix: failed to connect SPI port")
	}

	return &ws2812{
		port: port,
		conn: conn,
		name: config.Port,
		buf:  make([]byte, config.NumPixels*3*3+ws2812ResetBytes),
	}, nil
}

func (d *ws2812) String() string {
	return fmt.Sprintf("ws2812(%s)", d.name)
}

// Write encodes the packed pixel stream as NRZ symbols and transmits it,
// followed by the reset latch.
func (d *ws2812) Write(pix []byte) (int, error) {
	if len(pix)%3 != 0 {
		return 0, ErrStreamLength
	}
	if need := len(pix)*3 + ws2812ResetBytes; need > len(d.buf) {
		d.buf = make([]byte, need)
	}

	n := 0
	for _, b := range pix {
		v := expandNRZ(b)
		d.buf[n] = byte(v >> 16)
		d.buf[n+1] = byte(v >> 8)
		d.buf[n+2] = byte(v)
		n += 3
	}
	for i := 0; i < ws2812ResetBytes; i++ {
		d.buf[n+i] = 0
	}

	if err := d.conn.Tx(d.buf[:n+ws2812ResetBytes], nil); err != nil {
		return 0, errors.Wrap(err, "neomatrix: SPI transmit failed")
	}
	return len(pix), nil
}

func (d *ws2812) Close() error {
	return d.port.Close()
}

// expandNRZ converts an 8-bit channel intensity into 24 encoded bits.
//
// The stream is 1x01x01x01x01x01x01x01x0 with the x bits being the bits
// from b, most significant first.
func expandNRZ(b byte) uint32 {
	out := uint32(0x924924)
	out |= uint32(b&0x80) << (3*7 + 1 - 7)
	out |= uint32(b&0x40) << (3*6 + 1 - 6)
	out |= uint32(b&0x20) << (3*5 + 1 - 5)
	out |= uint32(b&0x10) << (3*4 + 1 - 4)
	out |= uint32(b&0x08) << (3*3 + 1 - 3)
	out |= uint32(b&0x04) << (3*2 + 1 - 2)
	out |= uint32(b&0x02) << (3*1 + 1 - 1)
	out |= uint32(b&0x01) << (3*0 + 1 - 0)
	return out
}
