package neomatrix

import (
	"fmt"

	"github.com/pkg/errors"
	"go.bug.st/serial"

	"github.com/dominicmooney007/neomatrix/ledserial"
)

// SerialConfig describes the serial connection to a microcontroller bridge
// that speaks the [ledserial] protocol.
type SerialConfig struct {
	// Device is the serial device, usually /dev/ttyUSB0 or /dev/ttyACM0.
	Device string

	// Baud is the baud rate of the serial connection.
	Baud int

	// NumPixels is the number of LEDs behind the bridge.
	NumPixels int
}

type serialOutput struct {
	port   serial.Port
	device string
}

// OpenSerial opens a serial connection to an LED bridge and sends the
// initialize packet.
func OpenSerial(config *SerialConfig) (Output, error) {
	if config == nil || config.Device == "" {
		return nil, errors.New("neomatrix: serial output needs a device")
	}
	if config.NumPixels <= 0 || config.NumPixels > 0xffff {
		return nil, errors.New("neomatrix: serial output needs a pixel count")
	}

	port, err := serial.Open(config.Device, &serial.Mode{BaudRate: config.Baud})
	if err != nil {
		return nil, errors.Wrap(err, "neomatrix: failed to open serial port")
	}

	init := ledserial.InitializePacket{NumPixels: uint16(config.NumPixels)}
	if err := ledserial.WritePacket(port, init); err != nil {
		_ = port.Close()
		return nil, errors.Wrap(err, "neomatrix: failed to initialize bridge")
	}

	return &serialOutput{
		port:   port,
		device: config.Device,
	}, nil
}

func (s *serialOutput) String() string {
	return fmt.Sprintf("ledserial(%s)", s.device)
}

// Write frames the packed pixel stream as a set packet.
func (s *serialOutput) Write(pix []byte) (int, error) {
	if len(pix)%3 != 0 {
		return 0, ErrStreamLength
	}
	if err := ledserial.WritePacket(s.port, ledserial.SetPacket{Pix: pix}); err != nil {
		return 0, errors.Wrap(err, "neomatrix: failed to write frame")
	}
	return len(pix), nil
}

func (s *serialOutput) Close() error {
	if err := ledserial.WritePacket(s.port, ledserial.ClearPacket{}); err != nil {
		_ = s.port.Close()
		return errors.Wrap(err, "neomatrix: failed to clear bridge")
	}
	return s.port.Close()
}
