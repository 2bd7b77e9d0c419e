package neomatrix

import (
	"encoding"
	"io"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/dominicmooney007/neomatrix/pixel"
)

// FileConfig is the on-disk configuration for the demo tooling. The
// zero-valued fields fall back to the [DefaultConfig] values.
type FileConfig struct {
	// Width and Height of the matrix.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Serpentine is true when odd rows are wired in reverse.
	Serpentine bool `toml:"serpentine"`

	// Brightness is the uniform channel scale (0,1].
	Brightness float64 `toml:"brightness"`

	// Order is the wire channel order, for example "GRB".
	Order string `toml:"order"`

	// DummyFirst inserts a dark lead-in pixel before every frame.
	DummyFirst bool `toml:"dummy_first"`

	// FrameInterval is the delay between animation frames.
	FrameInterval Duration `toml:"frame_interval"`

	// Output selects and configures the hardware connection.
	Output OutputConfig `toml:"output"`
}

// OutputConfig selects the hardware connection.
type OutputConfig struct {
	// Kind is "spi", "serial" or "discard".
	Kind string `toml:"kind"`

	// Port is the SPI port name, for example "SPI0.0".
	Port string `toml:"port"`

	// Device is the serial device for the "serial" kind.
	Device string `toml:"device"`

	// Baud is the serial baud rate.
	Baud int `toml:"baud"`
}

// DefaultFileConfig matches a common serpentine 8x8 GRB panel on the first
// SPI port.
var DefaultFileConfig = FileConfig{
	Width:         DefaultWidth,
	Height:        DefaultHeight,
	Serpentine:    true,
	Brightness:    DefaultBrightness,
	Order:         "GRB",
	FrameInterval: Duration(60 * time.Millisecond),
	Output:        OutputConfig{Kind: "spi"},
}

// Validate validates the configuration.
func (c *FileConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New("matrix dimensions must be positive")
	}
	if c.Brightness <= 0 || c.Brightness > 1 {
		return errors.Errorf("brightness %v outside (0,1]", c.Brightness)
	}
	if _, err := pixel.ParseOrder(c.Order); err != nil {
		return err
	}
	switch c.Output.Kind {
	case "spi", "discard":
	case "serial":
		if c.Output.Device == "" {
			return errors.New("serial output needs a device")
		}
	default:
		return errors.Errorf("unknown output kind %q", c.Output.Kind)
	}
	return nil
}

// MatrixConfig converts the file configuration into a [Config].
func (c *FileConfig) MatrixConfig() (*Config, error) {
	order, err := pixel.ParseOrder(c.Order)
	if err != nil {
		return nil, err
	}
	return &Config{
		Width:      c.Width,
		Height:     c.Height,
		Serpentine: c.Serpentine,
		Brightness: c.Brightness,
		Order:      order,
		DummyFirst: c.DummyFirst,
	}, nil
}

// NumPixels returns the number of LEDs on the wire, including the dummy
// lead-in pixel when configured.
func (c *FileConfig) NumPixels() int {
	n := c.Width * c.Height
	if c.DummyFirst {
		n++
	}
	return n
}

// Open opens the configured hardware output.
func (c *FileConfig) Open() (Output, error) {
	switch c.Output.Kind {
	case "spi":
		return OpenWS2812(&WS2812Config{
			Port:      c.Output.Port,
			NumPixels: c.NumPixels(),
		})
	case "serial":
		return OpenSerial(&SerialConfig{
			Device:    c.Output.Device,
			Baud:      c.Output.Baud,
			NumPixels: c.NumPixels(),
		})
	case "discard":
		return Discard, nil
	default:
		return nil, errors.Errorf("unknown output kind %q", c.Output.Kind)
	}
}

// Duration is a duration that can be parsed from TOML.
type Duration time.Duration

var (
	_ encoding.TextUnmarshaler = (*Duration)(nil)
	_ encoding.TextMarshaler   = (*Duration)(nil)
)

func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// ParseConfig parses a configuration from a reader. Fields left out of the
// file keep their [DefaultFileConfig] values.
func ParseConfig(r io.Reader) (*FileConfig, error) {
	config := DefaultFileConfig
	if err := toml.NewDecoder(r).Decode(&config); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &config, nil
}
