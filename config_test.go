package neomatrix

import (
	"strings"
	"testing"
	"time"

	"github.com/dominicmooney007/neomatrix/pixel"
)

func TestParseConfig(t *testing.T) {
	const doc = `
width = 16
height = 16
serpentine = false
brightness = 0.5
order = "RGB"
dummy_first = true
frame_interval = "25ms"

[output]
kind = "serial"
device = "/dev/ttyACM0"
baud = 115200
`
	config, err := ParseConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}

	if config.Width != 16 || config.Height != 16 {
		t.Errorf("expected a 16x16 matrix, got %dx%d", config.Width, config.Height)
	}
	if config.Serpentine {
		t.Error("expected serpentine to be false")
	}
	if config.Brightness != 0.5 {
		t.Errorf("expected brightness 0.5, got %v", config.Brightness)
	}
	if v := time.Duration(config.FrameInterval); v != 25*time.Millisecond {
		t.Errorf("expected a 25ms frame interval, got %v", v)
	}
	if config.Output.Kind != "serial" || config.Output.Device != "/dev/ttyACM0" {
		t.Errorf("unexpected output config %+v", config.Output)
	}
	if config.NumPixels() != 16*16+1 {
		t.Errorf("expected the dummy pixel to count, got %d", config.NumPixels())
	}

	mc, err := config.MatrixConfig()
	if err != nil {
		t.Fatalf("expected the matrix config to convert, got %v", err)
	}
	if mc.Order != pixel.OrderRGB {
		t.Errorf("expected RGB order, got %v", mc.Order)
	}
	if !mc.DummyFirst {
		t.Error("expected dummy_first to carry over")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	config, err := ParseConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("expected an empty document to parse, got %v", err)
	}

	if config.Width != DefaultWidth || config.Height != DefaultHeight {
		t.Errorf("expected the default 8x8 matrix, got %dx%d", config.Width, config.Height)
	}
	if config.Brightness != DefaultBrightness {
		t.Errorf("expected the default brightness, got %v", config.Brightness)
	}
	if !config.Serpentine {
		t.Error("expected serpentine by default")
	}
	if config.Order != "GRB" {
		t.Errorf("expected GRB order by default, got %q", config.Order)
	}
	if config.Output.Kind != "spi" {
		t.Errorf("expected the SPI output by default, got %q", config.Output.Kind)
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*FileConfig)
	}{
		{"zero width", func(c *FileConfig) { c.Width = 0 }},
		{"negative height", func(c *FileConfig) { c.Height = -1 }},
		{"zero brightness", func(c *FileConfig) { c.Brightness = 0 }},
		{"brightness above one", func(c *FileConfig) { c.Brightness = 1.5 }},
		{"bad order", func(c *FileConfig) { c.Order = "XYZ" }},
		{"bad output kind", func(c *FileConfig) { c.Output.Kind = "i2c" }},
		{"serial without device", func(c *FileConfig) {
			c.Output.Kind = "serial"
			c.Output.Device = ""
		}},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			config := DefaultFileConfig
			test.mutate(&config)
			if err := config.Validate(); err == nil {
				it.Error("expected a validation error")
			}
		})
	}

	config := DefaultFileConfig
	if err := config.Validate(); err != nil {
		t.Errorf("expected the default config to validate, got %v", err)
	}
}

func TestConfigOpenDiscard(t *testing.T) {
	config := DefaultFileConfig
	config.Output.Kind = "discard"

	out, err := config.Open()
	if err != nil {
		t.Fatalf("expected the discard output to open, got %v", err)
	}
	if out != Discard {
		t.Errorf("expected Discard, got %v", out)
	}
}
