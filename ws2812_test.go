package neomatrix

import "testing"

func TestExpandNRZ(t *testing.T) {
	testCases := []struct {
		in   byte
		want uint32
	}{
		// Every bit expands to 3 SPI bits: 110 for 1, 100 for 0.
		{0x00, 0b100100100100100100100100},
		{0xff, 0b110110110110110110110110},
		{0x80, 0b110100100100100100100100},
		{0x01, 0b100100100100100100100110},
		{0xaa, 0b110100110100110100110100},
	}
	for _, test := range testCases {
		if v := expandNRZ(test.in); v != test.want {
			t.Errorf("expected expandNRZ(%#02x) to be %#024b, got %#024b", test.in, test.want, v)
		}
	}
}

func TestExpandNRZSymbolRate(t *testing.T) {
	// Every 3-bit symbol must start high and end low, so consecutive
	// symbols always produce a falling edge the chip can clock on.
	for b := 0; b < 256; b++ {
		v := expandNRZ(byte(b))
		for i := 0; i < 8; i++ {
			symbol := (v >> uint(3*i)) & 0b111
			if symbol&0b100 == 0 {
				t.Fatalf("expandNRZ(%#02x): symbol %d does not start high", b, i)
			}
			if symbol&0b001 != 0 {
				t.Fatalf("expandNRZ(%#02x): symbol %d does not end low", b, i)
			}
		}
	}
}
