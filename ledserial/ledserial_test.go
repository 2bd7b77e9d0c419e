package ledserial

import (
	"bytes"
	"testing"
)

func TestPacketRoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		packet Packet
	}{
		{"initialize", InitializePacket{NumPixels: 64}},
		{"clear", ClearPacket{}},
		{"set", SetPacket{Pix: bytes.Repeat([]byte{1, 2, 3}, 64)}},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			var buf bytes.Buffer
			if err := WritePacket(&buf, test.packet); err != nil {
				it.Fatalf("expected write to succeed, got %v", err)
			}

			p, err := ReadPacket(&buf, ReadContext{NumPixels: 64})
			if err != nil {
				it.Fatalf("expected read to succeed, got %v", err)
			}
			if p.Type() != test.packet.Type() {
				it.Fatalf("expected packet type %s, got %s", test.packet.Type(), p.Type())
			}
			switch want := test.packet.(type) {
			case InitializePacket:
				if got := p.(InitializePacket); got != want {
					it.Errorf("expected %+v, got %+v", want, got)
				}
			case SetPacket:
				if got := p.(SetPacket); !bytes.Equal(got.Pix, want.Pix) {
					it.Errorf("pixel payload mismatch")
				}
			}
		})
	}
}

func TestReadPacketRejectsBadChecksum(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePacket(&buf, InitializePacket{NumPixels: 64}); err != nil {
		t.Fatal(err)
	}

	corrupted := buf.Bytes()
	corrupted[1] ^= 0xff

	if _, err := ReadPacket(bytes.NewReader(corrupted), ReadContext{}); err == nil {
		t.Error("expected a checksum error")
	}
}

func TestReadPacketRejectsUnknownType(t *testing.T) {
	if _, err := ReadPacket(bytes.NewReader([]byte{0xfe, 0, 0, 0, 0}), ReadContext{}); err == nil {
		t.Error("expected an unknown type error")
	}
}

func TestPacketTypeString(t *testing.T) {
	testCases := []struct {
		t    PacketType
		want string
	}{
		{TypeInitializePacket, "initialize"},
		{TypeClearPacket, "clear"},
		{TypeSetPacket, "set"},
		{PacketType(9), "PacketType(9)"},
	}
	for _, test := range testCases {
		if v := test.t.String(); v != test.want {
			t.Errorf("expected %q, got %q", test.want, v)
		}
	}
}
