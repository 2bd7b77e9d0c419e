// Package ledserial implements the framing used to drive an LED matrix
// through a microcontroller bridge over a serial line.
//
// Every packet is a one byte type, a type-specific payload and a CRC32-IEEE
// checksum of everything before it. The microcontroller performs the actual
// WS2812B bit timing; the host only streams frames.
package ledserial

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

// Endianness defines the endianness of the protocol.
var Endianness = binary.LittleEndian

// PacketType is a type of packet.
type PacketType uint8

const (
	TypeInitializePacket PacketType = iota
	TypeClearPacket
	TypeSetPacket
)

// String returns a string representation of the packet type.
func (t PacketType) String() string {
	switch t {
	case TypeInitializePacket:
		return "initialize"
	case TypeClearPacket:
		return "clear"
	case TypeSetPacket:
		return "set"
	default:
		return fmt.Sprintf("PacketType(%d)", uint8(t))
	}
}

// Packet is a packet sent over the wire.
type Packet interface {
	// Type returns the type of packet.
	Type() PacketType
}

// InitializePacket tells the bridge how many LEDs are attached.
type InitializePacket struct {
	NumPixels uint16
}

// ClearPacket turns every LED off.
type ClearPacket struct{}

// SetPacket carries one packed frame, 3 bytes per LED in wire order.
type SetPacket struct {
	Pix []uint8
}

func (p InitializePacket) Type() PacketType { return TypeInitializePacket }
func (p ClearPacket) Type() PacketType      { return TypeClearPacket }
func (p SetPacket) Type() PacketType        { return TypeSetPacket }

// ReadContext carries the state the reader needs to size incoming packets.
type ReadContext struct {
	// NumPixels is the number of LEDs in the strip.
	NumPixels uint16
}

// WritePacket writes a packet to the given writer.
func WritePacket(w io.Writer, p Packet) error {
	hash := crc32.NewIEEE()
	w = io.MultiWriter(w, hash)

	switch p := p.(type) {
	case InitializePacket:
		if err := binary.Write(w, Endianness, TypeInitializePacket); err != nil {
			return fmt.Errorf("failed to write packet type: %w", err)
		}
		if err := binary.Write(w, Endianness, p); err != nil {
			return fmt.Errorf("failed to write packet: %w", err)
		}
	case ClearPacket:
		if err := binary.Write(w, Endianness, TypeClearPacket); err != nil {
			return fmt.Errorf("failed to write packet type: %w", err)
		}
	case SetPacket:
		if err := binary.Write(w, Endianness, TypeSetPacket); err != nil {
			return fmt.Errorf("failed to write packet type: %w", err)
		}
		if _, err := w.Write(p.Pix); err != nil {
			return fmt.Errorf("failed to write packet: %w", err)
		}
	default:
		return fmt.Errorf("unknown packet type: %T", p)
	}

	if err := binary.Write(w, Endianness, hash.Sum32()); err != nil {
		return fmt.Errorf("failed to write packet checksum: %w", err)
	}

	return nil
}

// ReadPacket reads a packet from the given reader.
func ReadPacket(r io.Reader, context ReadContext) (Packet, error) {
	hash := crc32.NewIEEE()
	r = io.TeeReader(r, hash)

	var packet Packet
	var ptypeBuf [1]byte
	if _, err := io.ReadFull(r, ptypeBuf[:]); err != nil {
		return nil, fmt.Errorf("failed to read packet type: %w", err)
	}

	switch ptype := PacketType(ptypeBuf[0]); ptype {
	case TypeInitializePacket:
		var p InitializePacket
		if err := binary.Read(r, Endianness, &p); err != nil {
			return nil, fmt.Errorf("failed to read number of LEDs: %w", err)
		}
		packet = p

	case TypeClearPacket:
		packet = ClearPacket{}

	case TypeSetPacket:
		p := SetPacket{Pix: make([]uint8, 3*context.NumPixels)}
		if _, err := io.ReadFull(r, p.Pix); err != nil {
			return nil, fmt.Errorf("failed to read pixel data: %w", err)
		}
		packet = p

	default:
		return nil, fmt.Errorf("unknown packet type: %s", ptype)
	}

	want := hash.Sum32()

	var checksum uint32
	if err := binary.Read(r, Endianness, &checksum); err != nil {
		return nil, fmt.Errorf("failed to read packet checksum: %w", err)
	}

	if checksum != want {
		return nil, fmt.Errorf("packet checksum mismatch")
	}

	return packet, nil
}
