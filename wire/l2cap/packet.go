package l2cap

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// L2CAP Channel IDs
const (
	ChannelNULL      uint16 = 0x0000 // Reserved/Null
	ChannelSignaling uint16 = 0x0001 // ACL-U signaling
	ChannelConnless  uint16 = 0x0002 // Connectionless
	ChannelAMP       uint16 = 0x0003 // AMP Manager
	ChannelATT       uint16 = 0x0004 // Attribute Protocol
	ChannelLESignal  uint16 = 0x0005 // LE L2CAP Signaling
	ChannelSMP       uint16 = 0x0006 // Security Manager Protocol
	ChannelBR        uint16 = 0x0007 // BR/EDR Security Manager

	// First dynamically allocated LE channel. Enhanced ATT bearers live here.
	ChannelDynamicStart uint16 = 0x0040
)

// HeaderLen is Length (2 bytes) + Channel ID (2 bytes)
const HeaderLen = 4

var (
	ErrShortPacket      = errors.New("l2cap: packet too short")
	ErrIncompletePacket = errors.New("l2cap: incomplete packet")
)

// Packet is an L2CAP basic frame
// Format: [Length: 2 bytes] [Channel ID: 2 bytes] [Payload: N bytes]
type Packet struct {
	Length    uint16 // Length of the payload (not including L2CAP header)
	ChannelID uint16
	Payload   []byte
}

// Decode parses a basic frame. Bytes beyond the claimed length are ignored.
func Decode(data []byte) (*Packet, error) {
	if len(data) < HeaderLen {
		return nil, errors.Wrapf(ErrShortPacket, "need at least %d bytes, got %d", HeaderLen, len(data))
	}

	length := binary.LittleEndian.Uint16(data[0:2])
	channelID := binary.LittleEndian.Uint16(data[2:4])

	if len(data) < HeaderLen+int(length) {
		return nil, errors.Wrapf(ErrIncompletePacket, "claimed length %d, got %d", length, len(data)-HeaderLen)
	}

	payload := make([]byte, length)
	copy(payload, data[4:4+int(length)])

	return &Packet{
		Length:    length,
		ChannelID: channelID,
		Payload:   payload,
	}, nil
}

// CarriesATT reports whether a channel can carry ATT PDUs: the fixed ATT
// channel or a dynamically allocated (EATT) channel.
func CarriesATT(cid uint16) bool {
	return cid == ChannelATT || cid >= ChannelDynamicStart
}
