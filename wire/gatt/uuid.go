package gatt

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidUUID is returned when a UUID string cannot be parsed
var ErrInvalidUUID = errors.New("gatt: invalid uuid")

// UUID is an attribute type in over-the-air byte order (little-endian).
// It is 2, 4 or 16 bytes long.
type UUID []byte

// Bluetooth Base UUID 00000000-0000-1000-8000-00805F9B34FB, little-endian
var baseUUID = []byte{
	0xFB, 0x34, 0x9B, 0x5F, 0x80, 0x00, 0x00, 0x80,
	0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// UUID16 creates a 16-bit UUID
func UUID16(val uint16) UUID {
	return UUID{byte(val), byte(val >> 8)}
}

// UUID128 expands a 16-bit short UUID onto the Bluetooth Base UUID
func UUID128(shortUUID uint16) UUID {
	u := make(UUID, 16)
	copy(u, baseUUID)
	u[12] = byte(shortUUID)
	u[13] = byte(shortUUID >> 8)
	return u
}

// Short returns the 16-bit form of u. A 128-bit UUID qualifies when it is a
// 16-bit value on the Bluetooth Base UUID.
func (u UUID) Short() (uint16, bool) {
	switch len(u) {
	case 2:
		return binary.LittleEndian.Uint16(u), true
	case 16:
		v := binary.LittleEndian.Uint16(u[12:])
		return v, bytes.Equal(u, UUID128(v))
	}
	return 0, false
}

// Equal compares two UUIDs, treating base-UUID 128-bit values as equal to
// their 16-bit form
func (u UUID) Equal(o UUID) bool {
	if a, ok := u.Short(); ok {
		b, ok := o.Short()
		return ok && a == b
	}
	return bytes.Equal(u, o)
}

// String formats 16 and 32-bit UUIDs as hex numbers and 128-bit UUIDs in the
// canonical dashed form
func (u UUID) String() string {
	switch len(u) {
	case 2:
		return fmt.Sprintf("0x%4.4x", binary.LittleEndian.Uint16(u))
	case 4:
		return fmt.Sprintf("0x%8.8x", binary.LittleEndian.Uint32(u))
	case 16:
		id, err := uuid.FromBytes(reverse(u))
		if err != nil {
			return hex.EncodeToString(u)
		}
		return id.String()
	}
	return hex.EncodeToString(u)
}

// Name returns the assigned name of the UUID
func (u UUID) Name() string {
	switch len(u) {
	case 2:
		return UUID16Name(binary.LittleEndian.Uint16(u))
	case 4:
		return UUID32Name(binary.LittleEndian.Uint32(u))
	case 16:
		if v, ok := u.Short(); ok {
			return UUID16Name(v)
		}
		return "Vendor specific"
	}
	return "Unknown"
}

// ParseUUID accepts a 4 or 8 digit hex short form or a dashed 128-bit UUID.
// Base UUID values are reduced to their 16-bit form.
func ParseUUID(s string) (UUID, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	switch len(s) {
	case 4, 8:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidUUID, "%q", s)
		}
		return UUID(reverse(b)), nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidUUID, "%q: %v", s, err)
	}
	u := UUID(reverse(id[:]))
	if v, ok := u.Short(); ok {
		return UUID16(v), nil
	}
	return u, nil
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
