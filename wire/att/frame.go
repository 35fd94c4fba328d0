package att

import (
	"encoding/binary"

	"github.com/user/attmon/report"
)

// Frame is a bounds-checked, forward-only reader over one ATT payload.
// Reads that cannot be satisfied return ok=false and leave the position
// untouched.
type Frame struct {
	Index   uint16 // controller index
	In      bool   // received from the peer
	Handle  uint16 // connection handle
	Channel uint16 // L2CAP channel id

	data []byte
	pos  int
}

// DecodeFunc decodes a value carried in a frame
type DecodeFunc func(f *Frame, r report.Sink)

// NewFrame wraps data. The slice is not copied and must not be modified
// while the frame is in use.
func NewFrame(index uint16, in bool, handle, channel uint16, data []byte) *Frame {
	return &Frame{
		Index:   index,
		In:      in,
		Handle:  handle,
		Channel: channel,
		data:    data,
	}
}

// Len returns the number of unread bytes
func (f *Frame) Len() int {
	return len(f.data) - f.pos
}

// Bytes returns the unread bytes without consuming them
func (f *Frame) Bytes() []byte {
	return f.data[f.pos:]
}

// Pull consumes n bytes
func (f *Frame) Pull(n int) ([]byte, bool) {
	if n < 0 || n > f.Len() {
		return nil, false
	}
	b := f.data[f.pos : f.pos+n]
	f.pos += n
	return b, true
}

func (f *Frame) U8() (uint8, bool) {
	b, ok := f.Pull(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

func (f *Frame) LE16() (uint16, bool) {
	b, ok := f.Pull(2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b), true
}

func (f *Frame) LE24() (uint32, bool) {
	b, ok := f.Pull(3)
	if !ok {
		return 0, false
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16, true
}

func (f *Frame) LE32() (uint32, bool) {
	b, ok := f.Pull(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

// Clone returns a frame over the next n unread bytes that shares this
// frame's metadata. The receiver does not advance. n is clamped to Len.
func (f *Frame) Clone(n int) *Frame {
	if n > f.Len() {
		n = f.Len()
	}
	if n < 0 {
		n = 0
	}
	return &Frame{
		Index:   f.Index,
		In:      f.In,
		Handle:  f.Handle,
		Channel: f.Channel,
		data:    f.data[f.pos : f.pos+n],
	}
}

// Sub wraps an unrelated byte slice, keeping this frame's metadata
func (f *Frame) Sub(data []byte) *Frame {
	return NewFrame(f.Index, f.In, f.Handle, f.Channel, data)
}

// PrintU8 reads one byte and emits it as a decimal field, or emits
// "<label>: invalid size".
func (f *Frame) PrintU8(r report.Sink, label string) bool {
	v, ok := f.U8()
	if !ok {
		r.Text(report.ColorError, "%s: invalid size", label)
		return false
	}
	r.Field(label, "%d", v)
	return true
}

// DumpRest emits whatever is left in the frame under "Data"
func (f *Frame) DumpRest(r report.Sink) {
	if f.Len() > 0 {
		r.HexField("Data", f.Bytes())
	}
}
