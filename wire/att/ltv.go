package att

import "github.com/user/attmon/report"

// LTVDecoder decodes the value of one LTV record type
type LTVDecoder struct {
	Type   uint8
	Decode DecodeFunc
}

// LTVTable is the set of decoders known for one kind of LTV block
type LTVTable []LTVDecoder

func (t LTVTable) lookup(typ uint8) DecodeFunc {
	for _, d := range t {
		if d.Type == typ {
			return d.Decode
		}
	}
	return nil
}

// WalkLTV reports data as a sequence of length/type/value records. The
// length byte covers the type byte and the value. A record that claims more
// bytes than remain, or a zero length, ends the walk and the remainder is
// dumped. It returns the number of complete records.
//
// meta supplies the frame metadata handed to value decoders and may be nil.
func WalkLTV(r report.Sink, meta *Frame, label string, data []byte, table LTVTable) int {
	if meta == nil {
		meta = &Frame{}
	}
	f := meta.Sub(data)

	n := 0
	for f.Len() > 0 {
		rest := f.Bytes()

		l, _ := f.U8()
		if l == 0 {
			r.Text(report.ColorError, "%s #%d: invalid length", label, n)
			r.HexDump(rest)
			return n
		}
		typ, ok := f.U8()
		if !ok {
			r.Text(report.ColorError, "%s #%d: invalid size", label, n)
			r.HexDump(rest)
			return n
		}
		value, ok := f.Pull(int(l) - 1)
		if !ok {
			r.Text(report.ColorError, "%s #%d: len 0x%2.2x exceeds %d remaining", label, n, l, len(rest)-1)
			r.HexDump(rest)
			return n
		}

		r.Field(label, "#%d: len 0x%2.2x type 0x%2.2x", n, l, typ)
		sub := r.Indent()
		if dec := table.lookup(typ); dec != nil {
			dec(meta.Sub(value), sub)
		} else if len(value) > 0 {
			sub.HexField("Value", value)
		}
		n++
	}
	return n
}

// PrintLV consumes a one byte length followed by that many bytes and walks
// them as LTV records. It reports "<label>: invalid size" and returns false
// when either part is missing.
func PrintLV(f *Frame, r report.Sink, label string, table LTVTable) bool {
	l, ok := f.U8()
	if !ok {
		r.Text(report.ColorError, "%s: invalid size", label)
		return false
	}
	data, ok := f.Pull(int(l))
	if !ok {
		r.Text(report.ColorError, "%s: invalid size", label)
		return false
	}
	WalkLTV(r, f, label, data, table)
	return true
}
