package bap

import (
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
	"github.com/user/attmon/wire/gatt"
)

// field reads and reports one element of a record. It returns false when the
// frame ran out, after reporting "<label>: invalid size".
type field func(f *att.Frame, r report.Sink) bool

// run reports fields in order and stops at the first one that fails
func run(f *att.Frame, r report.Sink, fields []field) bool {
	for _, fn := range fields {
		if !fn(f, r) {
			return false
		}
	}
	return true
}

func invalid(r report.Sink, label string) {
	r.Text(report.ColorError, "%s: invalid size", label)
}

func lookup(names map[uint8]string, v uint8, fallback string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fallback
}

func u8(label string) field {
	return func(f *att.Frame, r report.Sink) bool {
		return f.PrintU8(r, label)
	}
}

func u16(label string) field {
	return func(f *att.Frame, r report.Sink) bool {
		v, ok := f.LE16()
		if !ok {
			invalid(r, label)
			return false
		}
		r.Field(label, "%d", v)
		return true
	}
}

// u24 reports a 3 octet quantity followed by unit
func u24(label, unit string) field {
	return func(f *att.Frame, r report.Sink) bool {
		v, ok := f.LE24()
		if !ok {
			invalid(r, label)
			return false
		}
		r.Field(label, "%d %s", v, unit)
		return true
	}
}

func enum(label string, names map[uint8]string) field {
	return func(f *att.Frame, r report.Sink) bool {
		v, ok := f.U8()
		if !ok {
			invalid(r, label)
			return false
		}
		r.Field(label, "%s (0x%2.2x)", lookup(names, v, "Reserved"), v)
		return true
	}
}

func bits8(label string, b att.Bitfield) field {
	return func(f *att.Frame, r report.Sink) bool {
		v, ok := f.U8()
		if !ok {
			invalid(r, label)
			return false
		}
		r.Field(label, "0x%2.2x", v)
		b.Report(r.Indent(), uint32(v))
		return true
	}
}

func lv(label string, table att.LTVTable) field {
	return func(f *att.Frame, r report.Sink) bool {
		return att.PrintLV(f, r, label, table)
	}
}

// codec reports a Codec_ID: coding format, company id and vendor codec id.
// The five octets are always present; the last two fields are only
// meaningful for vendor specific codecs.
func codec(f *att.Frame, r report.Sink) bool {
	id, ok := f.U8()
	if !ok {
		invalid(r, "Codec")
		return false
	}
	r.Field("Codec", "%s (0x%2.2x)", lookup(codecNames, id, "Reserved"), id)

	cid, ok := f.LE16()
	if !ok {
		invalid(r, "Codec Company ID")
		return false
	}
	vid, ok := f.LE16()
	if !ok {
		invalid(r, "Codec Vendor ID")
		return false
	}

	if id == 0xff {
		sub := r.Indent()
		sub.Field("Codec Company ID", "%s (0x%04x)", gatt.CompanyName(cid), cid)
		sub.Field("Codec Vendor ID", "0x%04x", vid)
	}
	return true
}

// ltvValue adapts a field to an LTV value decoder that reports any bytes the
// field left unread
func ltvValue(fn field) att.DecodeFunc {
	return func(f *att.Frame, r report.Sink) {
		fn(f, r)
		f.DumpRest(r)
	}
}
