package gatt

import (
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
)

var cccBits = att.Bitfield{Width: 8, Entries: []att.BitfieldEntry{
	{Bit: 0, Label: "Notification"},
	{Bit: 1, Label: "Indication"},
}}

// DecodeCCC reports a Client Characteristic Configuration value. Only the
// low octet carries defined bits.
func DecodeCCC(f *att.Frame, r report.Sink) {
	value, ok := f.U8()
	if !ok {
		r.Text(report.ColorError, "invalid size")
		return
	}
	cccBits.Report(r.Indent(), uint32(value))
}
