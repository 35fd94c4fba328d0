package att

import "github.com/user/attmon/report"

// BitfieldEntry labels one bit of a flags value
type BitfieldEntry struct {
	Bit   uint8
	Label string
}

// Bitfield is a table of labelled bits for a value of a given width
type Bitfield struct {
	Width   int // 8, 16 or 32
	Entries []BitfieldEntry
}

func (b Bitfield) digits() int {
	return b.Width / 4
}

// Known returns the mask of every bit the table defines
func (b Bitfield) Known() uint32 {
	var mask uint32
	for _, e := range b.Entries {
		mask |= 1 << e.Bit
	}
	return mask
}

// Print emits one line per defined bit set in value and returns the bits of
// value the table does not cover.
func (b Bitfield) Print(r report.Sink, value uint32) uint32 {
	for _, e := range b.Entries {
		if value&(1<<e.Bit) != 0 {
			r.Text(report.ColorNone, "%s (0x%0*x)", e.Label, b.digits(), uint32(1)<<e.Bit)
		}
	}
	return value &^ b.Known()
}

// PrintUnknown emits the warning annotation for a residual mask. A zero mask
// emits nothing.
func (b Bitfield) PrintUnknown(r report.Sink, mask uint32) {
	if mask == 0 {
		return
	}
	r.Text(report.ColorWarning, "Unknown fields (0x%0*x)", b.digits(), mask)
}

// Report prints the set bits of value followed by any unknown bits
func (b Bitfield) Report(r report.Sink, value uint32) uint32 {
	mask := b.Print(r, value)
	b.PrintUnknown(r, mask)
	return mask
}
