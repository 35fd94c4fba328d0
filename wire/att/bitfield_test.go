package att

import (
	"testing"

	"github.com/user/attmon/report"
)

var testBits = Bitfield{Width: 8, Entries: []BitfieldEntry{
	{0, "Notification"},
	{1, "Indication"},
}}

func TestBitfield_KnownBitsOnly(t *testing.T) {
	r := report.New()
	mask := testBits.Report(r, 0x03)

	if mask != 0 {
		t.Errorf("Expected residual 0, got 0x%02x", mask)
	}
	got := r.Texts(report.ColorNone)
	if len(got) != 2 || got[0] != "Notification (0x01)" || got[1] != "Indication (0x02)" {
		t.Errorf("Unexpected labels: %v", got)
	}
	if w := r.Texts(report.ColorWarning); len(w) != 0 {
		t.Errorf("Expected no unknown fields annotation, got %v", w)
	}
}

func TestBitfield_Residual(t *testing.T) {
	values := []uint32{0x00, 0x04, 0x85, 0xff}
	for _, v := range values {
		r := report.New()
		mask := testBits.Report(r, v)
		want := v &^ 0x03
		if mask != want {
			t.Errorf("Value 0x%02x: expected residual 0x%02x, got 0x%02x", v, want, mask)
		}

		w := r.Texts(report.ColorWarning)
		if want == 0 && len(w) != 0 {
			t.Errorf("Value 0x%02x: unexpected warning %v", v, w)
		}
		if want != 0 && (len(w) != 1 || w[0] != "Unknown fields (0x"+hex2(want)+")") {
			t.Errorf("Value 0x%02x: unexpected warning %v", v, w)
		}
	}
}

func TestBitfield_WidthControlsDigits(t *testing.T) {
	loc := Bitfield{Width: 32, Entries: []BitfieldEntry{{0, "Front Left"}}}
	r := report.New()
	loc.Report(r, 0x80000001)

	got := r.Texts(report.ColorNone)
	if len(got) != 1 || got[0] != "Front Left (0x00000001)" {
		t.Errorf("Unexpected labels: %v", got)
	}
	w := r.Texts(report.ColorWarning)
	if len(w) != 1 || w[0] != "Unknown fields (0x80000000)" {
		t.Errorf("Unexpected warning: %v", w)
	}
}

func hex2(v uint32) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4&0xf], digits[v&0xf]})
}
