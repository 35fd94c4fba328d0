package bap

import (
	"testing"

	"github.com/user/attmon/report"
)

func TestDecodePAC(t *testing.T) {
	r := decode(DecodePAC, []byte{
		0x01,
		0x06, 0x00, 0x00, 0x00, 0x00,
		0x0d,
		0x03, 0x01, 0x80, 0x00,
		0x02, 0x02, 0x02,
		0x05, 0x04, 0x28, 0x00, 0x78, 0x00,
		0x00,
	})

	expectNoErrors(t, r)
	expectValue(t, r, "Number of PAC(s)", "1")
	expectValues(t, r, "PAC", "#0")
	expectValue(t, r, "Codec", "LC3 (0x06)")
	expectValues(t, r, "Codec Specific Capabilities",
		"#0: len 0x03 type 0x01",
		"#1: len 0x02 type 0x02",
		"#2: len 0x05 type 0x04",
	)
	expectValue(t, r, "Sampling Frequencies", "0x0080")
	expectValue(t, r, "Frame Duration", "0x02")
	expectValue(t, r, "Frame Length", "40 (0x0028) - 120 (0x0078)")
	expectMissing(t, r, "Data")

	labels := r.Texts(report.ColorNone)
	if !contains(labels, "48 Khz (0x0080)") || !contains(labels, "10 ms (0x02)") {
		t.Errorf("bit labels = %v", labels)
	}
}

func TestDecodePAC_Truncated(t *testing.T) {
	r := decode(DecodePAC, []byte{0x02, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x06})

	expectValues(t, r, "PAC", "#0", "#1")
	expectMissing(t, r, "Data")
	errs := r.Texts(report.ColorError)
	if len(errs) != 1 || errs[0] != "Codec Company ID: invalid size" {
		t.Errorf("errors = %v", errs)
	}
}

func TestDecodePAC_ValueLeftover(t *testing.T) {
	r := decode(DecodePAC, []byte{
		0x01,
		0x06, 0x00, 0x00, 0x00, 0x00,
		0x05, 0x04, 0x01, 0x80, 0x00, 0xee,
		0x00,
	})

	expectValue(t, r, "Sampling Frequencies", "0x0080")
	expectValue(t, r, "Data", "ee")
}

func TestDecodeLocation(t *testing.T) {
	r := decode(DecodeLocation, []byte{0x03, 0x00, 0x00, 0x00})

	expectNoErrors(t, r)
	expectValue(t, r, "Location", "0x00000003")
	labels := r.Texts(report.ColorNone)
	if len(labels) != 2 || labels[0] != "Front Left (0x00000001)" || labels[1] != "Front Right (0x00000002)" {
		t.Errorf("labels = %v", labels)
	}
}

func TestDecodeContexts(t *testing.T) {
	r := decode(DecodeContexts, []byte{0x06, 0x00, 0x01, 0x00})

	expectNoErrors(t, r)
	expectValue(t, r, "Sink Context", "0x0006")
	expectValue(t, r, "Source Context", "0x0001")
	labels := r.Texts(report.ColorNone)
	want := []string{"Conversational (0x0002)", "Media (0x0004)", "Unspecified (0x0001)"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %s, want %s", i, labels[i], want[i])
		}
	}
}

func TestDecodeContexts_Short(t *testing.T) {
	r := decode(DecodeContexts, []byte{0x06, 0x00, 0x01})

	expectValue(t, r, "Sink Context", "0x0006")
	expectValue(t, r, "Data", "01")
	errs := r.Texts(report.ColorError)
	if len(errs) != 1 || errs[0] != "Source Context: invalid size" {
		t.Errorf("errors = %v", errs)
	}
}
