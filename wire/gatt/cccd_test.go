package gatt

import (
	"testing"

	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
)

func TestDecodeCCC(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		labels  []string
		unknown string
	}{
		{"disabled", []byte{0x00, 0x00}, nil, ""},
		{"notify", []byte{0x01, 0x00}, []string{"Notification (0x01)"}, ""},
		{"both", []byte{0x03, 0x00}, []string{"Notification (0x01)", "Indication (0x02)"}, ""},
		{"reserved bit", []byte{0x05, 0x00}, []string{"Notification (0x01)"}, "Unknown fields (0x04)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := report.New()
			DecodeCCC(att.NewFrame(0, false, 0, 4, tt.data), r)

			labels := r.Texts(report.ColorNone)
			if len(labels) != len(tt.labels) {
				t.Fatalf("labels = %v, want %v", labels, tt.labels)
			}
			for i := range labels {
				if labels[i] != tt.labels[i] {
					t.Errorf("labels[%d] = %s, want %s", i, labels[i], tt.labels[i])
				}
			}
			w := r.Texts(report.ColorWarning)
			if tt.unknown == "" && len(w) != 0 {
				t.Errorf("unexpected warning %v", w)
			}
			if tt.unknown != "" && (len(w) != 1 || w[0] != tt.unknown) {
				t.Errorf("warning = %v, want %s", w, tt.unknown)
			}
		})
	}
}

func TestDecodeCCCEmpty(t *testing.T) {
	r := report.New()
	DecodeCCC(att.NewFrame(0, false, 0, 4, nil), r)
	if errs := r.Texts(report.ColorError); len(errs) != 1 || errs[0] != "invalid size" {
		t.Errorf("errors = %v, want [invalid size]", errs)
	}
}
