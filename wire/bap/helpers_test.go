package bap

import (
	"testing"

	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
)

func decode(fn att.DecodeFunc, data []byte) *report.Report {
	r := report.New()
	fn(att.NewFrame(0, true, 0x0040, 0x0004, data), r)
	return r
}

func expectValue(t *testing.T, r *report.Report, label, want string) {
	t.Helper()
	got, ok := r.Value(label)
	if !ok {
		t.Errorf("%s missing from report:\n%s", label, r)
		return
	}
	if got != want {
		t.Errorf("%s = %q, want %q", label, got, want)
	}
}

func expectMissing(t *testing.T, r *report.Report, label string) {
	t.Helper()
	if _, ok := r.Value(label); ok {
		t.Errorf("%s unexpectedly reported:\n%s", label, r)
	}
}

func expectValues(t *testing.T, r *report.Report, label string, want ...string) {
	t.Helper()
	lines := r.Find(label)
	if len(lines) != len(want) {
		t.Fatalf("%d %s lines, want %d:\n%s", len(lines), label, len(want), r)
	}
	for i := range want {
		if lines[i].Value != want[i] {
			t.Errorf("%s[%d] = %q, want %q", label, i, lines[i].Value, want[i])
		}
	}
}

func expectNoErrors(t *testing.T, r *report.Report) {
	t.Helper()
	if errs := r.Texts(report.ColorError); len(errs) != 0 {
		t.Errorf("unexpected errors %v:\n%s", errs, r)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
