package monitor

import (
	"errors"
	"testing"

	"github.com/user/attmon/conn"
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/gatt"
)

const (
	testConn  = 0x0040
	testCID   = 0x0004
	testLocal = "00:11:22:33:44:55"
	testPeer  = "66:77:88:99:AA:BB"
)

var errNotFound = errors.New("no such database")

// mapLoader serves attribute databases from memory
type mapLoader struct {
	dbs   map[string]map[uint16]uint16
	loads int
}

func (m *mapLoader) Load(db *gatt.AttributeDatabase, name string) error {
	m.loads++
	attrs, ok := m.dbs[name]
	if !ok {
		return errNotFound
	}
	for handle, typ := range attrs {
		if err := db.Insert(handle, gatt.UUID16(typ), nil); err != nil {
			return err
		}
	}
	return nil
}

// newTestDissector returns a dissector with one open connection whose local
// and peer databases hold the given attributes
func newTestDissector(local, remote map[uint16]uint16, opts Options) (*Dissector, *mapLoader) {
	loader := &mapLoader{dbs: map[string]map[uint16]uint16{}}
	if local != nil {
		loader.dbs[testLocal+"/attributes"] = local
	}
	if remote != nil {
		loader.dbs[testLocal+"/cache/"+testPeer] = remote
	}

	conns := conn.NewStore()
	conns.Open(testConn, testLocal, testPeer)
	return New(conns, loader, opts), loader
}

func dissect(d *Dissector, in bool, data ...byte) *report.Report {
	r := report.New()
	d.Packet(0, in, testConn, testCID, data, r)
	return r
}

func expectValue(t *testing.T, r *report.Report, label, want string) {
	t.Helper()
	got, ok := r.Value(label)
	if !ok {
		t.Fatalf("Expected %q field, got none\n%s", label, r)
	}
	if got != want {
		t.Errorf("%s = %q, want %q", label, got, want)
	}
}

func expectValues(t *testing.T, r *report.Report, label string, want ...string) {
	t.Helper()
	lines := r.Find(label)
	if len(lines) != len(want) {
		t.Fatalf("Expected %d %q fields, got %d\n%s", len(want), label, len(lines), r)
	}
	for i, l := range lines {
		if l.Value != want[i] {
			t.Errorf("%s #%d = %q, want %q", label, i, l.Value, want[i])
		}
	}
}

func expectMissing(t *testing.T, r *report.Report, label string) {
	t.Helper()
	if got, ok := r.Value(label); ok {
		t.Errorf("Expected no %q field, got %q", label, got)
	}
}

func expectText(t *testing.T, r *report.Report, color report.Color, want string) {
	t.Helper()
	for _, s := range r.Texts(color) {
		if s == want {
			return
		}
	}
	t.Errorf("Expected text %q (%q), got %v\n%s", want, color, r.Texts(color), r)
}

func expectNoErrors(t *testing.T, r *report.Report) {
	t.Helper()
	if errs := r.Texts(report.ColorError); len(errs) > 0 {
		t.Errorf("Expected no errors, got %v\n%s", errs, r)
	}
}

// hasValue reports whether any line carries value, labelled or not
func hasValue(r *report.Report, value string) bool {
	for _, l := range r.Lines() {
		if l.Value == value {
			return true
		}
	}
	return false
}
