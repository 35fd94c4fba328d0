package capture

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const testCapture = `# sample
{"timestamp":"2024-05-01T10:00:00Z","index":0,"event":"connect","conn_handle":"0x0040","local":"00:11:22:33:44:55","peer":"66:77:88:99:AA:BB"}
{"index":0,"direction":"tx","conn_handle":64,"raw_hex":"0a0300"}

{"index":0,"direction":"rx","conn_handle":"64","l2cap_hex":"030004000b0100"}
{"index":0,"direction":"sideways","conn_handle":64,"raw_hex":"0a0300"}
{"index":0,"direction":"rx","conn_handle":64,"l2cap_hex":"0200060001ff"}
{"index":0,"event":"disconnect","conn_handle":64}
`

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(testCapture))

	p, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if p.Event != EventConnect || p.Handle != 0x40 || p.Peer != "66:77:88:99:AA:BB" {
		t.Errorf("connect record = %+v", p)
	}
	if p.Time.IsZero() {
		t.Error("Expected timestamp to be parsed")
	}

	p, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if p.In || p.Channel != 0x0004 || !bytes.Equal(p.Data, []byte{0x0a, 0x03, 0x00}) {
		t.Errorf("raw record = %+v", p)
	}

	p, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if !p.In || p.Channel != 0x0004 || !bytes.Equal(p.Data, []byte{0x0b, 0x01, 0x00}) {
		t.Errorf("l2cap record = %+v", p)
	}
	if r.Line() != 5 {
		t.Errorf("Line = %d, want 5", r.Line())
	}

	_, err = r.Next()
	if errors.Cause(err) != ErrMalformedRecord {
		t.Errorf("Expected ErrMalformedRecord, got %v", err)
	}

	_, err = r.Next()
	if errors.Cause(err) != ErrNotATT {
		t.Errorf("Expected ErrNotATT, got %v", err)
	}

	p, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if p.Event != EventDisconnect {
		t.Errorf("Event = %q, want disconnect", p.Event)
	}

	if _, err = r.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestParseRecordErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"not json", `{"index":`},
		{"bad handle", `{"direction":"rx","conn_handle":"0xzz","raw_hex":"01"}`},
		{"handle overflow", `{"direction":"rx","conn_handle":70000,"raw_hex":"01"}`},
		{"bad hex", `{"direction":"rx","conn_handle":1,"raw_hex":"0g"}`},
		{"short l2cap", `{"direction":"rx","conn_handle":1,"l2cap_hex":"0100"}`},
		{"truncated l2cap", `{"direction":"rx","conn_handle":1,"l2cap_hex":"0500040001"}`},
		{"connect without peer", `{"event":"connect","conn_handle":1,"local":"a"}`},
		{"unknown event", `{"event":"reset","conn_handle":1}`},
		{"bad timestamp", `{"timestamp":"yesterday","direction":"rx","conn_handle":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord([]byte(tt.line))
			if errors.Cause(err) != ErrMalformedRecord {
				t.Errorf("Expected ErrMalformedRecord, got %v", err)
			}
		})
	}
}

func TestReaderSkipsOversizedLine(t *testing.T) {
	huge := `{"direction":"tx","conn_handle":64,"raw_hex":"` + strings.Repeat("ab", maxLine/2+1024) + `"}`
	input := huge + "\n" + `{"direction":"rx","conn_handle":64,"raw_hex":"0b0100"}`
	r := NewReader(strings.NewReader(input))

	_, err := r.Next()
	if errors.Cause(err) != ErrMalformedRecord {
		t.Fatalf("Expected ErrMalformedRecord for oversized line, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("Expected line number in error, got %v", err)
	}

	p, err := r.Next()
	if err != nil {
		t.Fatalf("Next after oversized line failed: %v", err)
	}
	if !p.In || !bytes.Equal(p.Data, []byte{0x0b, 0x01, 0x00}) {
		t.Errorf("record = %+v", p)
	}
	if r.Line() != 2 {
		t.Errorf("Line = %d, want 2", r.Line())
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestEmptyPDU(t *testing.T) {
	p, err := ParseRecord([]byte(`{"direction":"rx","conn_handle":1,"channel_id":"0x0041"}`))
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if len(p.Data) != 0 || p.Channel != 0x0041 {
		t.Errorf("record = %+v", p)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	in := &Packet{In: true, Handle: 0x40, Channel: 0x41, Data: []byte{0x1b, 0x03, 0x00, 0x01}}
	if err := w.Write(in); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"raw_hex":"1b030001"`) {
		t.Errorf("Unexpected record %s", buf.String())
	}

	out, err := NewReader(&buf).Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if !out.In || out.Handle != 0x40 || out.Channel != 0x41 || !bytes.Equal(out.Data, in.Data) {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
