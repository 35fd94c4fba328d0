// Package report collects the lines produced while dissecting a packet and
// renders them as indented text or as a protobuf Struct.
package report

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Kind identifies the shape of a report line
type Kind int

const (
	KindField Kind = iota // label: value
	KindHex               // label: contiguous hex
	KindDump              // multi-line hex dump
	KindText              // free text, possibly colored
)

var kindNames = map[Kind]string{
	KindField: "field",
	KindHex:   "hex",
	KindDump:  "dump",
	KindText:  "text",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Color annotates text lines. Rendering decides what a color looks like.
type Color string

const (
	ColorNone    Color = ""
	ColorError   Color = "error"
	ColorWarning Color = "white-bg"
	ColorIn      Color = "magenta"
	ColorOut     Color = "blue"
)

// Sink receives decoded output. Decoders only ever write to a Sink; nothing
// they emit is read back.
type Sink interface {
	// Field emits "label: value". An empty label emits the value alone.
	Field(label, format string, args ...interface{})
	// HexField emits the bytes as one contiguous hex string.
	HexField(label string, data []byte)
	// HexDump emits a raw dump of data. Empty data emits nothing.
	HexDump(data []byte)
	// Text emits a free-form annotation.
	Text(color Color, format string, args ...interface{})
	// Indent returns a Sink whose lines nest one level deeper.
	Indent() Sink
}

// Line is one collected report entry
type Line struct {
	Kind  Kind
	Depth int
	Label string
	Value string
	Data  []byte
	Color Color
}

type buffer struct {
	lines []Line
}

// Report is a Sink that keeps every line in memory
type Report struct {
	buf   *buffer
	depth int
}

// New creates an empty report
func New() *Report {
	return &Report{buf: &buffer{}}
}

func (r *Report) add(l Line) {
	l.Depth = r.depth
	r.buf.lines = append(r.buf.lines, l)
}

func (r *Report) Field(label, format string, args ...interface{}) {
	r.add(Line{Kind: KindField, Label: label, Value: fmt.Sprintf(format, args...)})
}

func (r *Report) HexField(label string, data []byte) {
	r.add(Line{Kind: KindHex, Label: label, Value: hex.EncodeToString(data), Data: append([]byte(nil), data...)})
}

func (r *Report) HexDump(data []byte) {
	if len(data) == 0 {
		return
	}
	r.add(Line{Kind: KindDump, Data: append([]byte(nil), data...)})
}

func (r *Report) Text(color Color, format string, args ...interface{}) {
	r.add(Line{Kind: KindText, Value: fmt.Sprintf(format, args...), Color: color})
}

func (r *Report) Indent() Sink {
	return &Report{buf: r.buf, depth: r.depth + 1}
}

// Lines returns every collected line in emission order
func (r *Report) Lines() []Line {
	return r.buf.lines
}

// Len returns the number of collected lines
func (r *Report) Len() int {
	return len(r.buf.lines)
}

// Find returns the field and hex lines carrying the given label
func (r *Report) Find(label string) []Line {
	var out []Line
	for _, l := range r.buf.lines {
		if (l.Kind == KindField || l.Kind == KindHex) && l.Label == label {
			out = append(out, l)
		}
	}
	return out
}

// Value returns the value of the first line with the given label
func (r *Report) Value(label string) (string, bool) {
	found := r.Find(label)
	if len(found) == 0 {
		return "", false
	}
	return found[0].Value, true
}

// Texts returns the text annotations emitted with the given color
func (r *Report) Texts(color Color) []string {
	var out []string
	for _, l := range r.buf.lines {
		if l.Kind == KindText && l.Color == color {
			out = append(out, l.Value)
		}
	}
	return out
}

// Dumped returns the concatenation of every raw dump in the report
func (r *Report) Dumped() []byte {
	var out []byte
	for _, l := range r.buf.lines {
		if l.Kind == KindDump {
			out = append(out, l.Data...)
		}
	}
	return out
}

// String renders the report as indented text
func (r *Report) String() string {
	var sb strings.Builder
	for _, l := range r.buf.lines {
		pad := strings.Repeat("  ", l.Depth)
		switch l.Kind {
		case KindField, KindHex:
			if l.Label == "" {
				fmt.Fprintf(&sb, "%s%s\n", pad, l.Value)
			} else {
				fmt.Fprintf(&sb, "%s%s: %s\n", pad, l.Label, l.Value)
			}
		case KindDump:
			for _, row := range strings.Split(strings.TrimRight(hex.Dump(l.Data), "\n"), "\n") {
				fmt.Fprintf(&sb, "%s%s\n", pad, row)
			}
		case KindText:
			fmt.Fprintf(&sb, "%s%s\n", pad, l.Value)
		}
	}
	return sb.String()
}

// Struct converts the report to a protobuf Struct of the form
// {"lines": [{"kind", "depth", "label", "value", "color"}...]}
func (r *Report) Struct() (*structpb.Struct, error) {
	lines := make([]interface{}, 0, len(r.buf.lines))
	for _, l := range r.buf.lines {
		entry := map[string]interface{}{
			"kind":  l.Kind.String(),
			"depth": float64(l.Depth),
		}
		if l.Label != "" {
			entry["label"] = l.Label
		}
		switch l.Kind {
		case KindDump:
			entry["value"] = hex.EncodeToString(l.Data)
		default:
			entry["value"] = l.Value
		}
		if l.Color != ColorNone {
			entry["color"] = string(l.Color)
		}
		lines = append(lines, entry)
	}
	return structpb.NewStruct(map[string]interface{}{"lines": lines})
}

// JSON renders the report on a single line with protojson. extra holds
// top-level fields written next to "lines"; values must be accepted by
// structpb.NewValue.
func (r *Report) JSON(extra map[string]interface{}) ([]byte, error) {
	s, err := r.Struct()
	if err != nil {
		return nil, err
	}
	for k, v := range extra {
		val, err := structpb.NewValue(v)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", k)
		}
		s.Fields[k] = val
	}
	return protojson.Marshal(s)
}
