package bap

import (
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
)

// aseConfiguration decodes Codec Specific Configuration LTV records
var aseConfiguration = att.LTVTable{
	{Type: CfgSamplingFrequency, Decode: ltvValue(rfuEnum("Sampling Frequency", samplingFrequencies))},
	{Type: CfgFrameDuration, Decode: ltvValue(rfuEnum("Frame Duration", frameDurations))},
	{Type: CfgChannelAllocation, Decode: ltvValue(location)},
	{Type: CfgFrameLength, Decode: ltvValue(countHex16("Frame Length"))},
	{Type: CfgFrameBlocks, Decode: ltvValue(countHex8("Frame Blocks per SDU"))},
}

func rfuEnum(label string, names map[uint8]string) field {
	return func(f *att.Frame, r report.Sink) bool {
		v, ok := f.U8()
		if !ok {
			invalid(r, label)
			return false
		}
		r.Field(label, "%s (0x%2.2x)", lookup(names, v, "RFU"), v)
		return true
	}
}

func countHex16(label string) field {
	return func(f *att.Frame, r report.Sink) bool {
		v, ok := f.LE16()
		if !ok {
			invalid(r, label)
			return false
		}
		r.Field(label, "%d (0x%4.4x)", v, v)
		return true
	}
}

var (
	codecConfigured = []field{
		enum("Framing", preferredFraming),
		bits8("PHY", preferredPHYBits),
		u8("RTN"),
		u16("Max Transport Latency"),
		u24("Presentation Delay Min", "us"),
		u24("Presentation Delay Max", "us"),
		u24("Preferred Presentation Delay Min", "us"),
		u24("Preferred Presentation Delay Max", "us"),
		codec,
		lv("Codec Specific Configuration", aseConfiguration),
	}

	qosConfigured = []field{
		u8("CIG ID"),
		u8("CIS ID"),
		u24("SDU Interval", "usec"),
		enum("Framing", framing),
		bits8("PHY", phyBits),
		u16("Max SDU"),
		u8("RTN"),
		u16("Max Transport Latency"),
		u24("Presentation Delay", "us"),
	}

	// Metadata is shown as raw LTV records
	metadataStatus = []field{
		u8("CIG ID"),
		u8("CIS ID"),
		lv("Metadata", nil),
	}
)

type aseState struct {
	name   string
	fields []field
}

var aseStates = map[uint8]aseState{
	StateIdle:            {"Idle", nil},
	StateCodecConfigured: {"Codec Configured", codecConfigured},
	StateQoSConfigured:   {"QoS Configured", qosConfigured},
	StateEnabling:        {"Enabling", metadataStatus},
	StateStreaming:       {"Streaming", metadataStatus},
	StateDisabling:       {"Disabling", metadataStatus},
	StateReleasing:       {"Releasing", nil},
}

// StateName returns the display name of an ASE state
func StateName(state uint8) string {
	if s, ok := aseStates[state]; ok {
		return s.name
	}
	return "Reserved"
}

// DecodeASEStatus reports a Sink ASE or Source ASE value: the ASE id, its
// state and the parameters that state carries. Decoding stops at the first
// missing field and any unread bytes are reported as Data.
func DecodeASEStatus(f *att.Frame, r report.Sink) {
	defer f.DumpRest(r)

	id, ok := f.U8()
	if !ok {
		invalid(r, "ASE ID")
		return
	}
	r.Field("ASE ID", "%d", id)

	state, ok := f.U8()
	if !ok {
		invalid(r, "ASE State")
		return
	}
	r.Field("State", "%s (0x%2.2x)", StateName(state), state)

	if s, ok := aseStates[state]; ok {
		run(f, r, s.fields)
	}
}
