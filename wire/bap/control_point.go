package bap

import (
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
)

type aseCommand struct {
	name   string
	fields []field // one ASE entry
}

var aseID = u8("ASE ID")

var aseCommands = map[uint8]aseCommand{
	OpConfigCodec: {"Codec Configuration", []field{
		aseID,
		enum("Target Latency", targetLatency),
		bits8("PHY", phyBits),
		codec,
		lv("Codec Specific Configuration", aseConfiguration),
	}},
	OpConfigQoS: {"QoS Configuration", []field{
		aseID,
		u8("CIG ID"),
		u8("CIS ID"),
		u24("SDU Interval", "usec"),
		enum("Framing", framing),
		bits8("PHY", phyBits),
		u16("Max SDU"),
		u8("RTN"),
		u16("Max Transport Latency"),
		u24("Presentation Delay", "us"),
	}},
	OpEnable:         {"Enable", []field{aseID, lv("Metadata", nil)}},
	OpStartReady:     {"Receiver Start Ready", []field{aseID}},
	OpDisable:        {"Disable", []field{aseID}},
	OpStopReady:      {"Receiver Stop Ready", []field{aseID}},
	OpUpdateMetadata: {"Update Metadata", []field{aseID, lv("Metadata", nil)}},
	OpRelease:        {"Release", []field{aseID}},
}

var aseResponse = []field{
	aseID,
	enum("ASE Response Code", responseCodes),
	enum("ASE Response Reason", responseReasons),
}

// CommandName returns the display name of an ASE Control Point opcode
func CommandName(op uint8) string {
	if c, ok := aseCommands[op]; ok {
		return c.name
	}
	return "Reserved"
}

// DecodeControlPointCommand reports an ASE Control Point write
func DecodeControlPointCommand(f *att.Frame, r report.Sink) {
	decodeControlPoint(f, r, func(c aseCommand) []field { return c.fields })
}

// DecodeControlPointResponse reports an ASE Control Point notification
func DecodeControlPointResponse(f *att.Frame, r report.Sink) {
	decodeControlPoint(f, r, func(aseCommand) []field { return aseResponse })
}

// decodeControlPoint reports the opcode and entry count, then up to count
// entries. It stops early when the frame is exhausted or an entry is short.
func decodeControlPoint(f *att.Frame, r report.Sink, entry func(aseCommand) []field) {
	defer f.DumpRest(r)

	op, ok := f.U8()
	if !ok {
		invalid(r, "Opcode")
		return
	}
	num, ok := f.U8()
	if !ok {
		invalid(r, "Number of ASE(s)")
		return
	}

	r.Field("Opcode", "%s (0x%2.2x)", CommandName(op), op)
	cmd, ok := aseCommands[op]
	if !ok {
		return
	}
	r.Field("Number of ASE(s)", "%d", num)

	fields := entry(cmd)
	for i := 0; i < int(num) && f.Len() > 0; i++ {
		r.Field("ASE", "#%d", i)
		if !run(f, r.Indent(), fields) {
			return
		}
	}
}
