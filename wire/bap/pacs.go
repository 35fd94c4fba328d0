package bap

import (
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
)

// pacCapabilities decodes Codec Specific Capabilities LTV records
var pacCapabilities = att.LTVTable{
	{Type: CapSamplingFrequencies, Decode: ltvValue(bits16("Sampling Frequencies", frequencyBits))},
	{Type: CapFrameDurations, Decode: ltvValue(bits8("Frame Duration", durationBits))},
	{Type: CapChannelCounts, Decode: ltvValue(bits8("Audio Channel Count", channelCountBits))},
	{Type: CapFrameLength, Decode: ltvValue(frameLengthRange)},
	{Type: CapMaxCodecFramesPerSDU, Decode: ltvValue(countHex8("Max SDU"))},
}

func bits16(label string, b att.Bitfield) field {
	return func(f *att.Frame, r report.Sink) bool {
		v, ok := f.LE16()
		if !ok {
			invalid(r, label)
			return false
		}
		r.Field(label, "0x%4.4x", v)
		b.Report(r.Indent(), uint32(v))
		return true
	}
}

func bits32(label string, b att.Bitfield) field {
	return func(f *att.Frame, r report.Sink) bool {
		v, ok := f.LE32()
		if !ok {
			invalid(r, label)
			return false
		}
		r.Field(label, "0x%8.8x", v)
		b.Report(r.Indent(), v)
		return true
	}
}

// countHex8 reports a one octet count in decimal and hex
func countHex8(label string) field {
	return func(f *att.Frame, r report.Sink) bool {
		v, ok := f.U8()
		if !ok {
			invalid(r, label)
			return false
		}
		r.Field(label, "%d (0x%2.2x)", v, v)
		return true
	}
}

func frameLengthRange(f *att.Frame, r report.Sink) bool {
	lo, ok := f.LE16()
	if !ok {
		invalid(r, "min")
		return false
	}
	hi, ok := f.LE16()
	if !ok {
		invalid(r, "max")
		return false
	}
	r.Field("Frame Length", "%d (0x%4.4x) - %d (0x%4.4x)", lo, lo, hi, hi)
	return true
}

var location = bits32("Location", locationBits)

// DecodePAC reports a Sink PAC or Source PAC value: a count of PAC records,
// each a Codec_ID, an LTV capability block and an LTV metadata block.
func DecodePAC(f *att.Frame, r report.Sink) {
	defer f.DumpRest(r)

	num, ok := f.U8()
	if !ok {
		invalid(r, "Number of PAC(s)")
		return
	}
	r.Field("Number of PAC(s)", "%d", num)

	for i := 0; i < int(num); i++ {
		r.Field("PAC", "#%d", i)
		entry := []field{
			codec,
			lv("Codec Specific Capabilities", pacCapabilities),
			lv("Metadata", nil),
		}
		if !run(f, r.Indent(), entry) {
			return
		}
	}
}

// DecodeLocation reports a Sink or Source Audio Locations value
func DecodeLocation(f *att.Frame, r report.Sink) {
	location(f, r)
	f.DumpRest(r)
}

// DecodeContexts reports an Available or Supported Audio Contexts value: the
// sink contexts followed by the source contexts.
func DecodeContexts(f *att.Frame, r report.Sink) {
	run(f, r, []field{
		bits16("Sink Context", contextBits),
		bits16("Source Context", contextBits),
	})
	f.DumpRest(r)
}
