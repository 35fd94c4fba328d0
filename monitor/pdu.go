package monitor

import (
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
	"github.com/user/attmon/wire/gatt"
)

// Decoders below rely on the size rule of their opcode descriptor for the
// leading fixed fields and go through the frame for everything else.

func empty(d *Dissector, f *att.Frame, r report.Sink) {}

func errorResponse(d *Dissector, f *att.Frame, r report.Sink) {
	req, _ := f.U8()
	handle, _ := f.LE16()
	code, _ := f.U8()

	r.Field("", "%s (0x%2.2x)", att.OpcodeName(req), req)
	r.Field("Handle", "0x%4.4x", handle)
	r.Field("Error", "%s (0x%2.2x)", att.ErrorName(code), code)
}

func exchangeMTURequest(d *Dissector, f *att.Frame, r report.Sink) {
	mtu, _ := f.LE16()
	r.Field("Client RX MTU", "%d", mtu)
}

func exchangeMTUResponse(d *Dissector, f *att.Frame, r report.Sink) {
	mtu, _ := f.LE16()
	r.Field("Server RX MTU", "%d", mtu)
}

func printHandleRange(f *att.Frame, r report.Sink, label string) bool {
	start, ok := f.LE16()
	if !ok {
		return false
	}
	end, ok := f.LE16()
	if !ok {
		return false
	}
	r.Field(label, "0x%4.4x-0x%4.4x", start, end)
	return true
}

// printUUID reports a 16, 32 or 128-bit UUID. Any other length is dumped.
func printUUID(r report.Sink, label string, b []byte) {
	u := gatt.UUID(b)
	switch len(b) {
	case 2, 4, 16:
		r.Field(label, "%s (%s)", u.Name(), u)
	default:
		r.HexDump(b)
	}
}

func findInfoRequest(d *Dissector, f *att.Frame, r report.Sink) {
	printHandleRange(f, r, "Handle range")
}

var infoFormats = map[uint8]string{
	0x01: "UUID-16",
	0x02: "UUID-128",
}

func findInfoResponse(d *Dissector, f *att.Frame, r report.Sink) {
	format, _ := f.U8()
	name, ok := infoFormats[format]
	if !ok {
		name = "unknown"
	}
	r.Field("Format", "%s (0x%2.2x)", name, format)

	var size int
	switch format {
	case 0x01:
		size = 2
	case 0x02:
		size = 16
	}
	for size > 0 && f.Len() >= 2+size {
		handle, _ := f.LE16()
		u, _ := f.Pull(size)
		r.Field("Handle", "0x%4.4x", handle)
		printUUID(r, "UUID", u)
	}
	r.HexDump(f.Bytes())
}

func findByTypeValueRequest(d *Dissector, f *att.Frame, r report.Sink) {
	printHandleRange(f, r, "Handle range")
	typ, _ := f.LE16()
	value, _ := f.Pull(f.Len())
	printAttributeInfo(f.Sub(value), r, typ)
}

// printAttributeInfo reports a declaration value of the given type
func printAttributeInfo(f *att.Frame, r report.Sink, typ uint16) {
	r.Field("Attribute type", "%s (0x%4.4x)", gatt.UUID16Name(typ), typ)
	in := r.Indent()

	switch typ {
	case 0x2800, 0x2801:
		printUUID(in, "UUID", f.Bytes())
	case 0x2802:
		if f.Len() < 4 {
			in.HexField("Value", f.Bytes())
			return
		}
		printHandleRange(f, in, "Handle range")
		printUUID(in, "UUID", f.Bytes())
	case 0x2803:
		if f.Len() < 3 {
			in.HexField("Value", f.Bytes())
			return
		}
		props, _ := f.U8()
		handle, _ := f.LE16()
		in.Field("Properties", "0x%2.2x", props)
		gatt.PropertyBits.Report(in.Indent(), uint32(props))
		in.Field("Handle", "0x%4.4x", handle)
		printUUID(in, "UUID", f.Bytes())
	default:
		r.HexField("Value", f.Bytes())
	}
}

func findByTypeValueResponse(d *Dissector, f *att.Frame, r report.Sink) {
	for f.Len() >= 4 {
		printHandleRange(f, r, "Handle range")
	}
	r.HexDump(f.Bytes())
}

func readByTypeRequest(d *Dissector, f *att.Frame, r report.Sink) {
	printHandleRange(f, r, "Handle range")
	printUUID(r, "Attribute type", f.Bytes())
}

func entries(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

func readByTypeResponse(d *Dissector, f *att.Frame, r report.Sink) {
	length, _ := f.U8()
	r.Field("Attribute data length", "%d", length)

	// each entry is a handle followed by the value
	if length < 2 {
		r.HexDump(f.Bytes())
		return
	}
	count := f.Len() / int(length)
	r.Field("Attribute data list", "%d %s", count, entries(count))
	for f.Len() >= int(length) {
		handle, _ := f.LE16()
		value, _ := f.Pull(int(length) - 2)
		r.Field("Handle", "0x%4.4x", handle)
		r.HexField("Value", value)
	}
	r.HexDump(f.Bytes())
}

func readRequest(d *Dissector, f *att.Frame, r report.Sink) {
	handle, _ := f.LE16()
	attr := d.printHandle(f, r, handle, false)
	if attr == nil {
		return
	}

	h := handlerFor(attr.Type)
	if h == nil || h.Read == nil {
		return
	}
	data := d.existing(f.Handle)
	if data == nil {
		return
	}
	data.reads.Push(att.PendingRead{
		Handle:  attr.Handle,
		Type:    attr.Type,
		In:      f.In,
		Channel: f.Channel,
		Decode:  h.Read,
	})
	d.metrics.ReadQueued()
}

func readResponse(d *Dissector, f *att.Frame, r report.Sink) {
	r.HexField("Value", f.Bytes())

	data := d.existing(f.Handle)
	if data == nil {
		return
	}
	read, ok := data.reads.Match(f.In, f.Channel)
	if !ok {
		d.metrics.ReadUnmatched()
		return
	}
	d.metrics.ReadMatched()

	printAttribute(r, read.Handle, gatt.UUID(read.Type))
	read.Decode(f, r)
}

func readBlobRequest(d *Dissector, f *att.Frame, r report.Sink) {
	handle, _ := f.LE16()
	offset, _ := f.LE16()
	d.printHandle(f, r, handle, false)
	r.Field("Offset", "0x%4.4x", offset)
}

func readBlobResponse(d *Dissector, f *att.Frame, r report.Sink) {
	r.HexDump(f.Bytes())
}

func readMultipleRequest(d *Dissector, f *att.Frame, r report.Sink) {
	for f.Len() >= 2 {
		handle, _ := f.LE16()
		d.printHandle(f, r, handle, false)
	}
	r.HexDump(f.Bytes())
}

func readByGroupTypeRequest(d *Dissector, f *att.Frame, r report.Sink) {
	printHandleRange(f, r, "Handle range")
	printUUID(r, "Attribute group type", f.Bytes())
}

func readByGroupTypeResponse(d *Dissector, f *att.Frame, r report.Sink) {
	length, _ := f.U8()
	r.Field("Attribute data length", "%d", length)

	// each entry is a handle range followed by the group UUID
	if length < 4 {
		r.HexDump(f.Bytes())
		return
	}
	count := f.Len() / int(length)
	r.Field("Attribute group list", "%d %s", count, entries(count))
	for f.Len() >= int(length) {
		printHandleRange(f, r, "Handle range")
		u, _ := f.Pull(int(length) - 4)
		printUUID(r, "UUID", u)
	}
	r.HexDump(f.Bytes())
}

// printWrite reports the first n bytes of f as the value written to handle
// and hands them to the write decoder of the attribute type
func (d *Dissector) printWrite(f *att.Frame, r report.Sink, handle uint16, n int) {
	attr := d.printHandle(f, r, handle, false)
	if n > f.Len() {
		r.Indent().HexField("Data", f.Bytes())
		r.Text(report.ColorError, "invalid size")
		return
	}
	r.Indent().HexField("Data", f.Clone(n).Bytes())

	if attr == nil {
		return
	}
	if h := handlerFor(attr.Type); h != nil && h.Write != nil {
		h.Write(f.Clone(n), r)
	}
}

// printNotify is printWrite for values sent by a server
func (d *Dissector) printNotify(f *att.Frame, r report.Sink, handle uint16, n int) {
	attr := d.printHandle(f, r, handle, true)
	if n > f.Len() {
		r.Indent().HexField("Data", f.Bytes())
		r.Text(report.ColorError, "invalid size")
		return
	}
	r.Indent().HexField("Data", f.Clone(n).Bytes())

	if attr == nil {
		return
	}
	if h := handlerFor(attr.Type); h != nil && h.Notify != nil {
		h.Notify(f.Clone(n), r)
	}
}

func writeRequest(d *Dissector, f *att.Frame, r report.Sink) {
	handle, ok := f.LE16()
	if !ok {
		r.Text(report.ColorError, "invalid size")
		return
	}
	d.printWrite(f, r, handle, f.Len())
}

func writeCommand(d *Dissector, f *att.Frame, r report.Sink) {
	writeRequest(d, f, r)
}

func signedWriteCommand(d *Dissector, f *att.Frame, r report.Sink) {
	handle, ok := f.LE16()
	if !ok || f.Len() < att.SignatureLength {
		r.Text(report.ColorError, "invalid size")
		return
	}
	n := f.Len() - att.SignatureLength
	d.printWrite(f, r, handle, n)
	f.Pull(n)
	r.Indent().HexField("Signature", f.Bytes())
}

func prepareWriteRequest(d *Dissector, f *att.Frame, r report.Sink) {
	prepareWrite(d, f, r, false)
}

func prepareWriteResponse(d *Dissector, f *att.Frame, r report.Sink) {
	prepareWrite(d, f, r, true)
}

func prepareWrite(d *Dissector, f *att.Frame, r report.Sink, rsp bool) {
	handle, _ := f.LE16()
	offset, _ := f.LE16()
	d.printHandle(f, r, handle, rsp)
	r.Field("Offset", "0x%4.4x", offset)
	r.Indent().HexField("Data", f.Bytes())
}

var executeFlags = map[uint8]string{
	0x00: "Cancel all prepared writes",
	0x01: "Immediately write all pending values",
}

func executeWriteRequest(d *Dissector, f *att.Frame, r report.Sink) {
	flags, _ := f.U8()
	name, ok := executeFlags[flags]
	if !ok {
		name = "Unknown"
	}
	r.Field("Flags", "%s (0x%02x)", name, flags)
}

func handleValueNotification(d *Dissector, f *att.Frame, r report.Sink) {
	handle, _ := f.LE16()
	d.printNotify(f, r, handle, f.Len())
}

// multipleValues walks handle/length/value tuples, as carried by Read
// Multiple Variable Length responses and multiple value notifications
func multipleValues(d *Dissector, f *att.Frame, r report.Sink) {
	for f.Len() > 0 {
		if f.Len() < 4 {
			r.Text(report.ColorError, "invalid size")
			r.HexDump(f.Bytes())
			return
		}
		handle, _ := f.LE16()
		length, _ := f.LE16()
		r.Field("Length", "0x%4.4x", length)

		d.printNotify(f, r, handle, int(length))
		if _, ok := f.Pull(int(length)); !ok {
			return
		}
	}
}
