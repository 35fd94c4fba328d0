// Package monitor dissects ATT PDUs captured on an LE link into report lines.
//
// A Dissector is fed one PDU at a time from a single goroutine. It keeps the
// per-connection attribute databases and outstanding reads in the data slot
// of the connection store, so state lives exactly as long as the connection.
package monitor

import (
	"github.com/user/attmon/conn"
	"github.com/user/attmon/metrics"
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
	"github.com/user/attmon/wire/gatt"
)

// Options tune a Dissector
type Options struct {
	// MaxPendingReads caps the outstanding reads kept per connection. Zero
	// keeps every read until it is answered or the connection closes.
	MaxPendingReads int

	// Metrics receives counters. Nil disables them.
	Metrics *metrics.Metrics
}

// Dissector decodes ATT PDUs
type Dissector struct {
	conns      *conn.Store
	loader     gatt.Loader
	metrics    *metrics.Metrics
	maxPending int
}

// New creates a dissector over conns. loader provides attribute databases
// and may be nil, in which case handles are never resolved to types.
func New(conns *conn.Store, loader gatt.Loader, opts Options) *Dissector {
	if conns == nil {
		conns = conn.NewStore()
	}
	return &Dissector{
		conns:      conns,
		loader:     loader,
		metrics:    opts.Metrics,
		maxPending: opts.MaxPendingReads,
	}
}

// Conns returns the connection store the dissector reads from
func (d *Dissector) Conns() *conn.Store {
	return d.conns
}

// Packet dissects one ATT PDU received (in) or sent on channel cid of the
// connection handle. Everything it finds, malformed input included, is
// written to r.
func (d *Dissector) Packet(index uint16, in bool, handle, cid uint16, data []byte, r report.Sink) {
	if len(data) < 1 {
		r.Text(report.ColorError, "malformed attribute packet")
		r.HexDump(data)
		d.metrics.MalformedPacket("malformed attribute packet")
		return
	}

	code := data[0]
	params := data[1:]
	desc := lookupOpcode(code)

	color := report.ColorWarning
	name := "Unknown"
	if desc != nil {
		name = desc.Name()
		if desc.Decode != nil {
			color = report.ColorOut
			if in {
				color = report.ColorIn
			}
		}
	}
	r.Text(color, "ATT: %s (0x%2.2x) len %d", name, code, len(params))
	d.metrics.Packet(name, att.Class(code), len(params))

	body := r.Indent()
	if desc == nil || desc.Decode == nil {
		body.HexDump(params)
		return
	}

	if msg, ok := desc.check(len(params)); !ok {
		body.Text(report.ColorError, "%s", msg)
		body.HexDump(params)
		d.metrics.MalformedPacket(msg)
		return
	}

	desc.Decode(d, att.NewFrame(index, in, handle, cid, params), body)
}

// Close forgets the connection behind handle together with its attribute
// databases and outstanding reads
func (d *Dissector) Close(handle uint16) {
	d.conns.Close(handle)
}
