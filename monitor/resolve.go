package monitor

import (
	"fmt"

	"github.com/user/attmon/conn"
	"github.com/user/attmon/logger"
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
	"github.com/user/attmon/wire/gatt"
)

// connData is the dissector state attached to a connection
type connData struct {
	local  *gatt.AttributeDatabase // attributes served by this host
	remote *gatt.AttributeDatabase // attributes cached for the peer
	reads  *att.ReadTracker
}

// state returns the dissector state of the connection behind handle, creating
// it and loading the attribute databases as needed. It returns nil for
// connections the store does not know.
func (d *Dissector) state(handle uint16) *connData {
	c := d.conns.Get(handle)
	if c == nil {
		return nil
	}

	data, _ := c.Data().(*connData)
	if data == nil {
		data = d.newConnData(c)
		c.SetData(data, d.releaseConnData)
	}
	d.load(c, data)
	return data
}

// existing returns the dissector state of handle without creating or loading
// anything
func (d *Dissector) existing(handle uint16) *connData {
	c := d.conns.Get(handle)
	if c == nil {
		return nil
	}
	data, _ := c.Data().(*connData)
	return data
}

func (d *Dissector) newConnData(c *conn.Conn) *connData {
	data := &connData{
		local:  gatt.NewAttributeDatabase(),
		remote: gatt.NewAttributeDatabase(),
		reads:  att.NewReadTracker(d.maxPending),
	}
	data.reads.SetEvictCallback(func(p att.PendingRead) {
		logger.Warn(connPrefix(c), "dropping unanswered read of handle 0x%04x", p.Handle)
		d.metrics.ReadsDropped(1, true)
	})
	return data
}

func (d *Dissector) releaseConnData(v interface{}) {
	data, ok := v.(*connData)
	if !ok {
		return
	}
	d.metrics.ReadsDropped(data.reads.Len(), false)
	data.reads.Clear()
	data.local.Clear()
	data.remote.Clear()
}

// load fills whichever database is still empty
func (d *Dissector) load(c *conn.Conn, data *connData) {
	if d.loader == nil {
		return
	}
	if data.local.IsEmpty() {
		err := d.loader.Load(data.local, c.Local+"/attributes")
		d.loaded(c, "local", err)
	}
	if data.remote.IsEmpty() {
		err := d.loader.Load(data.remote, c.Local+"/cache/"+c.Peer)
		d.loaded(c, "remote", err)
	}
}

func (d *Dissector) loaded(c *conn.Conn, db string, err error) {
	d.metrics.DatabaseLoad(db, err)
	if err != nil {
		logger.Debug(connPrefix(c), "%s attribute db: %v", db, err)
	}
}

// attribute resolves handle for the frame. Requests travelling towards us
// address our own database and responses coming in describe the peer's; the
// other direction is the mirror image.
func (d *Dissector) attribute(f *att.Frame, handle uint16, rsp bool) *gatt.Attribute {
	data := d.state(f.Handle)
	if data == nil {
		return nil
	}

	db := data.local
	if f.In == rsp {
		db = data.remote
	}

	attr, err := db.GetAttribute(handle)
	if err != nil {
		return nil
	}
	return attr
}

// printHandle reports handle with its resolved type, if any
func (d *Dissector) printHandle(f *att.Frame, r report.Sink, handle uint16, rsp bool) *gatt.Attribute {
	attr := d.attribute(f, handle, rsp)
	if attr == nil {
		r.Field("Handle", "0x%4.4x", handle)
		return nil
	}
	printAttribute(r, attr.Handle, attr.Type)
	return attr
}

func printAttribute(r report.Sink, handle uint16, t gatt.UUID) {
	switch len(t) {
	case 2:
		v, _ := t.Short()
		r.Field("Handle", "0x%4.4x Type: %s (0x%4.4x)", handle, t.Name(), v)
	case 16:
		r.Field("Handle", "0x%4.4x Type: %s (%s)", handle, t.Name(), t)
	default:
		r.Field("Handle", "0x%4.4x", handle)
	}
}

func connPrefix(c *conn.Conn) string {
	return fmt.Sprintf("conn 0x%04x", c.Handle)
}
