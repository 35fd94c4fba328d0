package main

import (
	"encoding/hex"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/user/attmon/capture"
	"github.com/user/attmon/report"
)

func decode(c *cli.Context) error {
	format, err := outputFormat(c)
	if err != nil {
		return err
	}

	arg := strings.Join(c.Args(), "")
	arg = strings.NewReplacer(" ", "", ":", "", "0x", "").Replace(arg)
	data, err := hex.DecodeString(arg)
	if err != nil {
		return errors.Wrap(err, "invalid PDU")
	}
	if c.Uint("handle") > 0xffff || c.Uint("cid") > 0xffff {
		return errors.New("handle and cid are 16-bit values")
	}

	p := &capture.Packet{
		Time:    time.Now(),
		In:      c.Bool("in"),
		Handle:  uint16(c.Uint("handle")),
		Channel: uint16(c.Uint("cid")),
		Local:   c.String("local"),
		Peer:    c.String("peer"),
		Data:    data,
	}

	d := newDissector(nil)
	if p.Local != "" && p.Peer != "" {
		d.Conns().Open(p.Handle, p.Local, p.Peer)
	}

	r := report.New()
	d.Packet(p.Index, p.In, p.Handle, p.Channel, p.Data, r)
	if err := newPrinter(os.Stdout, format).Print(p, r); err != nil {
		return err
	}

	if path := c.String("save"); path != "" {
		return save(path, p)
	}
	return nil
}

// save appends the PDU to a capture, preceded by a connect record when the
// addresses are known
func save(path string, p *capture.Packet) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "open capture")
	}
	defer f.Close()

	w := capture.NewWriter(f)
	if p.Local != "" && p.Peer != "" {
		connect := &capture.Packet{
			Time:   p.Time,
			Event:  capture.EventConnect,
			Handle: p.Handle,
			Local:  p.Local,
			Peer:   p.Peer,
		}
		if err := w.Write(connect); err != nil {
			return err
		}
	}
	return w.Write(p)
}
