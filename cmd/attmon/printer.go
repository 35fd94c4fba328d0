package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/user/attmon/capture"
	"github.com/user/attmon/config"
	"github.com/user/attmon/report"
)

// printer writes dissected packets
type printer interface {
	Print(p *capture.Packet, r *report.Report) error
}

func newPrinter(w io.Writer, format string) printer {
	if format == config.OutputJSON {
		return &jsonPrinter{w: w}
	}
	return &textPrinter{w: w}
}

type textPrinter struct {
	w io.Writer
}

func (t *textPrinter) Print(p *capture.Packet, r *report.Report) error {
	dir := "<"
	if p.In {
		dir = ">"
	}
	stamp := ""
	if !p.Time.IsZero() {
		stamp = " " + p.Time.Format("15:04:05.000000")
	}
	if _, err := fmt.Fprintf(t.w, "%s ACL handle 0x%04x cid 0x%04x dlen %d%s\n",
		dir, p.Handle, p.Channel, len(p.Data), stamp); err != nil {
		return err
	}

	for _, line := range strings.SplitAfter(r.String(), "\n") {
		if line == "" {
			continue
		}
		if _, err := io.WriteString(t.w, "      "+line); err != nil {
			return err
		}
	}
	return nil
}

type jsonPrinter struct {
	w io.Writer
}

func (j *jsonPrinter) Print(p *capture.Packet, r *report.Report) error {
	direction := "tx"
	if p.In {
		direction = "rx"
	}
	extra := map[string]interface{}{
		"index":       int(p.Index),
		"direction":   direction,
		"conn_handle": int(p.Handle),
		"channel_id":  int(p.Channel),
	}
	if !p.Time.IsZero() {
		extra["timestamp"] = p.Time.Format(time.RFC3339Nano)
	}

	jsonBytes, err := r.JSON(extra)
	if err != nil {
		return errors.Wrap(err, "encode report")
	}
	_, err = j.w.Write(append(jsonBytes, '\n'))
	return err
}
