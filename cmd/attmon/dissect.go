package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"

	"github.com/user/attmon/capture"
	"github.com/user/attmon/conn"
	"github.com/user/attmon/logger"
	"github.com/user/attmon/metrics"
	"github.com/user/attmon/monitor"
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/gatt"
)

func dissect(c *cli.Context) error {
	format, err := outputFormat(c)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if path := c.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "open capture")
		}
		defer f.Close()
		in = f
	}

	var m *metrics.Metrics
	addr := c.String("metrics-addr")
	if addr == "" && cfg.Metrics.Enabled {
		addr = cfg.Metrics.Address
	}
	if addr != "" {
		reg := prometheus.NewRegistry()
		m = metrics.New(reg)
		go serveMetrics(addr, reg)
	}

	d := newDissector(m)
	return run(d, capture.NewReader(in), newPrinter(os.Stdout, format))
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	logger.Info("metrics", "serving on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics", "server stopped: %v", err)
	}
}

// newDissector builds a dissector from the loaded configuration
func newDissector(m *metrics.Metrics) *monitor.Dissector {
	conns := conn.NewStore()
	for _, cc := range cfg.Connections {
		conns.Open(cc.Handle, cc.Local, cc.Peer)
	}
	return monitor.New(conns, gatt.NewFileStore(cfg.StorageDir), monitor.Options{
		MaxPendingReads: cfg.MaxPendingReads,
		Metrics:         m,
	})
}

// run feeds every record of the capture to the dissector. Records that
// cannot be parsed are logged and skipped.
func run(d *monitor.Dissector, rd *capture.Reader, out printer) error {
	var packets, skipped int
	for {
		p, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			switch errors.Cause(err) {
			case capture.ErrNotATT:
				logger.Debug("capture", "skipping %v", err)
			case capture.ErrMalformedRecord:
				logger.Warn("capture", "skipping %v", err)
			default:
				return err
			}
			skipped++
			continue
		}

		logger.DebugJSON("capture", fmt.Sprintf("record %d", rd.Line()), p.Record())

		switch p.Event {
		case capture.EventConnect:
			logger.Debug("capture", "connect 0x%04x %s -> %s", p.Handle, p.Local, p.Peer)
			d.Conns().Open(p.Handle, p.Local, p.Peer)
			continue
		case capture.EventDisconnect:
			logger.Debug("capture", "disconnect 0x%04x", p.Handle)
			d.Close(p.Handle)
			continue
		}

		r := report.New()
		d.Packet(p.Index, p.In, p.Handle, p.Channel, p.Data, r)
		if errs := r.Texts(report.ColorError); len(errs) > 0 {
			logger.Debug("report", "record %d: %s", rd.Line(), strings.Join(errs, "; "))
		}
		if raw := r.Dumped(); len(raw) > 0 {
			logger.Debug("report", "record %d: %d bytes left undecoded", rd.Line(), len(raw))
		}
		if logger.GetLevel() <= logger.TRACE {
			if s, err := r.Struct(); err == nil {
				logger.TraceJSON("report", fmt.Sprintf("record %d", rd.Line()), s)
			}
		}
		if err := out.Print(p, r); err != nil {
			return errors.Wrap(err, "write output")
		}
		packets++
	}

	logger.Info("capture", "%d packets dissected, %d records skipped", packets, skipped)
	return nil
}
