// Package metrics exposes dissector counters to Prometheus. Every method is
// safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the dissector
type Metrics struct {
	// PDU metrics
	Packets     *prometheus.CounterVec
	PacketBytes prometheus.Histogram
	Malformed   *prometheus.CounterVec

	// Read correlation metrics
	Correlations  *prometheus.CounterVec
	PendingReads  prometheus.Gauge
	EvictedReads  prometheus.Counter
	DatabaseLoads *prometheus.CounterVec
}

// New creates and registers all metrics with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Packets: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attmon_packets_total",
			Help: "Total number of ATT PDUs dissected",
		}, []string{"opcode", "class"}),
		PacketBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "attmon_packet_bytes",
			Help:    "Size of dissected ATT PDUs in bytes",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1B to 512B
		}),
		Malformed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attmon_malformed_total",
			Help: "Total number of PDUs rejected before decoding",
		}, []string{"reason"}),
		Correlations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attmon_read_correlations_total",
			Help: "Read responses paired (or not) with an outstanding read",
		}, []string{"result"}),
		PendingReads: factory.NewGauge(prometheus.GaugeOpts{
			Name: "attmon_pending_reads",
			Help: "Current number of outstanding reads across connections",
		}),
		EvictedReads: factory.NewCounter(prometheus.CounterOpts{
			Name: "attmon_pending_reads_evicted_total",
			Help: "Outstanding reads dropped because the queue was full",
		}),
		DatabaseLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attmon_attribute_db_loads_total",
			Help: "Attribute database load attempts",
		}, []string{"db", "result"}),
	}
}

// Packet counts one dissected PDU
func (m *Metrics) Packet(opcode, class string, size int) {
	if m == nil {
		return
	}
	m.Packets.WithLabelValues(opcode, class).Inc()
	m.PacketBytes.Observe(float64(size))
}

// MalformedPacket counts a PDU rejected with reason
func (m *Metrics) MalformedPacket(reason string) {
	if m == nil {
		return
	}
	m.Malformed.WithLabelValues(reason).Inc()
}

// ReadQueued records a new outstanding read
func (m *Metrics) ReadQueued() {
	if m == nil {
		return
	}
	m.PendingReads.Inc()
}

// ReadMatched records a response paired with an outstanding read
func (m *Metrics) ReadMatched() {
	if m == nil {
		return
	}
	m.Correlations.WithLabelValues("matched").Inc()
	m.PendingReads.Dec()
}

// ReadUnmatched records a response with no outstanding read
func (m *Metrics) ReadUnmatched() {
	if m == nil {
		return
	}
	m.Correlations.WithLabelValues("unmatched").Inc()
}

// ReadsDropped records n outstanding reads discarded. Evicted reads also
// count towards attmon_pending_reads_evicted_total.
func (m *Metrics) ReadsDropped(n int, evicted bool) {
	if m == nil || n == 0 {
		return
	}
	m.PendingReads.Sub(float64(n))
	if evicted {
		m.EvictedReads.Add(float64(n))
	}
}

// DatabaseLoad records an attribute database load attempt
func (m *Metrics) DatabaseLoad(db string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.DatabaseLoads.WithLabelValues(db, result).Inc()
}
