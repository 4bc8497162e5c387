package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters/histograms for the chat turn pipeline. All
// observe methods are nil-safe so wiring them is optional in tests.
type Metrics struct {
	turnsTotal        *prometheus.CounterVec
	completionLatency *prometheus.HistogramVec
	directoryRows     *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg, or on the default registerer
// when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctorai",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Processed chat turns by derived dialogue mode",
		}, []string{"mode"}),
		completionLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "doctorai",
			Subsystem: "chat",
			Name:      "completion_latency_seconds",
			Help:      "Latency of completion collaborator calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		directoryRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctorai",
			Subsystem: "directory",
			Name:      "rows_total",
			Help:      "Doctor registry rows seen by the loader",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.completionLatency, m.directoryRows)
	return m
}

// ObserveTurn counts a processed turn under its dialogue mode.
func (m *Metrics) ObserveTurn(mode string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(mode).Inc()
}

// ObserveCompletion records one completion call.
func (m *Metrics) ObserveCompletion(seconds float64, ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	m.completionLatency.WithLabelValues(status).Observe(seconds)
}

// ObserveDirectoryRow counts a registry row as loaded or dropped.
func (m *Metrics) ObserveDirectoryRow(ok bool) {
	if m == nil {
		return
	}
	outcome := "loaded"
	if !ok {
		outcome = "dropped"
	}
	m.directoryRows.WithLabelValues(outcome).Inc()
}
