package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records
// nothing, so components can treat metrics as optional.
type Metrics struct {
	registry *prometheus.Registry

	// IPC command metrics
	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec

	// Event stream metrics
	EventsTotal        *prometheus.CounterVec
	ListenerReconnects prometheus.Counter

	// Restoration metrics
	RestoreRuns    *prometheus.CounterVec
	RestoreWindows *prometheus.CounterVec

	// Snapshot metrics
	SnapshotsSaved  prometheus.Counter
	SnapshotWindows prometheus.Gauge
}

// NewMetrics creates a metrics collector backed by its own registry, so
// several collectors can coexist in one process (tests, embedded use).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyprsession_ipc_commands_total",
				Help: "Total number of commands sent to the compositor",
			},
			[]string{"op", "status"},
		),
		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hyprsession_ipc_command_duration_seconds",
				Help:    "Round trip time of compositor commands in seconds",
				Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"op"},
		),

		EventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyprsession_events_total",
				Help: "Total number of decoded compositor events",
			},
			[]string{"kind"},
		),
		ListenerReconnects: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "hyprsession_listener_reconnects_total",
				Help: "Total number of event socket reconnect attempts",
			},
		),

		RestoreRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyprsession_restore_runs_total",
				Help: "Total number of restoration runs",
			},
			[]string{"status"},
		),
		RestoreWindows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyprsession_restore_windows_total",
				Help: "Saved windows processed during restoration, by outcome",
			},
			[]string{"outcome"},
		),

		SnapshotsSaved: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "hyprsession_snapshots_saved_total",
				Help: "Total number of snapshots written",
			},
		),
		SnapshotWindows: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hyprsession_snapshot_windows",
				Help: "Number of windows in the most recently saved snapshot",
			},
		),
	}
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordCommand records one compositor command round trip.
func (m *Metrics) RecordCommand(op, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(op, status).Inc()
	m.CommandDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordEvent records one decoded event.
func (m *Metrics) RecordEvent(kind string) {
	if m == nil {
		return
	}
	m.EventsTotal.WithLabelValues(kind).Inc()
}

// IncReconnects increments the listener reconnect counter.
func (m *Metrics) IncReconnects() {
	if m == nil {
		return
	}
	m.ListenerReconnects.Inc()
}

// RecordRestoreRun records the final status of a restoration run.
func (m *Metrics) RecordRestoreRun(status string) {
	if m == nil {
		return
	}
	m.RestoreRuns.WithLabelValues(status).Inc()
}

// RecordRestoreWindow records the outcome for one saved window.
func (m *Metrics) RecordRestoreWindow(outcome string) {
	if m == nil {
		return
	}
	m.RestoreWindows.WithLabelValues(outcome).Inc()
}

// RecordSnapshotSaved records a written snapshot and its size.
func (m *Metrics) RecordSnapshotSaved(windows int) {
	if m == nil {
		return
	}
	m.SnapshotsSaved.Inc()
	m.SnapshotWindows.Set(float64(windows))
}
