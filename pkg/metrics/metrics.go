// Package metrics provides observability for DocBridge using Prometheus
// metrics. It offers counters and histograms for configuration loading,
// reachability probes, and connection factory activity.
//
// # Overview
//
// The metrics package provides:
//   - Prometheus-compatible metrics collection
//   - Pre-defined metrics for configuration and probe operations
//   - Thread-safe metric recording
//   - Automatic metric registration
//
// # Basic Usage
//
//	// Record a successful configuration load
//	metrics.OptionsLoads.WithLabelValues("success").Inc()
//
//	// Track probe latency
//	timer := metrics.NewTimer("probe")
//	probeHost(url)
//	metrics.ProbeDuration.Observe(timer.Stop().Seconds())
//
// # Metric Types
//
// Counter: Monotonically increasing values (e.g., total probes attempted)
// Histogram: Distribution of values (e.g., probe latency)
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OptionsLoads counts configuration validation runs.
	// Labels: status (success/failure)
	//
	// Example:
	//	metrics.OptionsLoads.WithLabelValues("failure").Inc()
	OptionsLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docbridge_options_loads_total",
			Help: "Total number of configuration validation runs",
		},
		[]string{"status"},
	)

	// ProbeAttempts counts host reachability probes.
	// Labels: result (reachable/unreachable)
	ProbeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docbridge_probe_attempts_total",
			Help: "Total number of host reachability probes",
		},
		[]string{"result"},
	)

	// ProbeDuration tracks the distribution of probe round-trip times in
	// seconds. Buckets cover local sockets up to slow WAN hosts.
	ProbeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "docbridge_probe_duration_seconds",
			Help: "Reachability probe duration in seconds",
			Buckets: []float64{
				0.001, // 1ms - loopback
				0.01,  // 10ms - LAN
				0.05,  // 50ms - regional
				0.1,   // 100ms - WAN
				0.5,   // 500ms - slow WAN
				1,     // 1s
				2,     // 2s - near timeout
			},
		},
	)

	// FactoryRegistrations counts object factory registrations.
	// Labels: factory name
	FactoryRegistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docbridge_factory_registrations_total",
			Help: "Total number of object factory registrations",
		},
		[]string{"factory"},
	)

	// ConnectionsOpened counts connections handed out by object factories.
	// Labels: factory name, status (success/failure)
	ConnectionsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docbridge_connections_opened_total",
			Help: "Total number of engine connections opened",
		},
		[]string{"factory", "status"},
	)
)

// Timer provides a simple timing mechanism for measuring operation durations.
// It captures the start time on creation and calculates elapsed time on stop.
type Timer struct {
	start time.Time
	name  string
}

// NewTimer creates a new timer and starts timing immediately.
// The name parameter is for identification in logs or metrics.
//
// Example:
//
//	timer := metrics.NewTimer("probe")
//	probeHost(url)
//	duration := timer.Stop()
//	logger.Debug("probe done", zap.Duration("duration", duration))
func NewTimer(name string) *Timer {
	return &Timer{
		start: time.Now(),
		name:  name,
	}
}

// Stop stops the timer and returns the elapsed duration since creation.
// The timer can be stopped multiple times, each returning the total
// elapsed time since creation.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}
