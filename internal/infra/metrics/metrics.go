// Package metrics provides Prometheus metrics for the dispatch pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "notifyd"

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// Handler exposes the registry in the Prometheus text format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// DispatchMetrics contains the Prometheus metrics of event dispatching.
type DispatchMetrics struct {
	eventsEnqueued  *prometheus.CounterVec // Accepted events by type
	eventOutcomes   *prometheus.CounterVec // Status transitions by category and status
	gatewayCalls    *prometheus.CounterVec // Gateway calls by result
	gatewayDuration prometheus.Histogram   // Gateway call latency
	gatewayDevices  *prometheus.CounterVec // Per-device delivery results
	devicesRevoked  *prometheus.CounterVec // Revoked devices by reason
	batchEvents     *prometheus.CounterVec // Events handled by batch runs by result
	batchDuration   prometheus.Histogram   // Batch run latency
	collectors      []prometheus.Collector
}

// NewDispatchMetrics creates the dispatch metrics and registers them.
func NewDispatchMetrics(registry prometheus.Registerer) (*DispatchMetrics, error) {
	m := &DispatchMetrics{}
	m.initMetrics()

	if err := registry.Register(m); err != nil {
		return nil, errors.Wrap(err, "failed to register dispatch metrics")
	}

	return m, nil
}

func (m *DispatchMetrics) initMetrics() {
	m.eventsEnqueued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_enqueued_total",
			Help:      "Total number of notification events accepted by event type",
		},
		[]string{"event_type"},
	)

	m.eventOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_outcomes_total",
			Help:      "Total number of event status transitions by category and status",
		},
		[]string{"category", "status"},
	)

	m.gatewayCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_calls_total",
			Help:      "Total number of push gateway calls by result",
		},
		[]string{"result"}, // result: success, error
	)

	m.gatewayDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_call_duration_seconds",
			Help:      "Time taken by push gateway calls",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		},
	)

	m.gatewayDevices = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_device_deliveries_total",
			Help:      "Total number of per-device push deliveries by result",
		},
		[]string{"result"}, // result: success, failed
	)

	m.devicesRevoked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "devices_revoked_total",
			Help:      "Total number of devices revoked by reason",
		},
		[]string{"reason"}, // reason: evicted, invalid_token, user
	)

	m.batchEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_events_total",
			Help:      "Total number of events handled by batch runs by result",
		},
		[]string{"result"}, // result: processed, failed
	)

	m.batchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Time taken by batch runs",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		},
	)

	m.collectors = []prometheus.Collector{
		m.eventsEnqueued,
		m.eventOutcomes,
		m.gatewayCalls,
		m.gatewayDuration,
		m.gatewayDevices,
		m.devicesRevoked,
		m.batchEvents,
		m.batchDuration,
	}
}

// Describe implements the prometheus.Collector interface.
func (m *DispatchMetrics) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range m.collectors {
		c.Describe(ch)
	}
}

// Collect implements the prometheus.Collector interface.
func (m *DispatchMetrics) Collect(ch chan<- prometheus.Metric) {
	for _, c := range m.collectors {
		c.Collect(ch)
	}
}

// EventEnqueued counts an accepted event.
func (m *DispatchMetrics) EventEnqueued(eventType string) {
	m.eventsEnqueued.WithLabelValues(eventType).Inc()
}

// EventOutcome counts an event reaching a status.
func (m *DispatchMetrics) EventOutcome(category, status string) {
	m.eventOutcomes.WithLabelValues(category, status).Inc()
}

// GatewayCall observes one push gateway call.
func (m *DispatchMetrics) GatewayCall(elapsed time.Duration, success, failed int, err error) {
	m.gatewayDuration.Observe(elapsed.Seconds())

	if err != nil {
		m.gatewayCalls.WithLabelValues("error").Inc()

		return
	}

	m.gatewayCalls.WithLabelValues("success").Inc()
	m.gatewayDevices.WithLabelValues("success").Add(float64(success))
	m.gatewayDevices.WithLabelValues("failed").Add(float64(failed))
}

// DevicesRevoked counts devices revoked for a reason.
func (m *DispatchMetrics) DevicesRevoked(reason string, count int) {
	if count <= 0 {
		return
	}

	m.devicesRevoked.WithLabelValues(reason).Add(float64(count))
}

// BatchCompleted observes one batch run.
func (m *DispatchMetrics) BatchCompleted(processed, failed int, elapsed time.Duration) {
	m.batchEvents.WithLabelValues("processed").Add(float64(processed))
	m.batchEvents.WithLabelValues("failed").Add(float64(failed))
	m.batchDuration.Observe(elapsed.Seconds())
}
