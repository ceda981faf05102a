// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "checklist"

// Operation results recorded on OperationsTotal.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	OperationsTotal     *prometheus.CounterVec
	StoreChecklists     prometheus.Gauge
	StoreItems          prometheus.Gauge
	EventPublishLatency prometheus.Histogram
	EventErrors         *prometheus.CounterVec
	EventsPublished     *prometheus.CounterVec
}

var (
	defaultMetrics *Metrics
	defaultOnce    sync.Once
)

// Default returns the process-wide collectors registered on the default
// Prometheus registerer.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// New registers a fresh set of collectors on reg. Tests pass their own
// prometheus.NewRegistry() to avoid duplicate registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		OperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Checklist service operations by name and result",
		}, []string{"operation", "result"}),
		StoreChecklists: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_checklists",
			Help:      "Checklists currently held in the store",
		}),
		StoreItems: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_items",
			Help:      "Checklist items currently held in the store",
		}),
		EventPublishLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "event_publish_duration_seconds",
			Help:      "Time taken to publish events",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		EventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_errors_total",
			Help:      "Event publishing errors by stage",
		}, []string{"operation", "type"}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Published events by type",
		}, []string{"operation", "type"}),
	}
}

// ObserveStore is a memory.CommitHook that mirrors store sizes into gauges.
func (m *Metrics) ObserveStore(checklists, items int) {
	m.StoreChecklists.Set(float64(checklists))
	m.StoreItems.Set(float64(items))
}

// RecordOperation counts one service call. A nil receiver is a no-op.
func (m *Metrics) RecordOperation(operation string, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.OperationsTotal.WithLabelValues(operation, result).Inc()
}
