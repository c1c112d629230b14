// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the counters tracking event traffic through the service.
// It owns a private registry so tests can create isolated instances without
// duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	eventsProcessed *prometheus.CounterVec
	eventsPublished *prometheus.CounterVec
}

// NewMetrics creates and registers the service collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	eventsProcessed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_events_processed_total",
		Help: "Total number of inbound bus events processed, by outcome",
	}, []string{"outcome"})

	eventsPublished := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_events_published_total",
		Help: "Total number of outbound bus publish attempts, by outcome",
	}, []string{"outcome"})

	registry.MustRegister(eventsProcessed, eventsPublished)

	return &Metrics{
		registry:        registry,
		eventsProcessed: eventsProcessed,
		eventsPublished: eventsPublished,
	}
}

// EventProcessed records one inbound event with the given outcome
// ("created", "rejected", "ignored" or "error").
func (m *Metrics) EventProcessed(outcome string) {
	m.eventsProcessed.WithLabelValues(outcome).Inc()
}

// EventPublished records one outbound publish attempt with the given
// outcome ("ok" or "error").
func (m *Metrics) EventPublished(outcome string) {
	m.eventsPublished.WithLabelValues(outcome).Inc()
}

// HTTPHandler serves the registry in the Prometheus exposition format.
func (m *Metrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
