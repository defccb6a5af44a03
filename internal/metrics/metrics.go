// Package metrics exposes Prometheus collectors for the sales API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec

	SalesCreatedTotal   prometheus.Counter
	SalesModifiedTotal  prometheus.Counter
	SalesCancelledTotal prometheus.Counter
	RuleRejectionsTotal prometheus.Counter
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"handler", "method", "status_code"},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"handler", "method", "status_code"},
		),
		SalesCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sales_created_total",
			Help: "Total number of sales created",
		}),
		SalesModifiedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sales_modified_total",
			Help: "Total number of sales modified",
		}),
		SalesCancelledTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sales_cancelled_total",
			Help: "Total number of sales cancelled",
		}),
		RuleRejectionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sales_rule_rejections_total",
			Help: "Total number of sales rejected by business rules",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) SaleCreated()   { m.SalesCreatedTotal.Inc() }
func (m *Metrics) SaleModified()  { m.SalesModifiedTotal.Inc() }
func (m *Metrics) SaleCancelled() { m.SalesCancelledTotal.Inc() }
func (m *Metrics) RuleRejected()  { m.RuleRejectionsTotal.Inc() }
