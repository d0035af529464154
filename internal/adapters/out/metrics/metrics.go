// Package metrics exposes prometheus collectors for the order lifecycle and the HTTP
// surface. Collectors register on an injected registry so tests and the process each
// get their own.
package metrics

import (
	"net/http"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pizzeria"

// Rebate kinds used as the "kind" label of the rebate counter.
const (
	RebatePineapple = "pineapple"
	RebateBundle    = "bundle"
)

// Lifecycle counts order transitions and what served orders were charged.
type Lifecycle struct {
	Transitions *prometheus.CounterVec
	Rebates     *prometheus.CounterVec
	Revenue     prometheus.Counter
}

func NewLifecycle(reg prometheus.Registerer) *Lifecycle {
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Order status transitions, by source and target status.",
	}, []string{"from", "to"})
	rebates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pricing",
		Name:      "rebates_total",
		Help:      "Sum of rebates granted on served orders, by kind.",
	}, []string{"kind"})
	revenue := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pricing",
		Name:      "revenue_total",
		Help:      "Sum of amounts charged for served orders.",
	})

	reg.MustRegister(transitions, rebates, revenue)
	return &Lifecycle{Transitions: transitions, Rebates: rebates, Revenue: revenue}
}

func (l *Lifecycle) OrderTransitioned(from, to order.Status) {
	l.Transitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (l *Lifecycle) OrderServed(quote services.Quote) {
	l.Rebates.WithLabelValues(RebatePineapple).Add(quote.PineappleRebate.InexactFloat64())
	l.Rebates.WithLabelValues(RebateBundle).Add(quote.BundleRebate.InexactFloat64())
	l.Revenue.Add(quote.Total.InexactFloat64())
}

// ServerMetrics counts HTTP requests per route and status and observes their latency.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	reg.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// RegisterTrackerSize exports the number of orders currently in preparation.
func RegisterTrackerSize(reg prometheus.Registerer, size func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "kitchen",
		Name:      "orders_in_preparation",
		Help:      "Orders currently tracked as being prepared.",
	}, func() float64 {
		return float64(size())
	}))
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
