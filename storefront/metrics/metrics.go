package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sport-store/storefront/order"
	"sport-store/storefront/types"
)

// Registry holds the storefront's Prometheus collectors on a private registry
type Registry struct {
	reg             *prometheus.Registry
	OrderEvents     *prometheus.CounterVec
	Checkouts       *prometheus.CounterVec
	CheckoutLatency prometheus.Histogram
	CatalogItems    prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_order_events_total",
		Help: "Order lifecycle events delivered, by event type.",
	}, []string{"event"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkouts_total",
		Help: "Checkout attempts, by outcome.",
	}, []string{"outcome"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_checkout_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	items := prometheus.NewGauge(prometheus.GaugeOpts{Name: "storefront_catalog_items"})

	r.MustRegister(events, checkouts, latency, items)
	return &Registry{
		reg:             r,
		OrderEvents:     events,
		Checkouts:       checkouts,
		CheckoutLatency: latency,
		CatalogItems:    items,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// OnOrderEvent counts every delivered order event
func (r *Registry) OnOrderEvent(_ context.Context, _ *order.Order, event types.EventType) error {
	r.OrderEvents.WithLabelValues(string(event)).Inc()
	return nil
}

// ObserveCheckout records the outcome and duration of one checkout
func (r *Registry) ObserveCheckout(passed bool, d time.Duration) {
	outcome := "halted"
	if passed {
		outcome = "completed"
	}
	r.Checkouts.WithLabelValues(outcome).Inc()
	r.CheckoutLatency.Observe(d.Seconds())
}
