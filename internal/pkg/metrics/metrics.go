// Package metrics exposes the service's Prometheus instruments. Instruments
// are registered once on the default registry and shared by reference, so
// handlers and jobs receive a *Metrics instead of touching globals.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every instrument the service records.
type Metrics struct {
	// CheckoutsTotal counts checkout attempts by outcome (ok, error).
	CheckoutsTotal *prometheus.CounterVec

	// CheckoutDuration observes the checkout transaction latency.
	CheckoutDuration prometheus.Histogram

	// TransitionsAppliedTotal counts applied state transitions by target
	// state code.
	TransitionsAppliedTotal *prometheus.CounterVec

	// DeliveriesCompletedTotal counts finished deliveries.
	DeliveriesCompletedTotal prometheus.Counter

	// OrdersInState gauges how many orders currently sit in each state.
	// Refreshed periodically by the stats job.
	OrdersInState *prometheus.GaugeVec
}

// New registers the service's instruments on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the service's instruments on the given registerer.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CheckoutsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "compras_checkouts_total",
			Help: "Checkout attempts by outcome.",
		}, []string{"outcome"}),
		CheckoutDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "compras_checkout_duration_seconds",
			Help:    "Latency of the checkout transaction.",
			Buckets: prometheus.DefBuckets,
		}),
		TransitionsAppliedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "compras_transitions_applied_total",
			Help: "State transitions applied to orders, by target state.",
		}, []string{"to_state"}),
		DeliveriesCompletedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "compras_deliveries_completed_total",
			Help: "Deliveries finished by couriers.",
		}),
		OrdersInState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "compras_orders_in_state",
			Help: "Orders currently in each workflow state.",
		}, []string{"state"}),
	}
}
