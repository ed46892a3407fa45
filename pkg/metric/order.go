package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Order = (*orderMetrics)(nil)

type orderMetrics struct {
	placedCounter   *prometheus.CounterVec
	rejectedCounter *prometheus.CounterVec
	totalHistogram  prometheus.Histogram
}

func newOrderMetrics(registry *promRegistry) *orderMetrics {
	placed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Total number of accepted orders by payment method",
		},
		[]string{"payment_method"},
	)

	rejected := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Total number of rejected checkout payloads by reason",
		},
		[]string{"reason"},
	)

	total := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_total_usd",
			Help:    "Accepted order totals in USD",
			Buckets: []float64{10, 25, 50, 100, 200, 500, 1000},
		},
	)

	registry.registry.MustRegister(placed, rejected, total)

	return &orderMetrics{
		placedCounter:   placed,
		rejectedCounter: rejected,
		totalHistogram:  total,
	}
}

func (m *orderMetrics) Placed(paymentMethod string) {
	m.placedCounter.WithLabelValues(paymentMethod).Add(1)
}

func (m *orderMetrics) Rejected(reason string) {
	m.rejectedCounter.WithLabelValues(reason).Add(1)
}

func (m *orderMetrics) ObserveTotal(total float64) {
	m.totalHistogram.Observe(total)
}
