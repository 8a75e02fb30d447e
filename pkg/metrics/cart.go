package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart engine activity.
type CartMetrics struct {
	adds       *prometheus.CounterVec
	rejections *prometheus.CounterVec
	orderValue prometheus.Histogram
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	adds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_adds_total",
		Help: "Products added to a cart, labelled by customer tier.",
	}, []string{"tier"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_rejections_total",
		Help: "Cart mutations refused, labelled by reason.",
	}, []string{"reason"})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_value_baht",
		Help:    "Value of submitted orders in baht.",
		Buckets: prometheus.ExponentialBuckets(1000, 4, 8),
	})
	reg.MustRegister(adds, rejections, orderValue)
	return &CartMetrics{
		adds:       adds,
		rejections: rejections,
		orderValue: orderValue,
	}
}

// IncAdd increments the add counter for the given tier.
func (m *CartMetrics) IncAdd(tier string) {
	if m == nil || m.adds == nil {
		return
	}
	m.adds.WithLabelValues(normalizeLabel(tier)).Inc()
}

// IncRejection increments the rejection counter for the given reason.
func (m *CartMetrics) IncRejection(reason string) {
	if m == nil || m.rejections == nil {
		return
	}
	m.rejections.WithLabelValues(normalizeLabel(reason)).Inc()
}

// ObserveOrderValue records the total of a submitted order.
func (m *CartMetrics) ObserveOrderValue(totalBaht int) {
	if m == nil || m.orderValue == nil {
		return
	}
	m.orderValue.Observe(float64(totalBaht))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
