package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	_ Notification = (*notificationMetrics)(nil)
	_ RateLimit    = (*rateLimitMetrics)(nil)
)

type notificationMetrics struct {
	sentCounter       *prometheus.CounterVec
	failedCounter     *prometheus.CounterVec
	durationHistogram *prometheus.HistogramVec
}

func newNotificationMetrics(registry *promRegistry) *notificationMetrics {
	sent := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of delivered notifications by channel",
		},
		[]string{"channel"},
	)

	failed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_failed_total",
			Help: "Total number of failed notification attempts by channel",
		},
		[]string{"channel"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notification_duration_seconds",
			Help:    "Notification delivery duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"channel"},
	)

	registry.registry.MustRegister(sent, failed, duration)

	return &notificationMetrics{
		sentCounter:       sent,
		failedCounter:     failed,
		durationHistogram: duration,
	}
}

func (m *notificationMetrics) Sent(channel string) {
	m.sentCounter.WithLabelValues(channel).Add(1)
}

func (m *notificationMetrics) Failed(channel string) {
	m.failedCounter.WithLabelValues(channel).Add(1)
}

func (m *notificationMetrics) ObserveDuration(channel string, duration time.Duration) {
	m.durationHistogram.WithLabelValues(channel).Observe(duration.Seconds())
}

type rateLimitMetrics struct {
	limitedCounter *prometheus.CounterVec
}

func newRateLimitMetrics(registry *promRegistry) *rateLimitMetrics {
	limited := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Total number of rate limited requests by scope",
		},
		[]string{"scope"},
	)

	registry.registry.MustRegister(limited)

	return &rateLimitMetrics{limitedCounter: limited}
}

func (m *rateLimitMetrics) Limited(scope string) {
	m.limitedCounter.WithLabelValues(scope).Add(1)
}
