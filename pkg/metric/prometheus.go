package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Factory = (*prometheusFactory)(nil)

type prometheusFactory struct {
	registry     *promRegistry
	http         *httpMetrics
	cache        *cacheMetrics
	order        *orderMetrics
	notification *notificationMetrics
	rateLimit    *rateLimitMetrics
}

func NewFactory() Factory {
	registry := newPromRegistry()

	return &prometheusFactory{
		registry:     registry,
		http:         newHTTPMetrics(registry),
		cache:        newCacheMetrics(registry),
		order:        newOrderMetrics(registry),
		notification: newNotificationMetrics(registry),
		rateLimit:    newRateLimitMetrics(registry),
	}
}

func (f *prometheusFactory) HTTP() HTTP {
	return f.http
}

func (f *prometheusFactory) Cache() Cache {
	return f.cache
}

func (f *prometheusFactory) Order() Order {
	return f.order
}

func (f *prometheusFactory) Notification() Notification {
	return f.notification
}

func (f *prometheusFactory) RateLimit() RateLimit {
	return f.rateLimit
}

func (f *prometheusFactory) Handler() http.Handler {
	return promhttp.HandlerFor(f.registry.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		})
}

type promRegistry struct {
	registry *prometheus.Registry
}

func newPromRegistry() *promRegistry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &promRegistry{registry: reg}
}
