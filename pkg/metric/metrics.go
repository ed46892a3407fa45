package metric

import (
	"net/http"
	"time"
)

type (
	Factory interface {
		HTTP() HTTP
		Cache() Cache
		Order() Order
		Notification() Notification
		RateLimit() RateLimit
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	Cache interface {
		Hit(cacheName string)
		Miss(cacheName string)
		Eviction(cacheName string, reason string)
	}

	Order interface {
		Placed(paymentMethod string)
		Rejected(reason string)
		ObserveTotal(total float64)
	}

	Notification interface {
		Sent(channel string)
		Failed(channel string)
		ObserveDuration(channel string, duration time.Duration)
	}

	RateLimit interface {
		Limited(scope string)
	}
)
