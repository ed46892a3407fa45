package httpt

import (
	"net/http"
	"sync"
	"time"

	"github.com/YDahdah/Nectar/internal/config"
	"github.com/YDahdah/Nectar/pkg/cache"
	"github.com/YDahdah/Nectar/pkg/logger"
	"github.com/YDahdah/Nectar/pkg/metric"

	"github.com/gin-gonic/gin"
)

const (
	ScopeGlobal     = "global"
	ScopeCheckout   = "checkout"
	ScopeNewsletter = "newsletter"
)

type visit struct {
	mu    sync.Mutex
	count int
}

// RateLimiter enforces fixed per-IP windows on top of the TTL cache: the
// first request in a window creates the counter with the window as its
// TTL, expiry starts the next window. Eviction under memory pressure can
// reset a tail counter early, which only ever errs toward allowing.
type RateLimiter struct {
	visits    cache.Cache[string, *visit]
	installMu sync.Mutex
	cfg       *config.RateLimit
	log       logger.Logger
	metrics   metric.RateLimit
}

func NewRateLimiter(
	visits cache.Cache[string, *visit],
	cfg *config.RateLimit,
	log logger.Logger,
	metrics metric.RateLimit,
) *RateLimiter {
	return &RateLimiter{
		visits:  visits,
		cfg:     cfg,
		log:     log,
		metrics: metrics,
	}
}

// NewVisitCache builds the backing store for a RateLimiter.
func NewVisitCache(
	capacity int,
	log logger.Logger,
	metrics metric.Cache,
) (cache.Cache[string, *visit], error) {
	return cache.NewLRUCache[string, *visit]("rate_limit", capacity, log, metrics)
}

func (rl *RateLimiter) Global() gin.HandlerFunc {
	return rl.middleware(ScopeGlobal, rl.cfg.Max, rl.cfg.Window,
		"Too many requests from this IP, please try again later.")
}

func (rl *RateLimiter) Checkout() gin.HandlerFunc {
	return rl.middleware(ScopeCheckout, rl.cfg.CheckoutMax, rl.cfg.CheckoutWindow,
		"Too many checkout attempts. Please wait before trying again.")
}

func (rl *RateLimiter) Newsletter() gin.HandlerFunc {
	return rl.middleware(ScopeNewsletter, rl.cfg.NewsletterMax, rl.cfg.NewsletterWindow,
		"Too many signup attempts. Please try again later.")
}

func (rl *RateLimiter) middleware(
	scope string,
	limit int,
	window time.Duration,
	message string,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(scope, c.ClientIP(), limit, window) {
			rl.metrics.Limited(scope)
			rl.log.LogAttrs(c.Request.Context(), logger.WarnLevel, "rate limit exceeded",
				logger.String("scope", scope),
				logger.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   message,
			})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(scope, ip string, limit int, window time.Duration) bool {
	key := scope + ":" + ip

	v, ok := rl.visits.Get(key)
	if !ok {
		// Double-checked install so concurrent first requests share one
		// counter instead of each overwriting the other's.
		rl.installMu.Lock()
		if v, ok = rl.visits.Get(key); !ok {
			v = &visit{}
			rl.visits.Put(key, v, window)
		}
		rl.installMu.Unlock()
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.count++
	return v.count <= limit
}
