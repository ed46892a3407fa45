package httpt_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	httpt "github.com/YDahdah/Nectar/internal/transport/http"
	"github.com/YDahdah/Nectar/pkg/logger"
	"github.com/YDahdah/Nectar/pkg/metric"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestLimiter(t *testing.T, checkoutMax int) *httpt.RateLimiter {
	t.Helper()

	cfg := testConfig()
	cfg.RateLimit.CheckoutMax = checkoutMax

	log := logger.Nop()
	metrics := metric.NewFactory()

	visits, err := httpt.NewVisitCache(cfg.RateLimit.CacheCapacity, log, metrics.Cache())
	require.NoError(t, err)

	return httpt.NewRateLimiter(visits, &cfg.RateLimit, log, metrics.RateLimit())
}

func TestRateLimiter_ConcurrentFirstRequestsShareOneWindow(t *testing.T) {
	const limit = 8

	limiter := newTestLimiter(t, limit)

	router := gin.New()
	router.GET("/ping", limiter.Checkout(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// All requests race on the very first hit for this client; exactly
	// `limit` of them may pass even when the counter is installed
	// concurrently.
	var allowed, limited atomic.Int64
	var g errgroup.Group
	for range 2 * limit {
		g.Go(func() error {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			router.ServeHTTP(rec, req)

			switch rec.Code {
			case http.StatusOK:
				allowed.Add(1)
			case http.StatusTooManyRequests:
				limited.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.EqualValues(t, limit, allowed.Load())
	require.EqualValues(t, limit, limited.Load())
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	limiter := newTestLimiter(t, 1)

	router := gin.New()
	router.GET("/ping", limiter.Checkout(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	hit := func() int {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		return rec.Code
	}

	require.Equal(t, http.StatusOK, hit())
	require.Equal(t, http.StatusTooManyRequests, hit())
}

func TestRateLimiter_ScopesAreIndependent(t *testing.T) {
	limiter := newTestLimiter(t, 1)

	router := gin.New()
	router.GET("/checkout", limiter.Checkout(), func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/newsletter", limiter.Newsletter(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(path string) int {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec.Code
	}

	require.Equal(t, http.StatusOK, hit("/checkout"))
	require.Equal(t, http.StatusTooManyRequests, hit("/checkout"))

	// Exhausting checkout must not consume the newsletter window.
	require.Equal(t, http.StatusOK, hit("/newsletter"))
}
