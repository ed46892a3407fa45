package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/YDahdah/Nectar/pkg/cache"
	"github.com/YDahdah/Nectar/pkg/logger"

	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)  {}
func (nopLogger) Info(string, ...any)   {}
func (nopLogger) Warn(string, ...any)   {}
func (nopLogger) Error(string, ...any)  {}
func (nopLogger) Debugw(string, ...any) {}
func (nopLogger) Infow(string, ...any)  {}
func (nopLogger) Warnw(string, ...any)  {}
func (nopLogger) Errorw(string, ...any) {}
func (l nopLogger) Ctx(context.Context) logger.Logger {
	return l
}
func (l nopLogger) With(...any) logger.Logger {
	return l
}
func (nopLogger) WithRequestID(ctx context.Context, _ string) context.Context {
	return ctx
}
func (nopLogger) GenerateRequestID() string {
	return ""
}
func (nopLogger) GetRequestID(context.Context) string {
	return ""
}
func (nopLogger) LogAttrs(context.Context, logger.Level, string, ...logger.Attr) {}

type nopCacheMetrics struct{}

func (nopCacheMetrics) Hit(string)              {}
func (nopCacheMetrics) Miss(string)             {}
func (nopCacheMetrics) Eviction(string, string) {}

func newTestCache(t *testing.T, capacity int) *cache.LRUCache[string, int] {
	t.Helper()
	c, err := cache.NewLRUCache[string, int]("test", capacity, nopLogger{}, nopCacheMetrics{})
	require.NoError(t, err)
	return c
}

func TestNewLRUCache_InvalidCapacity(t *testing.T) {
	_, err := cache.NewLRUCache[string, int]("test", 0, nopLogger{}, nopCacheMetrics{})
	require.Error(t, err)

	_, err = cache.NewLRUCache[string, int]("test", -1, nopLogger{}, nopCacheMetrics{})
	require.Error(t, err)
}

func TestLRUCache_PutGet(t *testing.T) {
	c := newTestCache(t, 3)

	c.Put("a", 1, 0)
	c.Put("b", 2, 0)

	got, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, got)

	_, ok = c.Get("missing")
	require.False(t, ok)

	require.Equal(t, 2, c.Len())
	require.Equal(t, 3, c.Capacity())
}

func TestLRUCache_Overwrite(t *testing.T) {
	c := newTestCache(t, 2)

	c.Put("a", 1, 0)
	c.Put("a", 10, 0)

	got, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 10, got)
	require.Equal(t, 1, c.Len())
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newTestCache(t, 2)

	c.Put("a", 1, 0)
	c.Put("b", 2, 0)

	// touching "a" makes "b" the eviction candidate
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("c", 3, 0)

	_, ok = c.Get("b")
	require.False(t, ok)

	_, ok = c.Get("a")
	require.True(t, ok)
	_, ok = c.Get("c")
	require.True(t, ok)
}

func TestLRUCache_TTLExpiry(t *testing.T) {
	c := newTestCache(t, 2)

	c.Put("a", 1, 10*time.Millisecond)
	require.True(t, c.Has("a"))

	time.Sleep(20 * time.Millisecond)

	require.False(t, c.Has("a"))
	_, ok := c.Get("a")
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestLRUCache_ZeroTTLNeverExpires(t *testing.T) {
	c := newTestCache(t, 2)

	c.Put("a", 1, 0)
	time.Sleep(10 * time.Millisecond)

	require.True(t, c.Has("a"))
}

func TestLRUCache_Purge(t *testing.T) {
	c := newTestCache(t, 4)

	evicted := make(map[string]int)
	c.SetOnEvicted(func(key string, value int) {
		evicted[key] = value
	})

	c.Put("a", 1, 0)
	c.Put("b", 2, 0)
	c.Purge()

	require.Equal(t, 0, c.Len())
	require.Equal(t, map[string]int{"a": 1, "b": 2}, evicted)
}

func TestLRUCache_Cleanup(t *testing.T) {
	c := newTestCache(t, 4)

	c.Put("short", 1, 5*time.Millisecond)
	c.Put("long", 2, 0)

	c.StartCleanup(10 * time.Millisecond)
	defer c.StopCleanup()

	require.Eventually(t, func() bool {
		return c.Len() == 1
	}, 500*time.Millisecond, 10*time.Millisecond)

	require.True(t, c.Has("long"))
}
