package splitwise_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

func newTestCache(t *testing.T, config *splitwise.CacheConfig) *splitwise.MemoryCache {
	t.Helper()

	if config == nil {
		config = splitwise.DefaultCacheConfig()
	}

	// No background sweep in tests; expiry is exercised through reads.
	config.SweepInterval = -1

	cache := splitwise.NewMemoryCache(config)
	t.Cleanup(cache.Close)

	return cache
}

func TestCacheKey_OrderIndependence(t *testing.T) {
	t.Parallel()

	queryA := url.Values{}
	queryA.Set("limit", "20")
	queryA.Set("group_id", "7")

	queryB := url.Values{}
	queryB.Set("group_id", "7")
	queryB.Set("limit", "20")

	keyA := splitwise.NewCacheKey("fp", "/get_expenses", queryA)
	keyB := splitwise.NewCacheKey("fp", "/get_expenses", queryB)

	assert.Equal(t, keyA, keyB)
	assert.Equal(t, keyA.String(), keyB.String())
}

func TestCacheKey_TokenScoping(t *testing.T) {
	t.Parallel()

	keyA := splitwise.NewCacheKey(splitwise.TokenFingerprint("token-a"), "/get_groups", nil)
	keyB := splitwise.NewCacheKey(splitwise.TokenFingerprint("token-b"), "/get_groups", nil)

	assert.NotEqual(t, keyA, keyB)
}

func TestTokenFingerprint(t *testing.T) {
	t.Parallel()

	fp := splitwise.TokenFingerprint("secret-token")

	assert.Len(t, fp, 64)
	assert.NotContains(t, fp, "secret-token")
	assert.Equal(t, fp, splitwise.TokenFingerprint("secret-token"))
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t, nil)
	key := splitwise.NewCacheKey("fp", "/get_groups", nil)

	_, ok := cache.Get(key)
	assert.False(t, ok)

	cache.Set(key, &splitwise.CacheEntry{Body: []byte(`{"groups":[]}`), StatusCode: 200})

	entry, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"groups":[]}`), entry.Body)
	assert.Equal(t, 200, entry.StatusCode)
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t, &splitwise.CacheConfig{
		DefaultTTL: 20 * time.Millisecond,
	})
	key := splitwise.NewCacheKey("fp", "/get_groups", nil)

	cache.Set(key, &splitwise.CacheEntry{Body: []byte("x"), StatusCode: 200})

	_, ok := cache.Get(key)
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = cache.Get(key)
	assert.False(t, ok)
	// Expired entries are purged on read.
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_ZeroTTLExpiresImmediately(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t, &splitwise.CacheConfig{
		DefaultTTL: time.Minute,
		TTLOverrides: map[string]time.Duration{
			"/get_notifications": 0,
		},
	})
	key := splitwise.NewCacheKey("fp", "/get_notifications", nil)

	cache.Set(key, &splitwise.CacheEntry{Body: []byte("x"), StatusCode: 200})

	_, ok := cache.Get(key)
	assert.False(t, ok)
}

func TestMemoryCache_TTLFor(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t, &splitwise.CacheConfig{
		DefaultTTL: time.Minute,
		TTLOverrides: map[string]time.Duration{
			"/get_expenses":     10 * time.Second,
			"/get_expenses/123": time.Second,
			"/get_currencies":   time.Hour,
		},
	})

	tests := []struct {
		endpoint string
		want     time.Duration
	}{
		{"/get_expenses", 10 * time.Second},
		{"/get_expenses/999", 10 * time.Second},
		{"/get_expenses/123", time.Second},
		{"/get_currencies", time.Hour},
		{"/get_groups", time.Minute},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cache.TTLFor(tt.endpoint), "endpoint %s", tt.endpoint)
	}
}

func TestMemoryCache_Invalidate(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t, nil)

	group := splitwise.NewCacheKey("fp", "/get_group/7", nil)
	groups := splitwise.NewCacheKey("fp", "/get_groups", nil)
	currencies := splitwise.NewCacheKey("fp", "/get_currencies", nil)

	for _, key := range []splitwise.CacheKey{group, groups, currencies} {
		cache.Set(key, &splitwise.CacheEntry{Body: []byte("x"), StatusCode: 200})
	}

	// Structural matching: "/get_group" covers "/get_group/7" but must not
	// evict "/get_groups".
	cache.Invalidate("/get_group")

	_, ok := cache.Get(group)
	assert.False(t, ok)

	_, ok = cache.Get(groups)
	assert.True(t, ok)

	_, ok = cache.Get(currencies)
	assert.True(t, ok)
}

func TestMemoryCache_InvalidateExactMatch(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t, nil)
	key := splitwise.NewCacheKey("fp", "/get_expenses", nil)

	cache.Set(key, &splitwise.CacheEntry{Body: []byte("x"), StatusCode: 200})
	cache.Invalidate("/get_expenses")

	_, ok := cache.Get(key)
	assert.False(t, ok)
}

func TestMemoryCache_Clear(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t, nil)

	cache.Set(splitwise.NewCacheKey("fp", "/get_groups", nil), &splitwise.CacheEntry{StatusCode: 200})
	cache.Set(splitwise.NewCacheKey("fp", "/get_friends", nil), &splitwise.CacheEntry{StatusCode: 200})

	require.Equal(t, 2, cache.Len())

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_CloseIdempotent(t *testing.T) {
	t.Parallel()

	cache := splitwise.NewMemoryCache(nil)

	cache.Close()
	cache.Close()
}

func TestMemoryCache_BackgroundSweep(t *testing.T) {
	t.Parallel()

	cache := splitwise.NewMemoryCache(&splitwise.CacheConfig{
		DefaultTTL:    5 * time.Millisecond,
		SweepInterval: 10 * time.Millisecond,
	})
	t.Cleanup(cache.Close)

	cache.Set(splitwise.NewCacheKey("fp", "/get_groups", nil), &splitwise.CacheEntry{StatusCode: 200})

	assert.Eventually(t, func() bool {
		return cache.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := splitwise.NewNoOpCache()
	key := splitwise.NewCacheKey("fp", "/get_groups", nil)

	cache.Set(key, &splitwise.CacheEntry{StatusCode: 200})

	_, ok := cache.Get(key)
	assert.False(t, ok)

	cache.Invalidate("/get_groups")
	cache.Clear()
	cache.Close()
}
