package splitwise

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DasULTRAS/splitwise-sdk/internal/constants"
)

// CacheKey identifies one cached GET result. The fields are kept structured
// rather than joined into a delimited string so endpoint or query text can
// never be confused with a separator.
type CacheKey struct {
	// Fingerprint is a one-way hash of the resolved token, so entries are
	// scoped per credential without storing the credential itself.
	Fingerprint string

	// Endpoint is the API path, e.g. "/get_groups".
	Endpoint string

	// Query is the canonical key-sorted encoding of the query parameters.
	Query string
}

// NewCacheKey builds a key from a token fingerprint, endpoint path and query
// parameters. Two logically identical requests produce the same key
// regardless of parameter insertion order; url.Values.Encode sorts by key.
func NewCacheKey(fingerprint, endpoint string, query url.Values) CacheKey {
	return CacheKey{
		Fingerprint: fingerprint,
		Endpoint:    endpoint,
		Query:       query.Encode(),
	}
}

// String renders the key for use where a flat identifier is required, such as
// the in-flight deduplication registry.
func (k CacheKey) String() string {
	return k.Fingerprint + "\x00" + k.Endpoint + "\x00" + k.Query
}

// TokenFingerprint returns a fixed-length hex digest of a credential.
func TokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// CacheEntry is one stored GET result.
type CacheEntry struct {
	Body       []byte
	StatusCode int
	Header     http.Header
	ExpiresAt  time.Time
}

// Expired reports whether the entry's TTL has elapsed.
func (e *CacheEntry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Cache stores GET responses keyed per token, endpoint and query.
type Cache interface {
	Get(key CacheKey) (*CacheEntry, bool)
	Set(key CacheKey, entry *CacheEntry)

	// Invalidate removes every entry whose endpoint equals prefix or lives
	// under prefix + "/". Matching is structural: invalidating "/get_group"
	// must not evict "/get_groups".
	Invalidate(endpointPrefix string)

	Clear()

	// Close stops background maintenance. Safe to call repeatedly.
	Close()
}

// CacheConfig tunes the response cache.
type CacheConfig struct {
	// Disabled turns response caching off entirely. Every lookup misses and
	// stores are dropped.
	Disabled bool

	// DefaultTTL is the entry lifetime when no override matches.
	DefaultTTL time.Duration

	// TTLOverrides maps endpoint-path prefixes to TTLs. The longest matching
	// prefix wins.
	TTLOverrides map[string]time.Duration

	// SweepInterval is how often expired entries are evicted in the
	// background. Zero uses the default; a negative value disables the sweep.
	SweepInterval time.Duration
}

// DefaultCacheConfig returns the cache defaults: enabled, five minute TTL,
// one minute sweep.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		DefaultTTL:    constants.DefaultCacheTTL,
		SweepInterval: constants.DefaultSweepInterval,
	}
}

type ttlOverride struct {
	prefix string
	ttl    time.Duration
}

// MemoryCache is the in-memory TTL cache used by the request pipeline. It is
// scoped to one client instance and safe for concurrent use. Entries are
// evicted lazily on read and proactively by a background sweep.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[CacheKey]*CacheEntry

	defaultTTL time.Duration
	overrides  []ttlOverride

	stopSweep chan struct{}
	closeOnce sync.Once
}

// NewMemoryCache creates a memory cache from configuration and starts its
// background sweep. A nil config uses DefaultCacheConfig.
func NewMemoryCache(config *CacheConfig) *MemoryCache {
	if config == nil {
		config = DefaultCacheConfig()
	}

	defaultTTL := config.DefaultTTL
	if defaultTTL == 0 {
		defaultTTL = constants.DefaultCacheTTL
	}

	overrides := make([]ttlOverride, 0, len(config.TTLOverrides))
	for prefix, ttl := range config.TTLOverrides {
		overrides = append(overrides, ttlOverride{prefix: prefix, ttl: ttl})
	}

	// Longest prefix first so the most specific override wins.
	sort.Slice(overrides, func(i, j int) bool {
		return len(overrides[i].prefix) > len(overrides[j].prefix)
	})

	cache := &MemoryCache{
		entries:    make(map[CacheKey]*CacheEntry),
		defaultTTL: defaultTTL,
		overrides:  overrides,
		stopSweep:  make(chan struct{}),
	}

	sweepInterval := config.SweepInterval
	if sweepInterval == 0 {
		sweepInterval = constants.DefaultSweepInterval
	}

	if sweepInterval > 0 {
		go cache.sweep(sweepInterval)
	}

	return cache
}

// Get returns the entry for key if present and unexpired. Expired entries are
// purged on read and reported as a miss.
func (c *MemoryCache) Get(key CacheKey) (*CacheEntry, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if entry.Expired(time.Now()) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have replaced it.
		if current, ok := c.entries[key]; ok && current.Expired(time.Now()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()

		return nil, false
	}

	return entry, true
}

// Set stores an entry under key with the TTL resolved from the key's
// endpoint. A zero or negative TTL produces an immediately expired entry.
func (c *MemoryCache) Set(key CacheKey, entry *CacheEntry) {
	entry.ExpiresAt = time.Now().Add(c.TTLFor(key.Endpoint))

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}

// TTLFor resolves the TTL for an endpoint: the longest matching configured
// prefix override, else the default.
func (c *MemoryCache) TTLFor(endpoint string) time.Duration {
	for _, override := range c.overrides {
		if strings.HasPrefix(endpoint, override.prefix) {
			return override.ttl
		}
	}

	return c.defaultTTL
}

// Invalidate removes every entry under the given endpoint prefix. Matching is
// structural, not substring containment.
func (c *MemoryCache) Invalidate(endpointPrefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if key.Endpoint == endpointPrefix || strings.HasPrefix(key.Endpoint, endpointPrefix+"/") {
			delete(c.entries, key)
		}
	}
}

// Clear empties the cache.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[CacheKey]*CacheEntry)
	c.mu.Unlock()
}

// Close stops the background sweep. Idempotent.
func (c *MemoryCache) Close() {
	c.closeOnce.Do(func() {
		close(c.stopSweep)
	})
}

// Len reports the current number of entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *MemoryCache) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()

			c.mu.Lock()
			for key, entry := range c.entries {
				if entry.Expired(now) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		case <-c.stopSweep:
			return
		}
	}
}

// NoOpCache is the cache used when caching is disabled: every lookup misses
// and stores are dropped.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(key CacheKey) (*CacheEntry, bool) { return nil, false }

func (c *NoOpCache) Set(key CacheKey, entry *CacheEntry) {}

func (c *NoOpCache) Invalidate(endpointPrefix string) {}

func (c *NoOpCache) Clear() {}

func (c *NoOpCache) Close() {}
