package http

import (
	nethttp "net/http"
	"time"

	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// Option configures the pipeline client.
type Option func(*Client)

// WithLogger sets the structured logger for pipeline events.
func WithLogger(logger splitwise.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables per-attempt debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient overrides the underlying transport.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetryConfig overrides the retry policy. maxRetries is taken literally,
// so zero disables retrying; zero delays keep their defaults.
func WithRetryConfig(maxRetries int, baseDelay, maxDelay time.Duration) Option {
	return func(c *Client) {
		if maxRetries < 0 {
			maxRetries = 0
		}

		c.retry.MaxRetries = maxRetries

		if baseDelay > 0 {
			c.retry.BaseDelay = baseDelay
		}

		if maxDelay > 0 {
			c.retry.MaxDelay = maxDelay
		}
	}
}

// WithCacheConfig configures the response cache built at construction.
func WithCacheConfig(config *splitwise.CacheConfig) Option {
	return func(c *Client) {
		c.cacheConfig = config
	}
}

// WithCache injects a caller-owned cache implementation. The caller remains
// responsible for closing it.
func WithCache(cache splitwise.Cache) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheEnabled = true
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(metrics *splitwise.MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}
