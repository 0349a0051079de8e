// Package http implements the request execution pipeline every API call
// passes through: token injection, retry with backoff, error classification,
// structured logging, TTL caching and in-flight deduplication.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/DasULTRAS/splitwise-sdk/internal/auth"
	"github.com/DasULTRAS/splitwise-sdk/internal/constants"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// Static errors for err113 compliance.
var (
	ErrNoContent = errors.New("response has no content")
)

// Request describes one logical API call handed to the pipeline.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	// InvalidatePrefixes lists resource-group endpoint prefixes whose cached
	// GET results are dropped after this call succeeds. Only meaningful on
	// mutating methods.
	InvalidatePrefixes []string
}

// Response is the outcome of a successful exchange.
type Response struct {
	StatusCode int
	Headers    nethttp.Header

	// Body is the raw response payload. Nil for 204 and empty bodies.
	Body []byte
}

// NoContent reports whether the exchange succeeded without a payload.
func (r *Response) NoContent() bool {
	return r.StatusCode == nethttp.StatusNoContent || len(r.Body) == 0
}

// JSON decodes the response body into v.
func (r *Response) JSON(v interface{}) error {
	if r.NoContent() {
		return ErrNoContent
	}

	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Client is the pipeline. It is safe for concurrent use; the cache and the
// in-flight registry are shared across all calls issued from one instance.
type Client struct {
	baseURL      string
	httpClient   *nethttp.Client
	tokenManager auth.TokenManager
	retry        RetryConfig

	cache        splitwise.Cache
	cacheEnabled bool
	cacheConfig  *splitwise.CacheConfig
	flight       singleflight.Group

	logger    splitwise.Logger
	debug     bool
	metrics   *splitwise.MetricsCollector
	userAgent string
}

// NewClient creates a pipeline client for the given API root. The token
// manager may be nil, in which case every call fails with an
// authentication-kind error.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	client := &Client{
		baseURL: baseURL,
		httpClient: &nethttp.Client{
			Timeout: constants.DefaultHTTPTimeout,
		},
		tokenManager: tokenManager,
		retry:        DefaultRetryConfig(),
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.cache == nil {
		config := client.cacheConfig
		if config == nil {
			config = splitwise.DefaultCacheConfig()
		}

		if config.Disabled {
			client.cache = splitwise.NewNoOpCache()
		} else {
			client.cache = splitwise.NewMemoryCache(config)
			client.cacheEnabled = true
		}
	}

	return client
}

// Get performs a cache-aware, deduplicated GET.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST, invalidating the given cache prefixes on success.
func (c *Client) Post(ctx context.Context, path string, body interface{}, invalidatePrefixes ...string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:             nethttp.MethodPost,
		Path:               path,
		Body:               body,
		InvalidatePrefixes: invalidatePrefixes,
	})
}

// Delete performs a DELETE, invalidating the given cache prefixes on success.
func (c *Client) Delete(ctx context.Context, path string, invalidatePrefixes ...string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:             nethttp.MethodDelete,
		Path:               path,
		InvalidatePrefixes: invalidatePrefixes,
	})
}

// Do executes one logical call end to end: resolve token, consult the cache,
// deduplicate, run the retry loop, classify, log, and write through or
// invalidate the cache.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	correlationID := uuid.NewString()
	start := time.Now()

	// The first resolution is pinned for the cache key so the key and the
	// auth header stay consistent within this call.
	token, err := auth.Resolve(ctx, c.tokenManager)
	if err != nil {
		authErr := splitwise.NewAuthenticationError(req.Path, correlationID, err)
		c.logFailure(req, correlationID, 0, time.Since(start), authErr)
		c.recordError(authErr, req)

		return nil, authErr
	}

	if req.Method == nethttp.MethodGet && c.cacheEnabled {
		return c.getCached(ctx, req, token, correlationID)
	}

	resp, err := c.execute(ctx, req, correlationID)
	if err != nil {
		return nil, err
	}

	for _, prefix := range req.InvalidatePrefixes {
		c.cache.Invalidate(prefix)
	}

	return resp, nil
}

// ClearCache drains the response cache. In-flight calls past their
// deduplication slot are unaffected.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

// Close stops background cache maintenance. Idempotent.
func (c *Client) Close() {
	c.cache.Close()
}

// getCached serves a GET from the cache when possible, otherwise coalesces
// concurrent identical calls onto a single network exchange and writes the
// result through.
func (c *Client) getCached(ctx context.Context, req *Request, token, correlationID string) (*Response, error) {
	key := splitwise.NewCacheKey(splitwise.TokenFingerprint(token), req.Path, req.Query)

	if entry, ok := c.cache.Get(key); ok {
		c.logDebug("cache hit", map[string]interface{}{
			"correlation_id": correlationID,
			"method":         req.Method,
			"endpoint":       req.Path,
		})

		if c.metrics != nil {
			c.metrics.RecordCacheHit(req.Path)
		}

		return &Response{
			StatusCode: entry.StatusCode,
			Headers:    entry.Header,
			Body:       entry.Body,
		}, nil
	}

	if c.metrics != nil {
		c.metrics.RecordCacheMiss(req.Path)
	}

	// The singleflight group is the in-flight registry: exactly one caller
	// per key performs the exchange, everyone else awaits its outcome. The
	// slot is released the instant the call settles, success or failure.
	value, err, shared := c.flight.Do(key.String(), func() (interface{}, error) {
		resp, execErr := c.execute(ctx, req, correlationID)
		if execErr != nil {
			return nil, execErr
		}

		c.cache.Set(key, &splitwise.CacheEntry{
			Body:       resp.Body,
			StatusCode: resp.StatusCode,
			Header:     resp.Headers,
		})

		return resp, nil
	})

	if shared {
		c.logDebug("deduplication hit", map[string]interface{}{
			"correlation_id": correlationID,
			"endpoint":       req.Path,
		})

		if c.metrics != nil {
			c.metrics.RecordDeduplicationHit(req.Path)
		}
	}

	if err != nil {
		return nil, err
	}

	resp, ok := value.(*Response)
	if !ok {
		return nil, fmt.Errorf("unexpected in-flight result type %T", value)
	}

	return resp, nil
}

// execute runs the attempt loop. Attempts are strictly sequential; attempt
// N+1 never begins before attempt N is classified and logged. Exhausting the
// retry budget surfaces the last observed error.
func (c *Client) execute(ctx context.Context, req *Request, correlationID string) (*Response, error) {
	for attempt := 0; ; attempt++ {
		attemptStart := time.Now()

		c.logDebug("request attempt", map[string]interface{}{
			"correlation_id": correlationID,
			"method":         req.Method,
			"endpoint":       req.Path,
			"attempt":        attempt,
		})

		resp, err := c.send(ctx, req, correlationID)
		duration := time.Since(attemptStart)

		if err == nil {
			c.logDebug("request succeeded", map[string]interface{}{
				"correlation_id": correlationID,
				"method":         req.Method,
				"endpoint":       req.Path,
				"attempt":        attempt,
				"status":         resp.StatusCode,
				"duration_ms":    duration.Milliseconds(),
			})

			if c.metrics != nil {
				c.metrics.RecordRequest(req.Method, req.Path, resp.StatusCode, duration)
			}

			return resp, nil
		}

		var apiErr *splitwise.Error
		if !errors.As(err, &apiErr) {
			// Request construction or body encoding failed; nothing was sent,
			// nothing to retry.
			return nil, err
		}

		apiErr.RetryCount = attempt

		c.logFailure(req, correlationID, attempt, duration, apiErr)
		c.recordError(apiErr, req)

		if c.metrics != nil {
			c.metrics.RecordRequest(req.Method, req.Path, apiErr.StatusCode, duration)
		}

		if !shouldRetry(apiErr, attempt, c.retry) {
			return nil, apiErr
		}

		delay := computeDelay(apiErr, attempt, c.retry)

		c.logDebug("scheduling retry", map[string]interface{}{
			"correlation_id": correlationID,
			"method":         req.Method,
			"endpoint":       req.Path,
			"attempt":        attempt + 1,
			"delay_ms":       delay.Milliseconds(),
		})

		if c.metrics != nil {
			c.metrics.RecordRetry(req.Method, req.Path)
		}

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			// The retry wait is interruptible; a caller-level timeout
			// surfaces the last classified error.
			timer.Stop()

			return nil, apiErr
		}
	}
}

// send performs a single HTTP exchange. The token is re-resolved on every
// attempt so rotating providers are honored across retries.
func (c *Client) send(ctx context.Context, req *Request, correlationID string) (*Response, error) {
	token, err := auth.Resolve(ctx, c.tokenManager)
	if err != nil {
		return nil, splitwise.NewAuthenticationError(req.Path, correlationID, err)
	}

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		data, marshalErr := json.Marshal(req.Body)
		if marshalErr != nil {
			return nil, fmt.Errorf("encoding request body: %w", marshalErr)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, splitwise.NewNetworkError(req.Path, correlationID, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, splitwise.NewNetworkError(req.Path, correlationID, err)
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		resp := &Response{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
		}

		if httpResp.StatusCode != nethttp.StatusNoContent && len(data) > 0 {
			resp.Body = data
		}

		return resp, nil
	}

	return nil, splitwise.Classify(
		httpResp.StatusCode,
		req.Path,
		correlationID,
		data,
		httpResp.Header.Get("Retry-After"),
	)
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.logger != nil && c.debug {
		c.logger.Debug(msg, fields)
	}
}

func (c *Client) logFailure(req *Request, correlationID string, attempt int, duration time.Duration, err *splitwise.Error) {
	if c.logger == nil {
		return
	}

	c.logger.Warn("request failed", map[string]interface{}{
		"correlation_id": correlationID,
		"method":         req.Method,
		"endpoint":       req.Path,
		"attempt":        attempt,
		"duration_ms":    duration.Milliseconds(),
		"error_kind":     string(err.Kind),
		"status":         err.StatusCode,
	})
}

func (c *Client) recordError(err *splitwise.Error, req *Request) {
	if c.metrics != nil {
		c.metrics.RecordError(err.Kind, req.Method, req.Path)
	}
}
