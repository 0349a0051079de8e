package http

import (
	"math/rand"
	"time"

	"github.com/DasULTRAS/splitwise-sdk/internal/constants"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// RetryConfig is the resolved retry policy for one client instance.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt. Zero
	// disables retrying entirely.
	MaxRetries int

	// BaseDelay seeds the full-jitter backoff window.
	BaseDelay time.Duration

	// MaxDelay caps every wait, including server-supplied hints.
	MaxDelay time.Duration
}

// DefaultRetryConfig returns the retry defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: constants.DefaultMaxRetries,
		BaseDelay:  constants.DefaultBaseDelay,
		MaxDelay:   constants.DefaultMaxDelay,
	}
}

// shouldRetry reports whether another attempt is warranted. Attempt indices
// start at zero for the first try.
func shouldRetry(err *splitwise.Error, attempt int, config RetryConfig) bool {
	return attempt < config.MaxRetries && err.Retryable
}

// computeDelay returns the wait before the next attempt.
//
// A server-supplied Retry-After hint is authoritative: the wait is exactly
// min(hint, MaxDelay) with no jitter, so the server's instruction is neither
// shortened randomly nor extended. Without a hint the wait is drawn uniformly
// from [0, min(BaseDelay * 2^attempt, MaxDelay)] — full jitter, which keeps
// many concurrent clients from retrying in lockstep.
func computeDelay(err *splitwise.Error, attempt int, config RetryConfig) time.Duration {
	if err.RetryAfter != nil {
		hint := *err.RetryAfter
		if hint > config.MaxDelay {
			hint = config.MaxDelay
		}

		if hint < 0 {
			hint = 0
		}

		return hint
	}

	window := config.MaxDelay

	// Guard the shift against overflow; beyond ~30 doublings the window is
	// capped anyway.
	if attempt < 31 {
		w := config.BaseDelay * (1 << uint(attempt))
		if w > 0 && w < window {
			window = w
		}
	}

	return time.Duration(rand.Float64() * float64(window))
}
