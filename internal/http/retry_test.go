package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

func TestShouldRetry(t *testing.T) {
	t.Parallel()

	config := RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Second}

	retryable := &splitwise.Error{Kind: splitwise.ErrorKindAPI, StatusCode: 503, Retryable: true}
	terminal := &splitwise.Error{Kind: splitwise.ErrorKindValidation, StatusCode: 400, Retryable: false}

	assert.True(t, shouldRetry(retryable, 0, config))
	assert.True(t, shouldRetry(retryable, 1, config))
	assert.False(t, shouldRetry(retryable, 2, config), "budget exhausted")
	assert.False(t, shouldRetry(terminal, 0, config), "terminal errors never retry")
	assert.False(t, shouldRetry(retryable, 0, RetryConfig{MaxRetries: 0}), "zero retries disables the loop")
}

func TestComputeDelay_RetryAfterHint(t *testing.T) {
	t.Parallel()

	config := RetryConfig{MaxRetries: 3, BaseDelay: 500 * time.Millisecond, MaxDelay: 30 * time.Second}

	t.Run("hint is used exactly without jitter", func(t *testing.T) {
		t.Parallel()

		hint := 7 * time.Second
		err := &splitwise.Error{Retryable: true, RetryAfter: &hint}

		for i := 0; i < 10; i++ {
			assert.Equal(t, 7*time.Second, computeDelay(err, 0, config))
		}
	})

	t.Run("hint is capped at max delay", func(t *testing.T) {
		t.Parallel()

		hint := 5 * time.Minute
		err := &splitwise.Error{Retryable: true, RetryAfter: &hint}

		assert.Equal(t, 30*time.Second, computeDelay(err, 0, config))
	})

	t.Run("zero hint waits nothing", func(t *testing.T) {
		t.Parallel()

		hint := time.Duration(0)
		err := &splitwise.Error{Retryable: true, RetryAfter: &hint}

		assert.Equal(t, time.Duration(0), computeDelay(err, 0, config))
	})
}

func TestComputeDelay_FullJitter(t *testing.T) {
	t.Parallel()

	config := RetryConfig{MaxRetries: 3, BaseDelay: 500 * time.Millisecond, MaxDelay: 30 * time.Second}
	err := &splitwise.Error{Retryable: true}

	tests := []struct {
		attempt int
		window  time.Duration
	}{
		{0, 500 * time.Millisecond},
		{1, time.Second},
		{2, 2 * time.Second},
		{10, 30 * time.Second}, // capped
		{40, 30 * time.Second}, // shift overflow guard
	}

	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			delay := computeDelay(err, tt.attempt, config)

			assert.GreaterOrEqual(t, delay, time.Duration(0))
			assert.LessOrEqual(t, delay, tt.window, "attempt %d", tt.attempt)
		}
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	t.Parallel()

	config := DefaultRetryConfig()

	assert.Equal(t, 3, config.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, config.BaseDelay)
	assert.Equal(t, 30*time.Second, config.MaxDelay)
}
