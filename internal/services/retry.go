package services

import (
	"context"
	"log"
	"strings"
	"time"
)

// RetryConfig defines retry behavior for failed upstream requests
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig matches the service-wide policy: three attempts,
// 500ms initial delay, doubling per attempt.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    2,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      10 * time.Second,
		BackoffFactor: 2.0,
	}
}

// delayFor calculates the exponential backoff delay for an attempt
func (c RetryConfig) delayFor(attempt int) time.Duration {
	delay := c.InitialDelay
	for i := 0; i < attempt; i++ {
		delay = time.Duration(float64(delay) * c.BackoffFactor)
	}
	if delay > c.MaxDelay {
		delay = c.MaxDelay
	}
	return delay
}

// withRetries runs fn up to MaxRetries+1 times, sleeping with exponential
// backoff between attempts. Non-retryable errors abort immediately.
func withRetries(ctx context.Context, cfg RetryConfig, label string, retryable func(error) bool, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := cfg.delayFor(attempt - 1)
			log.Printf("[%s] Retry %d/%d after %v: %v", label, attempt, cfg.MaxRetries, delay, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if retryable != nil && !retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

// isTransientError classifies errors worth retrying by their message,
// used when the upstream client does not expose a status code.
func isTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	markers := []string{
		"timeout",
		"timed out",
		"temporar",
		"rate limit",
		"too many requests",
		"service unavailable",
		"status code: 429",
		"status code: 500",
		"status code: 502",
		"status code: 503",
		"status code: 504",
		"connection reset",
		"eof",
	}
	for _, marker := range markers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
