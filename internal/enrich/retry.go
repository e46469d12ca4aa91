package enrich

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig controls backoff for transient lookup failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig keeps enrichment snappy: it runs in the background,
// so there is no point grinding on a dead endpoint.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 300 * time.Millisecond,
		MaxWait:     3 * time.Second,
		Multiplier:  2.0,
	}
}

// Do runs fn with exponential backoff and jitter until it succeeds, the
// attempts are exhausted, or the context ends.
func (cfg RetryConfig) Do(ctx context.Context, fn func() error) error {
	var lastErr error

	for attempt := range cfg.MaxAttempts {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		// Context errors are never retried.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		// Last attempt — don't sleep, just return the error.
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.backoff(attempt)):
		}
	}

	return lastErr
}

// backoff computes the wait duration for the given attempt, with ±20%
// jitter.
func (cfg RetryConfig) backoff(attempt int) time.Duration {
	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	if wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}

	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
