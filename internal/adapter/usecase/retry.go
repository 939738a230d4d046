package usecase

import (
	"context"
	"time"

	"launchpro/internal/core/port"
)

// RetryPolicy bounds retries of external provider calls. Backoff grows
// exponentially from BackoffBase per attempt and is capped at BackoffCap.
type RetryPolicy struct {
	MaxAttempts int
	BackoffBase time.Duration
	BackoffCap  time.Duration
}

// DefaultRetryPolicy matches the shared-provider rate budget: three attempts
// with a one second base backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BackoffBase: time.Second,
		BackoffCap:  30 * time.Second,
	}
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	d := p.BackoffBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.BackoffCap > 0 && d >= p.BackoffCap {
			return p.BackoffCap
		}
	}
	return d
}

// retryCall runs fn up to p.MaxAttempts times, sleeping between attempts.
// Only errors classified retryable by port.Retryable are retried; a
// non-retryable error returns immediately since repeating a malformed
// request cannot succeed. The attempt count made is always returned.
func retryCall(ctx context.Context, p RetryPolicy, fn func(context.Context) error) (int, error) {
	max := p.MaxAttempts
	if max <= 0 {
		max = 1
	}

	var err error
	for attempt := 1; attempt <= max; attempt++ {
		err = fn(ctx)
		if err == nil {
			return attempt, nil
		}
		if !port.Retryable(err) || attempt == max {
			return attempt, err
		}

		timer := time.NewTimer(p.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempt, ctx.Err()
		case <-timer.C:
		}
	}
	return max, err
}

// providerCall runs one external provider call under the retry policy,
// bounding every attempt with its own timeout. A hung provider surfaces as
// context.DeadlineExceeded, which port.Retryable treats as transient.
func providerCall(ctx context.Context, p RetryPolicy, timeout time.Duration, fn func(context.Context) error) error {
	_, err := retryCall(ctx, p, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return fn(callCtx)
	})
	return err
}
