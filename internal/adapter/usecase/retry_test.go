package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"launchpro/internal/core/port"
)

func fastPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BackoffBase: time.Millisecond, BackoffCap: 5 * time.Millisecond}
}

func TestRetryRecoversFromTransientErrors(t *testing.T) {
	calls := 0
	attempts, err := retryCall(context.Background(), fastPolicy(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &port.ProviderError{Provider: "meta", Op: "create_campaign", StatusCode: 503, Message: "unavailable"}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestRetryStopsAtMaxAttempts(t *testing.T) {
	transient := &port.ProviderError{Provider: "meta", Op: "create_ad", StatusCode: 429, Message: "rate limited"}
	calls := 0
	attempts, err := retryCall(context.Background(), fastPolicy(), func(ctx context.Context) error {
		calls++
		return transient
	})
	if !errors.Is(err, transient) {
		t.Fatalf("expected the provider error, got %v", err)
	}
	if attempts != 3 || calls != 3 {
		t.Fatalf("expected 3 attempts, got attempts=%d calls=%d", attempts, calls)
	}
}

func TestRetryDoesNotRepeatNonRetryableErrors(t *testing.T) {
	badRequest := &port.ProviderError{Provider: "google", Op: "create_ad", StatusCode: 400, Message: "invalid creative"}
	calls := 0
	attempts, err := retryCall(context.Background(), fastPolicy(), func(ctx context.Context) error {
		calls++
		return badRequest
	})
	if !errors.Is(err, badRequest) {
		t.Fatalf("expected the provider error, got %v", err)
	}
	if attempts != 1 || calls != 1 {
		t.Fatalf("non-retryable error was retried: attempts=%d calls=%d", attempts, calls)
	}
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	transient := &port.ProviderError{Provider: "tiktok", Op: "upload_media", StatusCode: 500}

	policy := RetryPolicy{MaxAttempts: 5, BackoffBase: time.Minute}
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := retryCall(ctx, policy, func(ctx context.Context) error { return transient })
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("retry did not stop after cancellation")
	}
}

// A provider that never answers must be cut off by the per-call timeout
// instead of stalling the pipeline on the caller's context.
func TestProviderCallBoundsHungCalls(t *testing.T) {
	calls := 0
	err := providerCall(context.Background(), fastPolicy(), 5*time.Millisecond, func(ctx context.Context) error {
		calls++
		<-ctx.Done()
		return ctx.Err()
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	// The timeout is classified transient, so it is retried to exhaustion.
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestBackoffDoublesUpToCap(t *testing.T) {
	p := RetryPolicy{BackoffBase: time.Second, BackoffCap: 3 * time.Second}
	if got := p.backoff(1); got != time.Second {
		t.Fatalf("attempt 1: expected 1s, got %s", got)
	}
	if got := p.backoff(2); got != 2*time.Second {
		t.Fatalf("attempt 2: expected 2s, got %s", got)
	}
	if got := p.backoff(3); got != 3*time.Second {
		t.Fatalf("attempt 3: expected cap 3s, got %s", got)
	}
	if got := p.backoff(10); got != 3*time.Second {
		t.Fatalf("attempt 10: expected cap 3s, got %s", got)
	}
}
