package port

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnknownPlatform is returned by the registry when no adapter is
// registered for the requested platform identifier.
var ErrUnknownPlatform = errors.New("unknown ad platform")

// ErrCampaignNotFound is returned by repositories and usecases when the
// requested campaign does not exist.
var ErrCampaignNotFound = errors.New("campaign not found")

// ValidationError reports bad caller input. It is never retried and is
// surfaced synchronously, before the campaign reaches the queue.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ProviderError is raised by provider adapters and carries an HTTP-status-like
// classification so callers can decide whether a retry can succeed.
// StatusCode follows HTTP semantics: 429 and 5xx are transient, other 4xx are
// provider-side rejections whose Message is surfaced verbatim.
type ProviderError struct {
	Provider   string
	Op         string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s failed (%d): %s", e.Provider, e.Op, e.StatusCode, e.Message)
}

// Transient reports whether retrying the same call may succeed.
func (e *ProviderError) Transient() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Retryable classifies an error per the launcher's retry policy: transient
// provider errors and per-call timeouts are retryable, everything else
// (validation errors, provider rejections, programming bugs) is not.
func Retryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Transient()
	}
	return errors.Is(err, context.DeadlineExceeded)
}
