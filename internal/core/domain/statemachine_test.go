package domain

import (
	"errors"
	"testing"
)

// TestHappyPathTransitions walks the full launch pipeline and verifies each
// hop is accepted in order.
func TestHappyPathTransitions(t *testing.T) {
	c := &Campaign{
		Status:   StatusDraft,
		Message:  "message",
		Keywords: []string{"kw"},
	}

	steps := []struct {
		event Event
		want  Status
	}{
		{EventEnqueue, StatusQueued},
		{EventStart, StatusValidating},
		{EventValidated, StatusGeneratingContent},
		{EventContentReady, StatusReadyToLaunch},
		{EventLaunch, StatusLaunching},
		{EventLaunched, StatusActive},
	}
	for _, s := range steps {
		got, err := Transition(c, s.event)
		if err != nil {
			t.Fatalf("event %q in %q: %v", s.event, c.Status, err)
		}
		if got != s.want {
			t.Fatalf("event %q: got %q, want %q", s.event, got, s.want)
		}
		c.Status = got
	}
}

// TestNoSkips verifies status jumps outside the transition table are
// rejected.
func TestNoSkips(t *testing.T) {
	cases := []struct {
		from  Status
		event Event
	}{
		{StatusDraft, EventLaunch},
		{StatusQueued, EventLaunched},
		{StatusValidating, EventLaunch},
		{StatusGeneratingContent, EventLaunched},
		{StatusActive, EventLaunch},
		{StatusActive, EventFail},
		{StatusFailed, EventLaunched},
	}
	for _, tc := range cases {
		c := &Campaign{Status: tc.from}
		_, err := Transition(c, tc.event)
		var ite *InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("event %q in %q: expected InvalidTransitionError, got %v", tc.event, tc.from, err)
		}
	}
}

// TestFailedIsReentrant ensures a failed campaign may be re-enqueued.
func TestFailedIsReentrant(t *testing.T) {
	c := &Campaign{Status: StatusFailed}
	got, err := Transition(c, EventEnqueue)
	if err != nil {
		t.Fatalf("re-enqueue after failure: %v", err)
	}
	if got != StatusQueued {
		t.Fatalf("got %q, want %q", got, StatusQueued)
	}
}

// TestFailFromProcessingStates ensures EventFail is legal from every
// in-flight state and illegal once terminal.
func TestFailFromProcessingStates(t *testing.T) {
	for _, from := range []Status{
		StatusQueued, StatusValidating, StatusAwaitingApproval,
		StatusGeneratingContent, StatusAwaitingDesign,
		StatusReadyToLaunch, StatusLaunching,
	} {
		c := &Campaign{Status: from}
		got, err := Transition(c, EventFail)
		if err != nil {
			t.Fatalf("fail from %q: %v", from, err)
		}
		if got != StatusFailed {
			t.Fatalf("fail from %q: got %q", from, got)
		}
	}
}

// TestReadyGuardMissingMessage verifies the content guard names the missing
// field instead of silently advancing.
func TestReadyGuardMissingMessage(t *testing.T) {
	c := &Campaign{Status: StatusGeneratingContent, Keywords: []string{"kw"}}
	_, err := Transition(c, EventContentReady)
	var pe *PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if pe.Field != "message" {
		t.Fatalf("got field %q, want message", pe.Field)
	}
}

// TestReadyGuardMissingMedia verifies an AI-enabled launch without media
// blocks READY_TO_LAUNCH, including via the design-complete path.
func TestReadyGuardMissingMedia(t *testing.T) {
	c := &Campaign{
		Status:   StatusAwaitingDesign,
		Message:  "m",
		Keywords: []string{"kw"},
		Launches: []PlatformLaunch{
			{Platform: "meta", GenerateWithAI: true},
		},
	}
	_, err := Transition(c, EventDesignComplete)
	var pe *PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}

	c.Launches[0].Media = []MediaAsset{{Kind: MediaImage, URL: "https://cdn/img.png"}}
	got, err := Transition(c, EventDesignComplete)
	if err != nil {
		t.Fatalf("design complete with media: %v", err)
	}
	if got != StatusReadyToLaunch {
		t.Fatalf("got %q, want %q", got, StatusReadyToLaunch)
	}
}

// TestApprovalRoundTrip covers the pending-approval side branch.
func TestApprovalRoundTrip(t *testing.T) {
	c := &Campaign{Status: StatusGeneratingContent}
	got, err := Transition(c, EventArticlePending)
	if err != nil || got != StatusAwaitingApproval {
		t.Fatalf("article pending: got %q, %v", got, err)
	}
	c.Status = got
	got, err = Transition(c, EventArticleApproved)
	if err != nil || got != StatusGeneratingContent {
		t.Fatalf("article approved: got %q, %v", got, err)
	}
}
