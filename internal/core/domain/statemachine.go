package domain

import "fmt"

// Status is the canonical lifecycle state of a campaign.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusQueued            Status = "queued"
	StatusValidating        Status = "validating"
	StatusAwaitingApproval  Status = "awaiting_article_approval"
	StatusGeneratingContent Status = "generating_content"
	StatusAwaitingDesign    Status = "awaiting_design"
	StatusReadyToLaunch     Status = "ready_to_launch"
	StatusLaunching         Status = "launching"
	StatusActive            Status = "active"
	StatusFailed            Status = "failed"
)

// Terminal reports whether s is an end state of the pipeline.
func (s Status) Terminal() bool {
	return s == StatusActive || s == StatusFailed
}

// Processing reports whether a campaign in this state occupies the single
// startup slot guarded by the admission queue.
func (s Status) Processing() bool {
	switch s {
	case StatusValidating, StatusAwaitingApproval, StatusGeneratingContent,
		StatusAwaitingDesign, StatusReadyToLaunch, StatusLaunching:
		return true
	}
	return false
}

// Event drives a campaign from one status to the next. Events are emitted by
// the orchestrator when a pipeline step completes; the state machine itself
// owns no timers.
type Event string

const (
	EventEnqueue         Event = "enqueue"
	EventWithdraw        Event = "withdraw"
	EventStart           Event = "start"
	EventRequeue         Event = "requeue"
	EventValidated       Event = "validated"
	EventArticlePending  Event = "article_pending"
	EventArticleApproved Event = "article_approved"
	EventDesignRequired  Event = "design_required"
	EventDesignComplete  Event = "design_complete"
	EventContentReady    Event = "content_ready"
	EventLaunch          Event = "launch"
	EventLaunched        Event = "launched"
	EventFail            Event = "fail"
)

// InvalidTransitionError is returned when an event is not legal in the
// campaign's current status.
type InvalidTransitionError struct {
	From  Status
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: event %q in status %q", e.Event, e.From)
}

// PreconditionError is returned when a guarded transition fires before its
// required data is in place. It names the first missing field.
type PreconditionError struct {
	Field string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: missing %s", e.Field)
}

// transitions is the allowed-transition table. EventFail is handled
// separately: it is legal from every non-terminal processing state.
var transitions = map[Status]map[Event]Status{
	StatusDraft: {
		EventEnqueue: StatusQueued,
	},
	StatusFailed: {
		EventEnqueue: StatusQueued,
	},
	StatusQueued: {
		EventStart:    StatusValidating,
		EventWithdraw: StatusDraft,
	},
	StatusValidating: {
		EventValidated: StatusGeneratingContent,
		EventRequeue:   StatusQueued,
	},
	StatusGeneratingContent: {
		EventArticlePending: StatusAwaitingApproval,
		EventDesignRequired: StatusAwaitingDesign,
		EventContentReady:   StatusReadyToLaunch,
	},
	StatusAwaitingApproval: {
		EventArticleApproved: StatusGeneratingContent,
	},
	StatusAwaitingDesign: {
		EventDesignComplete: StatusReadyToLaunch,
	},
	StatusReadyToLaunch: {
		EventLaunch: StatusLaunching,
	},
	StatusLaunching: {
		EventLaunched: StatusActive,
	},
}

// Transition validates event against the campaign's current status and
// returns the resulting status. The campaign is not mutated. Guarded
// transitions (entry into READY_TO_LAUNCH) additionally check that all
// required content is in place and return a PreconditionError naming the
// first missing field otherwise.
func Transition(c *Campaign, event Event) (Status, error) {
	if event == EventFail {
		if c.Status.Processing() || c.Status == StatusQueued {
			return StatusFailed, nil
		}
		return "", &InvalidTransitionError{From: c.Status, Event: event}
	}

	next, ok := transitions[c.Status][event]
	if !ok {
		return "", &InvalidTransitionError{From: c.Status, Event: event}
	}
	if next == StatusReadyToLaunch {
		if err := contentComplete(c); err != nil {
			return "", err
		}
	}
	return next, nil
}

// contentComplete guards entry into READY_TO_LAUNCH: message and keywords
// must be populated, and every launch with AI generation enabled needs at
// least one media artifact.
func contentComplete(c *Campaign) error {
	if c.Message == "" {
		return &PreconditionError{Field: "message"}
	}
	if len(c.Keywords) == 0 {
		return &PreconditionError{Field: "keywords"}
	}
	for _, l := range c.Launches {
		if l.GenerateWithAI && len(l.Media) == 0 {
			return &PreconditionError{Field: fmt.Sprintf("media for platform %s", l.Platform)}
		}
	}
	return nil
}
