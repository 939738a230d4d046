package domain

import (
	"time"

	"github.com/google/uuid"
)

// QueueEntry is the ephemeral ordering record for a queued campaign.
// Position is 1-based among all currently queued campaigns, FIFO by
// enqueue time.
type QueueEntry struct {
	CampaignID uuid.UUID
	EnqueuedAt time.Time
	Position   int
}
