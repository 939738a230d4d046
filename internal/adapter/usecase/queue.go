package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"launchpro/internal/core/domain"
)

// LaunchQueue is the admission controller for the launch pipeline. It owns
// the FIFO of queued campaigns and the single "currently processing" slot, so
// at most one campaign runs its startup sequence at a time. All state lives
// behind one mutex; callers never see intermediate states.
//
// The queue is in-memory and rebuilt from the repository at startup, with
// campaigns.queued_at as the FIFO source of truth.
type LaunchQueue struct {
	mu      sync.Mutex
	entries []domain.QueueEntry
	busy    bool
	busyID  uuid.UUID
}

// NewLaunchQueue returns an empty admission queue.
func NewLaunchQueue() *LaunchQueue {
	return &LaunchQueue{}
}

// Enqueue appends the campaign to the FIFO and returns its entry with a
// 1-based position. Enqueuing an already-queued campaign is idempotent and
// returns the existing entry unchanged.
func (q *LaunchQueue) Enqueue(id uuid.UUID) domain.QueueEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.CampaignID == id {
			e.Position = i + 1
			return e
		}
	}
	entry := domain.QueueEntry{
		CampaignID: id,
		EnqueuedAt: time.Now(),
		Position:   len(q.entries) + 1,
	}
	q.entries = append(q.entries, entry)
	return entry
}

// Position returns the campaign's 1-based queue position, or 0 when it is
// not queued.
func (q *LaunchQueue) Position(id uuid.UUID) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.CampaignID == id {
			return i + 1
		}
	}
	return 0
}

// Advance returns the head of the FIFO and marks the processing slot busy.
// It returns false when the queue is empty or another campaign is already
// mid-startup (back-pressure). The slot stays held until Release or Requeue.
func (q *LaunchQueue) Advance() (uuid.UUID, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.busy || len(q.entries) == 0 {
		return uuid.Nil, false
	}
	head := q.entries[0]
	q.entries = q.entries[1:]
	q.busy = true
	q.busyID = head.CampaignID
	return head.CampaignID, true
}

// Release frees the processing slot once the campaign settled in a terminal
// or parked-resumable state handled outside the queue.
func (q *LaunchQueue) Release(id uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.busy && q.busyID == id {
		q.busy = false
		q.busyID = uuid.Nil
	}
}

// Requeue frees the processing slot and re-enters the campaign at the tail
// of the FIFO. Used when a campaign fails before any external side effect,
// so one broken campaign cannot starve the queue from the head.
func (q *LaunchQueue) Requeue(id uuid.UUID) domain.QueueEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.busy && q.busyID == id {
		q.busy = false
		q.busyID = uuid.Nil
	}
	for i, e := range q.entries {
		if e.CampaignID == id {
			e.Position = i + 1
			return e
		}
	}
	entry := domain.QueueEntry{
		CampaignID: id,
		EnqueuedAt: time.Now(),
		Position:   len(q.entries) + 1,
	}
	q.entries = append(q.entries, entry)
	return entry
}

// Withdraw removes a queued campaign from the FIFO without side effects.
// It reports whether the campaign was present.
func (q *LaunchQueue) Withdraw(id uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.CampaignID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// MarkBusy claims the processing slot for a campaign restored mid-pipeline
// after a restart.
func (q *LaunchQueue) MarkBusy(id uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.busy = true
	q.busyID = id
}

// Rebuild replaces the FIFO with entries restored from the repository.
// Entries must already be ordered by enqueue time.
func (q *LaunchQueue) Rebuild(entries []domain.QueueEntry) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = make([]domain.QueueEntry, len(entries))
	copy(q.entries, entries)
	for i := range q.entries {
		q.entries[i].Position = i + 1
	}
}

// Len returns the number of queued campaigns.
func (q *LaunchQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
