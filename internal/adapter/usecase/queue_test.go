package usecase

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"launchpro/internal/core/domain"
)

func TestEnqueueAssignsFIFOPositions(t *testing.T) {
	q := NewLaunchQueue()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	if got := q.Enqueue(a).Position; got != 1 {
		t.Fatalf("expected position 1, got %d", got)
	}
	if got := q.Enqueue(b).Position; got != 2 {
		t.Fatalf("expected position 2, got %d", got)
	}
	if got := q.Enqueue(c).Position; got != 3 {
		t.Fatalf("expected position 3, got %d", got)
	}
}

func TestEnqueueIsIdempotent(t *testing.T) {
	q := NewLaunchQueue()

	id := uuid.New()
	q.Enqueue(id)
	q.Enqueue(uuid.New())

	if got := q.Enqueue(id).Position; got != 1 {
		t.Fatalf("re-enqueue moved the campaign: position %d", got)
	}
	if q.Len() != 2 {
		t.Fatalf("re-enqueue grew the queue: len %d", q.Len())
	}
}

func TestAdvanceHoldsProcessingSlot(t *testing.T) {
	q := NewLaunchQueue()

	a, b := uuid.New(), uuid.New()
	q.Enqueue(a)
	q.Enqueue(b)

	id, ok := q.Advance()
	if !ok || id != a {
		t.Fatalf("expected head %s, got %s (ok=%v)", a, id, ok)
	}
	if _, ok = q.Advance(); ok {
		t.Fatal("second advance succeeded while the slot was held")
	}

	q.Release(a)
	id, ok = q.Advance()
	if !ok || id != b {
		t.Fatalf("expected %s after release, got %s (ok=%v)", b, id, ok)
	}
}

func TestAdvanceAdmitsAtMostOneConcurrently(t *testing.T) {
	q := NewLaunchQueue()
	for i := 0; i < 50; i++ {
		q.Enqueue(uuid.New())
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := q.Advance(); ok {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != 1 {
		t.Fatalf("expected exactly one admission, got %d", admitted)
	}
}

func TestRequeueFreesSlotAndReentersAtTail(t *testing.T) {
	q := NewLaunchQueue()

	a, b := uuid.New(), uuid.New()
	q.Enqueue(a)
	q.Enqueue(b)

	id, _ := q.Advance()
	entry := q.Requeue(id)
	if entry.Position != 2 {
		t.Fatalf("expected tail position 2, got %d", entry.Position)
	}

	// Slot must be free again so the next head can start.
	next, ok := q.Advance()
	if !ok || next != b {
		t.Fatalf("expected %s at head after requeue, got %s (ok=%v)", b, next, ok)
	}
}

func TestWithdrawRenumbersRemaining(t *testing.T) {
	q := NewLaunchQueue()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	q.Enqueue(a)
	q.Enqueue(b)
	q.Enqueue(c)

	if !q.Withdraw(b) {
		t.Fatal("withdraw reported campaign missing")
	}
	if q.Withdraw(b) {
		t.Fatal("second withdraw reported success")
	}
	if got := q.Position(c); got != 2 {
		t.Fatalf("expected %s to move up to position 2, got %d", c, got)
	}
}

func TestRebuildRestoresOrder(t *testing.T) {
	q := NewLaunchQueue()
	q.Enqueue(uuid.New())

	a, b := uuid.New(), uuid.New()
	q.Rebuild([]domain.QueueEntry{
		{CampaignID: a},
		{CampaignID: b},
	})

	if q.Len() != 2 {
		t.Fatalf("expected 2 entries after rebuild, got %d", q.Len())
	}
	if got := q.Position(a); got != 1 {
		t.Fatalf("expected restored head at position 1, got %d", got)
	}
	if got := q.Position(b); got != 2 {
		t.Fatalf("expected restored tail at position 2, got %d", got)
	}
}
