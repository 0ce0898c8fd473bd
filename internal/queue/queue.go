// Package queue holds generated drafts awaiting review.
package queue

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/contentbatch/internal/content"
)

// ErrItemNotFound is returned when an item ID is not in the queue.
var ErrItemNotFound = errors.New("queue item not found")

// ErrInvalidTransition is returned when an item cannot move to the requested status.
var ErrInvalidTransition = errors.New("invalid status transition")

// Queue is an in-memory review queue, newest items first. It is safe for
// concurrent use.
type Queue struct {
	mu          sync.RWMutex
	items       []content.Item
	autoApprove bool
}

// Option configures a Queue.
type Option func(*Queue)

// WithAutoApprove approves merged items immediately instead of leaving them pending.
func WithAutoApprove(enabled bool) Option {
	return func(q *Queue) {
		q.autoApprove = enabled
	}
}

// New returns an empty queue.
func New(opts ...Option) *Queue {
	q := &Queue{}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Merge wraps drafts as queue items and prepends them, keeping the batch
// order. IDs are "batch-<ulid>-<index>". The new items are returned.
func (q *Queue) Merge(drafts []content.Draft, now time.Time) []content.Item {
	if len(drafts) == 0 {
		return nil
	}

	status := content.StatusPending
	if q.autoApprove {
		status = content.StatusApproved
	}

	batchID := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
	added := make([]content.Item, 0, len(drafts))
	for i, d := range drafts {
		added = append(added, content.Item{
			ID:        fmt.Sprintf("batch-%s-%d", batchID, i),
			Status:    status,
			CreatedAt: now,
			Draft:     d,
		})
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	merged := make([]content.Item, 0, len(added)+len(q.items))
	merged = append(merged, added...)
	q.items = append(merged, q.items...)

	out := make([]content.Item, len(added))
	copy(out, added)
	return out
}

// Approve marks a pending item approved.
func (q *Queue) Approve(id string) error {
	return q.transition(id, content.StatusApproved)
}

// Reject marks a pending item rejected.
func (q *Queue) Reject(id string) error {
	return q.transition(id, content.StatusRejected)
}

func (q *Queue) transition(id string, to content.Status) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.items {
		if q.items[i].ID != id {
			continue
		}
		from := q.items[i].Status
		if from != content.StatusPending && from != content.StatusDraft {
			return fmt.Errorf("%w: %s is %s", ErrInvalidTransition, id, from)
		}
		q.items[i].Status = to
		return nil
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// Get returns the item with id.
func (q *Queue) Get(id string) (content.Item, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	for _, it := range q.items {
		if it.ID == id {
			return it, true
		}
	}
	return content.Item{}, false
}

// Items returns a copy of the queue, newest first.
func (q *Queue) Items() []content.Item {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]content.Item, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of items.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.items)
}

// Counts returns the number of items per status.
func (q *Queue) Counts() map[content.Status]int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	counts := make(map[content.Status]int)
	for _, it := range q.items {
		counts[it.Status]++
	}
	return counts
}
