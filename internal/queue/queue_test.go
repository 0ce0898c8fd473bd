package queue_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/contentbatch/internal/content"
	"github.com/rshade/contentbatch/internal/queue"
)

func drafts(titles ...string) []content.Draft {
	out := make([]content.Draft, 0, len(titles))
	for _, t := range titles {
		out = append(out, content.Draft{Title: t, Type: "blog"})
	}
	return out
}

func TestMerge_PrependsInBatchOrder(t *testing.T) {
	q := queue.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first := q.Merge(drafts("old"), now)
	require.Len(t, first, 1)

	added := q.Merge(drafts("a", "b"), now.Add(time.Minute))
	require.Len(t, added, 2)

	items := q.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Title)
	assert.Equal(t, "b", items[1].Title)
	assert.Equal(t, "old", items[2].Title)

	for i, it := range added {
		assert.True(t, strings.HasPrefix(it.ID, "batch-"), it.ID)
		assert.True(t, strings.HasSuffix(it.ID, "-"+string(rune('0'+i))), it.ID)
		assert.Equal(t, content.StatusPending, it.Status)
		assert.Equal(t, now.Add(time.Minute), it.CreatedAt)
	}
	assert.NotEqual(t, first[0].ID, added[0].ID)
}

func TestMerge_Empty(t *testing.T) {
	q := queue.New()
	assert.Nil(t, q.Merge(nil, time.Now()))
	assert.Zero(t, q.Len())
}

func TestMerge_AutoApprove(t *testing.T) {
	q := queue.New(queue.WithAutoApprove(true))
	added := q.Merge(drafts("a"), time.Now())
	assert.Equal(t, content.StatusApproved, added[0].Status)
}

func TestApproveReject(t *testing.T) {
	q := queue.New()
	added := q.Merge(drafts("a", "b"), time.Now())

	require.NoError(t, q.Approve(added[0].ID))
	require.NoError(t, q.Reject(added[1].ID))

	it, ok := q.Get(added[0].ID)
	require.True(t, ok)
	assert.Equal(t, content.StatusApproved, it.Status)

	assert.ErrorIs(t, q.Reject(added[0].ID), queue.ErrInvalidTransition)
	assert.ErrorIs(t, q.Approve("missing"), queue.ErrItemNotFound)

	counts := q.Counts()
	assert.Equal(t, 1, counts[content.StatusApproved])
	assert.Equal(t, 1, counts[content.StatusRejected])
	assert.Zero(t, counts[content.StatusPending])
}

func TestItems_ReturnsCopy(t *testing.T) {
	q := queue.New()
	q.Merge(drafts("a"), time.Now())

	items := q.Items()
	items[0].Title = "changed"
	assert.Equal(t, "a", q.Items()[0].Title)
}
