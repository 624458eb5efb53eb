package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text"`
}

func (n *note) StampNew(id int64, at time.Time) {
	n.ID = id
	n.CreatedAt = at
}

func (n *note) RecordID() int64 {
	return n.ID
}

func newTestCollection() *Collection[note, *note] {
	return NewCollection[note, *note](NewMemoryStore(), "notes")
}

func TestCollectionAddAndList(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	first, err := c.Add(ctx, note{Text: "first"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := c.Add(ctx, note{Text: "second"})
	require.NoError(t, err)

	items, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Newest first
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, "second", items[0].Text)
	assert.Equal(t, first.ID, items[1].ID)
}

func TestCollectionEmptyKey(t *testing.T) {
	c := newTestCollection()

	items, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollectionSameMillisecondIDs(t *testing.T) {
	c := newTestCollection()
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }
	ctx := context.Background()

	a, err := c.Add(ctx, note{Text: "a"})
	require.NoError(t, err)
	b, err := c.Add(ctx, note{Text: "b"})
	require.NoError(t, err)

	assert.Equal(t, fixed.UnixMilli(), a.ID)
	assert.Equal(t, a.ID+1, b.ID)
}

func TestCollectionUpdate(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	saved, err := c.Add(ctx, note{Text: "draft"})
	require.NoError(t, err)

	updated, err := c.Update(ctx, saved.ID, func(n *note) error {
		n.Text = "final"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Text)
	assert.Equal(t, saved.CreatedAt.UnixMilli(), updated.CreatedAt.UnixMilli())

	items, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "final", items[0].Text)
}

func TestCollectionUpdateUnknownID(t *testing.T) {
	c := newTestCollection()

	_, err := c.Update(context.Background(), 42, func(n *note) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionDelete(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	saved, err := c.Add(ctx, note{Text: "gone"})
	require.NoError(t, err)
	kept, err := c.Add(ctx, note{Text: "kept"})
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, saved.ID))

	items, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ID)

	assert.ErrorIs(t, c.Delete(ctx, saved.ID), ErrNotFound)
}
