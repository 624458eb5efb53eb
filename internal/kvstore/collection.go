package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when an update or delete names an unknown record.
var ErrNotFound = errors.New("record not found")

// Record is implemented by every collection item via model.Meta.
type Record interface {
	StampNew(id int64, at time.Time)
	RecordID() int64
}

// Collection persists a whole record list as one JSON document under a
// single key, newest-first, re-serializing on every write. IDs are
// millisecond timestamps assigned on Add. The mutex only serializes
// read-modify-write within this process; concurrent writers in other
// processes race with last-write-wins semantics, by contract.
type Collection[T any, PT interface {
	*T
	Record
}] struct {
	store Store
	key   string
	mu    sync.Mutex
	now   func() time.Time
}

// NewCollection binds a collection to its storage key.
func NewCollection[T any, PT interface {
	*T
	Record
}](store Store, key string) *Collection[T, PT] {
	return &Collection[T, PT]{store: store, key: key, now: time.Now}
}

// List returns all records, newest-created-first. An absent key is an empty
// collection, not an error.
func (c *Collection[T, PT]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Add stamps the record with an identifier and creation timestamp, prepends
// it and persists the collection. The stored record is returned.
func (c *Collection[T, PT]) Add(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	now := c.now()
	id := now.UnixMilli()
	// Two adds in the same millisecond must not collide.
	if len(items) > 0 && PT(&items[0]).RecordID() >= id {
		id = PT(&items[0]).RecordID() + 1
	}
	PT(&item).StampNew(id, now)

	items = append([]T{item}, items...)
	if err := c.save(ctx, items); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Update applies mutate to the record with the given id and persists the
// collection. Returns ErrNotFound for unknown ids; an error from mutate
// aborts without writing.
func (c *Collection[T, PT]) Update(ctx context.Context, id int64, mutate func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			if err := mutate(&items[i]); err != nil {
				return zero, err
			}
			if err := c.save(ctx, items); err != nil {
				return zero, err
			}
			return items[i], nil
		}
	}
	return zero, ErrNotFound
}

// Delete removes the record with the given id. Returns ErrNotFound if no
// record matches.
func (c *Collection[T, PT]) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			found = true
			continue
		}
		kept = append(kept, items[i])
	}
	if !found {
		return ErrNotFound
	}
	return c.save(ctx, kept)
}

func (c *Collection[T, PT]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Collection[T, PT]) save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, string(raw))
}
