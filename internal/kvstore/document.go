package kvstore

import (
	"context"
	"encoding/json"
)

// GetDocument loads a single JSON document. ok is false when the key is
// absent; the zero value of T is returned in that case.
func GetDocument[T any](ctx context.Context, store Store, key string) (T, bool, error) {
	var doc T
	raw, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return doc, false, err
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return doc, false, err
	}
	return doc, true, nil
}

// PutDocument serializes and stores a single JSON document.
func PutDocument[T any](ctx context.Context, store Store, key string, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(raw))
}
