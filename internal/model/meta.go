package model

import "time"

// Meta is embedded by every KV-store record. IDs are client-generated
// millisecond timestamps, matching what the persistence layer assigns when a
// record is appended to its collection.
type Meta struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// StampNew assigns the identifier and creation timestamp. Called exactly
// once, by the collection, when the record is first persisted.
func (m *Meta) StampNew(id int64, at time.Time) {
	m.ID = id
	m.CreatedAt = at
}

// RecordID returns the assigned identifier, zero if not yet persisted.
func (m *Meta) RecordID() int64 {
	return m.ID
}
