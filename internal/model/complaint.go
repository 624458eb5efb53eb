package model

import "time"

// Complaint priorities and statuses (closed sets).
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	ComplaintPending    = "pending"
	ComplaintInProgress = "in-progress"
	ComplaintResolved   = "resolved"
)

// Complaint is the one record type with a small state machine:
// pending -> in-progress -> resolved (reopening is allowed).
// ResolvedAt is derived: set exactly when status transitions into
// "resolved" and cleared when it transitions out, never settable directly.
type Complaint struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Description string `gorm:"type:text;not null" json:"description" validate:"required"`
	Location    string `gorm:"type:varchar(255);not null" json:"location" validate:"required"`
	Priority    string `gorm:"type:varchar(10);not null;default:'medium'" json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	Cost                 *int64     `json:"cost,omitempty"`
	ResolutionComment    string     `gorm:"type:text" json:"resolution_comment,omitempty"`
	ExpectedResolutionAt *time.Time `json:"expected_resolution_at,omitempty"`
	ResolvedAt           *time.Time `json:"resolved_at,omitempty"`
}

// IsValidComplaintStatus reports whether s is a known complaint status.
func IsValidComplaintStatus(s string) bool {
	return s == ComplaintPending || s == ComplaintInProgress || s == ComplaintResolved
}

// ComplaintStats is the per-status tally used by the dashboard cards.
type ComplaintStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}
