package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/validator"
)

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrInvalidStatus     = errors.New("invalid complaint status")
	// ErrComplaintResolved rejects cost/comment edits once a complaint has
	// reached its terminal state.
	ErrComplaintResolved = errors.New("complaint is resolved; cost and comment are read-only")
)

type ComplaintService interface {
	Create(req *model.Complaint, actor string) error
	List() ([]model.Complaint, error)
	UpdateStatus(id uuid.UUID, req *ComplaintUpdate, actor string) (*model.Complaint, error)
	Stats() (*model.ComplaintStats, error)
}

// ComplaintUpdate carries a status transition and the optional resolution
// fields that may accompany it.
type ComplaintUpdate struct {
	Status               string     `json:"status" validate:"required"`
	Cost                 *int64     `json:"cost,omitempty"`
	ResolutionComment    *string    `json:"resolution_comment,omitempty"`
	ExpectedResolutionAt *time.Time `json:"expected_resolution_at,omitempty"`
}

type complaintService struct {
	repo repository.ComplaintRepository
	hub  *ws.Hub
	now  func() time.Time
}

func NewComplaintService(repo repository.ComplaintRepository, hub *ws.Hub) ComplaintService {
	return &complaintService{repo: repo, hub: hub, now: time.Now}
}

func (s *complaintService) Create(req *model.Complaint, actor string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validator.FirstError(errs)
	}

	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}
	// New complaints always start pending regardless of submitted status.
	req.Status = model.ComplaintPending
	req.ResolvedAt = nil
	req.CreatedBy = actor
	req.UpdatedBy = actor

	if err := s.repo.Create(req); err != nil {
		return err
	}

	go s.hub.Publish("complaints", "insert", req.ID.String(),
		fmt.Sprintf("New %s priority complaint: %s (%s)", req.Priority, req.Title, req.Location))
	return nil
}

func (s *complaintService) List() ([]model.Complaint, error) {
	return s.repo.FindAll()
}

// UpdateStatus applies a status transition. ResolvedAt is derived from the
// transition: set entering "resolved", cleared leaving it, untouched when
// the status does not change. Re-resolving an already resolved complaint is
// a no-op so the first resolution time is preserved.
func (s *complaintService) UpdateStatus(id uuid.UUID, req *ComplaintUpdate, actor string) (*model.Complaint, error) {
	if !model.IsValidComplaintStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	complaint, err := s.repo.FindByID(id)
	if err != nil {
		return nil, ErrComplaintNotFound
	}

	wasResolved := complaint.Status == model.ComplaintResolved
	nowResolved := req.Status == model.ComplaintResolved

	if wasResolved && nowResolved {
		if req.Cost != nil || req.ResolutionComment != nil {
			return nil, ErrComplaintResolved
		}
		// Idempotent: status and resolved_at already correct.
		return complaint, nil
	}

	complaint.Status = req.Status
	switch {
	case nowResolved && !wasResolved:
		at := s.now()
		complaint.ResolvedAt = &at
	case wasResolved && !nowResolved:
		complaint.ResolvedAt = nil
	}

	if req.Cost != nil {
		complaint.Cost = req.Cost
	}
	if req.ResolutionComment != nil {
		complaint.ResolutionComment = *req.ResolutionComment
	}
	if req.ExpectedResolutionAt != nil {
		complaint.ExpectedResolutionAt = req.ExpectedResolutionAt
	}
	complaint.UpdatedBy = actor

	if err := s.repo.Update(complaint); err != nil {
		return nil, err
	}

	go s.hub.Publish("complaints", "update", complaint.ID.String(),
		fmt.Sprintf("Complaint '%s' is now %s", complaint.Title, complaint.Status))
	return complaint, nil
}

func (s *complaintService) Stats() (*model.ComplaintStats, error) {
	return s.repo.CountByStatus()
}
