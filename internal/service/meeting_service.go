package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/validator"
)

var ErrMeetingNotFound = errors.New("meeting not found")

type MeetingService interface {
	Create(req *model.Meeting, actor string) error
	List() ([]model.Meeting, error)
	Delete(id uuid.UUID) error
}

type meetingService struct {
	repo repository.MeetingRepository
	hub  *ws.Hub
}

func NewMeetingService(repo repository.MeetingRepository, hub *ws.Hub) MeetingService {
	return &meetingService{repo: repo, hub: hub}
}

func (s *meetingService) Create(req *model.Meeting, actor string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validator.FirstError(errs)
	}
	if req.EndTime != nil && req.StartTime != nil && req.EndTime.Before(*req.StartTime) {
		return errors.New("end_time must not be before start_time")
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor
	if err := s.repo.Create(req); err != nil {
		return err
	}

	scope := req.Branch
	if scope == "" {
		scope = "all branches"
	}
	go s.hub.Publish("meetings", "insert", req.ID.String(),
		fmt.Sprintf("Meeting '%s' scheduled for %s", req.Title, scope))
	return nil
}

func (s *meetingService) List() ([]model.Meeting, error) {
	return s.repo.FindAll()
}

func (s *meetingService) Delete(id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return ErrMeetingNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	go s.hub.Publish("meetings", "delete", id.String(), "")
	return nil
}
