package repository

import (
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingRepository interface {
	Create(meeting *model.Meeting) error
	FindAll() ([]model.Meeting, error)
	FindByID(id uuid.UUID) (*model.Meeting, error)
	Delete(id uuid.UUID) error
}

type meetingRepo struct {
	db *gorm.DB
}

func NewMeetingRepo(db *gorm.DB) MeetingRepository {
	return &meetingRepo{db}
}

func (r *meetingRepo) Create(meeting *model.Meeting) error {
	return r.db.Create(meeting).Error
}

// FindAll orders by scheduled start time, not creation time.
func (r *meetingRepo) FindAll() ([]model.Meeting, error) {
	var meetings []model.Meeting
	err := r.db.Order("start_time ASC").Find(&meetings).Error
	return meetings, err
}

func (r *meetingRepo) FindByID(id uuid.UUID) (*model.Meeting, error) {
	var meeting model.Meeting
	if err := r.db.First(&meeting, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (r *meetingRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Meeting{}, "id = ?", id).Error
}
