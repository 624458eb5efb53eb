package repository

import (
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintRepository interface {
	Create(complaint *model.Complaint) error
	FindAll() ([]model.Complaint, error)
	FindByID(id uuid.UUID) (*model.Complaint, error)
	Update(complaint *model.Complaint) error
	CountByStatus() (*model.ComplaintStats, error)
}

type complaintRepo struct {
	db *gorm.DB
}

func NewComplaintRepo(db *gorm.DB) ComplaintRepository {
	return &complaintRepo{db}
}

func (r *complaintRepo) Create(complaint *model.Complaint) error {
	return r.db.Create(complaint).Error
}

func (r *complaintRepo) FindAll() ([]model.Complaint, error) {
	var complaints []model.Complaint
	err := r.db.Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

func (r *complaintRepo) FindByID(id uuid.UUID) (*model.Complaint, error) {
	var complaint model.Complaint
	if err := r.db.First(&complaint, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepo) Update(complaint *model.Complaint) error {
	return r.db.Save(complaint).Error
}

// CountByStatus tallies complaints per status for the dashboard cards.
func (r *complaintRepo) CountByStatus() (*model.ComplaintStats, error) {
	var stats model.ComplaintStats
	if err := r.db.Model(&model.Complaint{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	r.db.Model(&model.Complaint{}).Where("status = ?", model.ComplaintPending).Count(&stats.Pending)
	r.db.Model(&model.Complaint{}).Where("status = ?", model.ComplaintInProgress).Count(&stats.InProgress)
	r.db.Model(&model.Complaint{}).Where("status = ?", model.ComplaintResolved).Count(&stats.Resolved)
	return &stats, nil
}
