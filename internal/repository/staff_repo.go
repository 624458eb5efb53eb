package repository

import (
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(staff *model.Staff) error
	FindAll(branch string) ([]model.Staff, error)
	FindByID(id uuid.UUID) (*model.Staff, error)
	FindByStaffID(staffID string) (*model.Staff, error)
	FindByEmail(email string) (*model.Staff, error)
	Update(staff *model.Staff) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type staffRepo struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db}
}

func (r *staffRepo) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepo) FindAll(branch string) ([]model.Staff, error) {
	var staff []model.Staff
	q := r.db.Order("created_at DESC")
	if branch != "" {
		q = q.Where("branch = ?", branch)
	}
	err := q.Find(&staff).Error
	return staff, err
}

func (r *staffRepo) FindByID(id uuid.UUID) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.First(&staff, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) FindByStaffID(staffID string) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.First(&staff, "staff_id = ?", staffID).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) FindByEmail(email string) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.First(&staff, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) Update(staff *model.Staff) error {
	return r.db.Save(staff).Error
}

func (r *staffRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Staff{}, "id = ?", id).Error
}

func (r *staffRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Staff{}).Count(&count).Error
	return count, err
}
