package repository

import (
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.Student) error
	FindAll(branch string) ([]model.Student, error)
	FindByID(id uuid.UUID) (*model.Student, error)
	FindByStudentID(studentID string) (*model.Student, error)
	FindByEmail(email string) (*model.Student, error)
	Update(student *model.Student) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
	CountByRoom(roomNumber string) (int64, error)
}

type studentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db}
}

func (r *studentRepo) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

// FindAll returns students newest-created-first, optionally filtered by branch.
func (r *studentRepo) FindAll(branch string) ([]model.Student, error) {
	var students []model.Student
	q := r.db.Order("created_at DESC")
	if branch != "" {
		q = q.Where("branch = ?", branch)
	}
	err := q.Find(&students).Error
	return students, err
}

func (r *studentRepo) FindByID(id uuid.UUID) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) FindByStudentID(studentID string) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, "student_id = ?", studentID).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) FindByEmail(email string) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Update(student *model.Student) error {
	return r.db.Save(student).Error
}

func (r *studentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Student{}, "id = ?", id).Error
}

func (r *studentRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Student{}).Count(&count).Error
	return count, err
}

func (r *studentRepo) CountByRoom(roomNumber string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Student{}).Where("room_number = ?", roomNumber).Count(&count).Error
	return count, err
}
