package repository

import (
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"

	"gorm.io/gorm"
)

type BranchRepository interface {
	FindAll() ([]model.Branch, error)
	FindByName(name string) (*model.Branch, error)
	SeedDefaults() error
}

type branchRepo struct {
	db *gorm.DB
}

func NewBranchRepo(db *gorm.DB) BranchRepository {
	return &branchRepo{db}
}

func (r *branchRepo) FindAll() ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.Order("id ASC").Find(&branches).Error
	return branches, err
}

func (r *branchRepo) FindByName(name string) (*model.Branch, error) {
	var branch model.Branch
	if err := r.db.Where("name = ?", name).First(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

// SeedDefaults creates the fixed branch list if it doesn't exist yet
func (r *branchRepo) SeedDefaults() error {
	for _, b := range model.DefaultBranches {
		var existing model.Branch
		if err := r.db.Where("name = ?", b.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&b).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
