package repository

import (
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"

	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(room *model.Room) error
	FindAll() ([]model.Room, error)
	FindByRoomNumber(roomNumber string) (*model.Room, error)
}

type roomRepo struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db}
}

func (r *roomRepo) Create(room *model.Room) error {
	return r.db.Create(room).Error
}

func (r *roomRepo) FindAll() ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepo) FindByRoomNumber(roomNumber string) (*model.Room, error) {
	var room model.Room
	if err := r.db.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}
