package model

// Room is a bookable hostel room. Occupancy is derived from the student
// roster's room_number column, never stored here.
type Room struct {
	BaseModel
	RoomNumber string `gorm:"type:varchar(20);uniqueIndex;not null" json:"room_number" validate:"required"`
	Branch     string `gorm:"type:varchar(100);index" json:"branch"`
	Capacity   int    `gorm:"not null" json:"capacity" validate:"required,min=1"`
}

// RoomOccupancy is the allocation view: the room plus its live counts.
type RoomOccupancy struct {
	Room
	Occupancy     int64 `json:"occupancy"`
	AvailableBeds int64 `json:"available_beds"`
}
