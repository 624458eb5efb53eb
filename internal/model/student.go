package model

// Student is a hostel resident record. Each student belongs to exactly one
// branch, referenced by name.
type Student struct {
	BaseModel
	StudentID     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"student_id" validate:"required"`
	Name          string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Branch        string `gorm:"type:varchar(100);not null;index" json:"branch" validate:"required"`
	CourseYear    string `gorm:"type:varchar(50)" json:"course_year"`
	RoomNumber    string `gorm:"type:varchar(20)" json:"room_number"`
	ContactNumber string `gorm:"type:varchar(20)" json:"contact_number"`
	Email         string `gorm:"type:varchar(255);index" json:"email"`
}
