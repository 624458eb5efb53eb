package model

// Staff is an employee record. The Role column doubles as the permission
// level resolved for the matching auth account at sign-in.
type Staff struct {
	BaseModel
	StaffID       string `gorm:"type:varchar(50);uniqueIndex;not null" json:"staff_id" validate:"required"`
	Name          string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Branch        string `gorm:"type:varchar(100);not null;index" json:"branch" validate:"required"`
	Role          string `gorm:"type:varchar(30);not null;default:'warden'" json:"role" validate:"omitempty,oneof=admin warden incharge mess_incharge"`
	ContactNumber string `gorm:"type:varchar(20)" json:"contact_number"`
	Email         string `gorm:"type:varchar(255);index" json:"email"`
}

// TableName keeps the plural-free table name used by the deployment.
func (Staff) TableName() string {
	return "staff"
}
