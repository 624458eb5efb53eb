package model

import "time"

// Meeting is a scheduled gathering. An empty Branch means the meeting
// applies to all branches. Listed by start time, not creation time.
type Meeting struct {
	BaseModel
	Title        string     `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Description  string     `gorm:"type:text" json:"description"`
	Participants string     `gorm:"type:text" json:"participants"`
	StartTime    *time.Time `gorm:"not null;index" json:"start_time" validate:"required"`
	EndTime      *time.Time `json:"end_time"`
	Location     string     `gorm:"type:varchar(255)" json:"location"`
	Branch       string     `gorm:"type:varchar(100);index" json:"branch"`
}
