package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an authenticated account. It deliberately carries no role:
// the role is resolved per session from the staff/student profile tables so
// it can never be client-asserted.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"` // Invalidated on sign-out
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Session is the resolved view of a signed-in user returned to clients.
// Role is RoleGuest when no matching profile row exists yet.
type Session struct {
	UserID          uuid.UUID `json:"user_id"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Branch          string    `json:"branch,omitempty"`
	ProfileComplete bool      `json:"profile_complete"`
}
