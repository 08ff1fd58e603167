package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account. The password is only ever stored as a bcrypt hash.
type User struct {
	ID           uuid.UUID        `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username     string           `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email        string           `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string           `gorm:"not null" json:"-"`
	Allergies    JSONBStringArray `gorm:"type:jsonb;not null" json:"allergies"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// Clone returns a deep copy of u
func (u User) Clone() User {
	out := u
	out.Allergies = u.Allergies.Clone()
	return out
}
