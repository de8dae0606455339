package models

import (
	"time"
)

// User represents a registered account
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string    `gorm:"size:254" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// Identity is the signed-in user a request acts on behalf of.
// It is resolved once per request and passed explicitly to every service call.
type Identity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// IsZero reports whether the identity is unset
func (i Identity) IsZero() bool {
	return i.UserID == 0
}
