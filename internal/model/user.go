package model

import "time"

// DefaultUserID is the seeded account that can never be deleted.
const DefaultUserID uint = 1

// User is an account that owns categories, tasks, settings and activity.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:80;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
