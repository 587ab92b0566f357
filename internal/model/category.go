package model

import "time"

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#667eea"

// Category groups tasks by area (work, health, study, etc.).
// Names are unique per owning user.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex:idx_user_category_name" json:"name"`
	Color     string    `gorm:"size:7" json:"color"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_category_name" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
