package model

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UserSettings holds per-user preferences. One row per user.
type UserSettings struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Theme                string    `gorm:"size:10;not null;check:chk_user_settings_theme,theme IN ('light','dark')" json:"theme"`
	NotificationsEnabled bool      `gorm:"not null" json:"notifications_enabled"`
	DefaultPriority      string    `gorm:"size:10;not null;check:chk_user_settings_default_priority,default_priority IN ('baixa','media','alta')" json:"default_priority"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewUserSettings returns the default settings for a user.
func NewUserSettings(userID uint) UserSettings {
	return UserSettings{
		UserID:               userID,
		Theme:                ThemeLight,
		NotificationsEnabled: true,
		DefaultPriority:      PriorityMedium,
	}
}

// ValidTheme reports whether theme is one of the supported themes.
func ValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}
