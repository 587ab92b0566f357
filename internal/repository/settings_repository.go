package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskflow/internal/model"
)

// SettingsRepository manages per-user settings rows.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetOrCreate returns the settings of a user, inserting defaults if none exist.
// A concurrent insert that wins the unique index is reconciled by re-reading.
func (r *SettingsRepository) GetOrCreate(ctx context.Context, userID uint) (*model.UserSettings, error) {
	var settings model.UserSettings
	db := r.db.WithContext(ctx)
	err := db.Where("user_id = ?", userID).First(&settings).Error
	switch {
	case err == nil:
		return &settings, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = model.NewUserSettings(userID)
		if createErr := db.Create(&settings).Error; createErr != nil {
			var existing model.UserSettings
			if findErr := db.Where("user_id = ?", userID).First(&existing).Error; findErr == nil {
				return &existing, nil
			}
			return nil, fmt.Errorf("create settings: %w", createErr)
		}
		return &settings, nil
	default:
		return nil, fmt.Errorf("find settings: %w", err)
	}
}

func (r *SettingsRepository) Save(ctx context.Context, settings *model.UserSettings) error {
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
