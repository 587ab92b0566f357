package service

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// SettingsUpdate describes a partial settings update.
type SettingsUpdate struct {
	Theme                *string
	NotificationsEnabled *bool
	DefaultPriority      *string
}

// SettingsService reads and writes per-user settings, creating defaults on
// first access.
type SettingsService struct {
	repos *repository.Repositories
}

func NewSettingsService(repos *repository.Repositories) *SettingsService {
	return &SettingsService{repos: repos}
}

func (s *SettingsService) Get(ctx context.Context, userID uint) (*model.UserSettings, error) {
	var settings *model.UserSettings
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		var err error
		settings, err = tx.Settings.GetOrCreate(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, userID uint, upd SettingsUpdate) (*model.UserSettings, error) {
	if upd.Theme != nil && !model.ValidTheme(*upd.Theme) {
		return nil, validationf("invalid theme %q", *upd.Theme)
	}
	if upd.DefaultPriority != nil && !model.ValidPriority(*upd.DefaultPriority) {
		return nil, validationf("invalid default priority %q", *upd.DefaultPriority)
	}

	var settings *model.UserSettings
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		current, err := tx.Settings.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		if upd.Theme != nil {
			current.Theme = *upd.Theme
		}
		if upd.NotificationsEnabled != nil {
			current.NotificationsEnabled = *upd.NotificationsEnabled
		}
		if upd.DefaultPriority != nil {
			current.DefaultPriority = *upd.DefaultPriority
		}
		if err := tx.Settings.Save(ctx, current); err != nil {
			return err
		}
		settings = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}
