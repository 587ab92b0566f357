package service

import (
	"context"
	"errors"
	"testing"

	"taskflow/internal/model"
)

func TestSettingsGetCreatesDefaults(t *testing.T) {
	repos, _ := newTestRepos(t)
	svc := NewSettingsService(repos)

	got, err := svc.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != 99 || got.Theme != model.ThemeLight || !got.NotificationsEnabled || got.DefaultPriority != model.PriorityMedium {
		t.Errorf("defaults = %+v", got)
	}
}

func TestSettingsUpdate(t *testing.T) {
	repos, db := newTestRepos(t)
	svc := NewSettingsService(repos)
	ctx := context.Background()

	got, err := svc.Update(ctx, 7, SettingsUpdate{
		Theme:                strPtr(model.ThemeDark),
		NotificationsEnabled: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Theme != model.ThemeDark || got.NotificationsEnabled || got.DefaultPriority != model.PriorityMedium {
		t.Errorf("updated = %+v", got)
	}

	reread, err := svc.Get(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if reread.ID != got.ID || reread.NotificationsEnabled {
		t.Errorf("reread = %+v", reread)
	}

	tests := []struct {
		name string
		upd  SettingsUpdate
	}{
		{"bad theme", SettingsUpdate{Theme: strPtr("blue")}},
		{"bad priority", SettingsUpdate{DefaultPriority: strPtr("low")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Update(ctx, 8, tt.upd); !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want validation", err)
			}
		})
	}

	var count int64
	db.Model(&model.UserSettings{}).Where("user_id = ?", 8).Count(&count)
	if count != 0 {
		t.Errorf("rejected update created settings rows: %d", count)
	}
}
