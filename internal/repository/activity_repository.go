package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskflow/internal/model"
)

// ActivityRepository appends audit entries.
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Append(ctx context.Context, entry *model.ActivityLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}
