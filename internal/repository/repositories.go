package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every repository bound to the same connection or
// transaction.
type Repositories struct {
	db *gorm.DB

	Users      *UserRepository
	Categories *CategoryRepository
	Tasks      *TaskRepository
	Settings   *SettingsRepository
	Activity   *ActivityRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		Users:      NewUserRepository(db),
		Categories: NewCategoryRepository(db),
		Tasks:      NewTaskRepository(db),
		Settings:   NewSettingsRepository(db),
		Activity:   NewActivityRepository(db),
	}
}

// Transaction runs fn with repositories bound to a single transaction.
// Returning an error from fn rolls back everything fn wrote.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Ping checks that the underlying database answers.
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
