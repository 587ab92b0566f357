package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskflow/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Taken reports whether column (username or email) already holds value on a
// user other than excludeID.
func (r *UserRepository) Taken(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	if column != "username" && column != "email" {
		return false, fmt.Errorf("unsupported unique column %q", column)
	}
	var count int64
	q := r.db.WithContext(ctx).Model(&model.User{}).Where(column+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check %s: %w", column, err)
	}
	return count > 0, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Save(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Delete removes a user and everything it owns: activity, tasks, categories,
// settings, then the user row. Callers run it inside a transaction.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	steps := []struct {
		name  string
		model interface{}
	}{
		{"activity", &model.ActivityLog{}},
		{"tasks", &model.Task{}},
		{"categories", &model.Category{}},
		{"settings", &model.UserSettings{}},
	}
	for _, step := range steps {
		if err := db.Where("user_id = ?", id).Delete(step.model).Error; err != nil {
			return fmt.Errorf("delete user %s: %w", step.name, err)
		}
	}
	if err := db.Delete(&model.User{}, id).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
