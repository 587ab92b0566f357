package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskflow/internal/model"
)

// CategoryRepository manages task categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetOrCreate returns the named category of a user, creating it with color
// when absent. The bool reports whether a row was inserted.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, userID uint, name, color string) (*model.Category, bool, error) {
	var category model.Category
	db := r.db.WithContext(ctx)
	err := db.Where("user_id = ? AND name = ?", userID, name).First(&category).Error
	switch {
	case err == nil:
		return &category, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		category = model.Category{UserID: userID, Name: name, Color: color}
		if err := db.Create(&category).Error; err != nil {
			return nil, false, fmt.Errorf("create category: %w", err)
		}
		return &category, true, nil
	default:
		return nil, false, fmt.Errorf("find category: %w", err)
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID uint) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// NameTaken reports whether another category of the user already uses name.
// excludeID skips the category being renamed; pass 0 on create.
func (r *CategoryRepository) NameTaken(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Category{}).Where("user_id = ? AND name = ?", userID, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) Save(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Category{}, id).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
