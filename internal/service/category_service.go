package service

import (
	"context"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// CategoryInput represents data required to create a category.
type CategoryInput struct {
	UserID uint
	Name   string
	Color  string
}

// CategoryUpdate describes a partial category update.
type CategoryUpdate struct {
	Name  *string
	Color *string
}

// CategoryService enforces per-user name uniqueness and empty-before-delete.
type CategoryService struct {
	repos *repository.Repositories
}

func NewCategoryService(repos *repository.Repositories) *CategoryService {
	return &CategoryService{repos: repos}
}

func (s *CategoryService) List(ctx context.Context, userID uint) ([]model.Category, error) {
	return s.repos.Categories.ListByUser(ctx, userID)
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*model.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, validationf("category name is required")
	}
	color := input.Color
	if color == "" {
		color = model.DefaultCategoryColor
	}

	category := model.Category{UserID: input.UserID, Name: input.Name, Color: color}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		taken, err := tx.Categories.NameTaken(ctx, input.UserID, input.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return conflictf("category already exists")
		}
		return tx.Categories.Create(ctx, &category)
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, categoryID uint, upd CategoryUpdate) (*model.Category, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, validationf("category name cannot be empty")
	}

	var updated *model.Category
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		category, err := tx.Categories.GetByID(ctx, categoryID)
		if err != nil {
			return notFoundOr(err, "category")
		}

		if upd.Name != nil {
			taken, err := tx.Categories.NameTaken(ctx, category.UserID, *upd.Name, category.ID)
			if err != nil {
				return err
			}
			if taken {
				return conflictf("a category with this name already exists")
			}
			category.Name = *upd.Name
		}
		if upd.Color != nil {
			category.Color = *upd.Color
		}

		if err := tx.Categories.Save(ctx, category); err != nil {
			return err
		}
		updated = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a category that no task references.
func (s *CategoryService) Delete(ctx context.Context, categoryID uint) error {
	return s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Categories.GetByID(ctx, categoryID); err != nil {
			return notFoundOr(err, "category")
		}
		count, err := tx.Tasks.CountByCategory(ctx, categoryID)
		if err != nil {
			return err
		}
		if count > 0 {
			return conflictf("cannot delete category with %d associated task(s)", count)
		}
		return tx.Categories.Delete(ctx, categoryID)
	})
}
