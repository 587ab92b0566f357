package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"taskflow/internal/auth"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// DefaultCategories are created for the default user on first start.
var DefaultCategories = []struct {
	Name  string
	Color string
}{
	{"Trabalho", "#667eea"},
	{"Pessoal", "#4caf50"},
	{"Estudos", "#ff9800"},
	{"Saúde", "#e74c3c"},
	{"Compras", "#9c27b0"},
}

// Seed makes sure the default user, its settings and the default categories
// exist. Every row is checked before insert, so running it again is a no-op.
func Seed(ctx context.Context, repos *repository.Repositories, defaultPassword string) error {
	return repos.Transaction(ctx, func(tx *repository.Repositories) error {
		_, err := tx.Users.FindByID(ctx, model.DefaultUserID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			hash, err := auth.HashPassword(defaultPassword)
			if err != nil {
				return err
			}
			user := model.User{
				ID:           model.DefaultUserID,
				Username:     "default",
				Email:        "default@taskflow.com",
				PasswordHash: hash,
			}
			if err := tx.Users.Create(ctx, &user); err != nil {
				return err
			}
			log.Printf("[info] seeded default user %q", user.Username)
		case err != nil:
			return fmt.Errorf("find default user: %w", err)
		}

		if _, err := tx.Settings.GetOrCreate(ctx, model.DefaultUserID); err != nil {
			return err
		}

		for _, c := range DefaultCategories {
			_, created, err := tx.Categories.GetOrCreate(ctx, model.DefaultUserID, c.Name, c.Color)
			if err != nil {
				return err
			}
			if created {
				log.Printf("[info] seeded category %q", c.Name)
			}
		}
		return nil
	})
}
