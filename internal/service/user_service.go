package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskflow/internal/auth"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// MinPasswordLength applies to password changes.
const MinPasswordLength = 6

// UserInput represents data required to register a user.
type UserInput struct {
	Username string
	Email    string
	Password string
}

// UserUpdate describes a partial account update.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
}

// UserService manages accounts and the credential check.
type UserService struct {
	repos *repository.Repositories
}

func NewUserService(repos *repository.Repositories) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repos.Users.ListAll(ctx)
}

func (s *UserService) Get(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.repos.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}

// Create registers a user together with its default settings.
func (s *UserService) Create(ctx context.Context, input UserInput) (*model.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, validationf("username, email and password are required")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := model.User{Username: input.Username, Email: input.Email, PasswordHash: hash}
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := ensureUnique(ctx, tx, user.Username, user.Email, 0); err != nil {
			return err
		}
		if err := tx.Users.Create(ctx, &user); err != nil {
			return err
		}
		// Settings may already exist: they are created lazily for any user id.
		_, err := tx.Settings.GetOrCreate(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, userID uint, upd UserUpdate) (*model.User, error) {
	if upd.Username != nil && strings.TrimSpace(*upd.Username) == "" {
		return nil, validationf("username cannot be empty")
	}
	if upd.Email != nil && strings.TrimSpace(*upd.Email) == "" {
		return nil, validationf("email cannot be empty")
	}
	var hash string
	if upd.Password != nil {
		if len(*upd.Password) < MinPasswordLength {
			return nil, validationf("password must be at least %d characters", MinPasswordLength)
		}
		var err error
		if hash, err = auth.HashPassword(*upd.Password); err != nil {
			return nil, err
		}
	}

	var updated *model.User
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		user, err := tx.Users.FindByID(ctx, userID)
		if err != nil {
			return notFoundOr(err, "user")
		}

		username, email := "", ""
		if upd.Username != nil {
			username = *upd.Username
		}
		if upd.Email != nil {
			email = *upd.Email
		}
		if err := ensureUnique(ctx, tx, username, email, user.ID); err != nil {
			return err
		}

		if upd.Username != nil {
			user.Username = *upd.Username
		}
		if upd.Email != nil {
			user.Email = *upd.Email
		}
		if hash != "" {
			user.PasswordHash = hash
		}
		if err := tx.Users.Save(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a user and everything it owns. The default user is protected.
func (s *UserService) Delete(ctx context.Context, userID uint) error {
	if userID == model.DefaultUserID {
		return conflictf("the default user cannot be deleted")
	}
	return s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Users.FindByID(ctx, userID); err != nil {
			return notFoundOr(err, "user")
		}
		return tx.Users.Delete(ctx, userID)
	})
}

// Login checks credentials without revealing which one was wrong.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, validationf("username and password are required")
	}
	invalid := &Error{Kind: ErrUnauthorized, Message: "invalid credentials"}

	user, err := s.repos.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil || !ok {
		return nil, invalid
	}
	return user, nil
}

// ensureUnique checks non-empty username and email against users other than excludeID.
func ensureUnique(ctx context.Context, tx *repository.Repositories, username, email string, excludeID uint) error {
	if username != "" {
		taken, err := tx.Users.Taken(ctx, "username", username, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return conflictf("username already exists")
		}
	}
	if email != "" {
		taken, err := tx.Users.Taken(ctx, "email", email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return conflictf("email already in use")
		}
	}
	return nil
}
