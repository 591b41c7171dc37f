package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"softdesk/internal/authz"
	"softdesk/internal/cache"
	apperrors "softdesk/internal/errors"
	"softdesk/internal/model"
	"softdesk/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateUserInput carries optional profile changes. Nil fields are left
// untouched.
type UpdateUserInput struct {
	Email           *string
	Password        *string
	Age             *int
	CanBeContacted  *bool
	CanDataBeShared *bool
}

// UserService exposes user profile operations.
type UserService interface {
	Get(ctx context.Context, actor authz.Actor, id uint) (*model.User, error)
	Update(ctx context.Context, actor authz.Actor, id uint, in UpdateUserInput) (*model.User, error)
	// Delete removes the user and everything they own: authored projects
	// with their full cascade, authored issues and comments, memberships.
	// Issues merely assigned to them keep existing with the assignee cleared.
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

type userService struct {
	store repository.Store
	cache *cache.Client
}

// NewUserService builds a UserService with the store and cache.
func NewUserService(store repository.Store, cache *cache.Client) UserService {
	return &userService{store: store, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) Get(ctx context.Context, actor authz.Actor, id uint) (*model.User, error) {
	if err := authz.CanAccessUser(actor, id); err != nil {
		return nil, err
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.LevelUser)
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, actor authz.Actor, id uint, in UpdateUserInput) (*model.User, error) {
	if err := authz.CanAccessUser(actor, id); err != nil {
		return nil, err
	}

	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.LevelUser)
		}
		return nil, err
	}

	if in.Age != nil {
		if *in.Age < model.MinimumAge {
			return nil, apperrors.NewValidation("age", "age must be at least 15")
		}
		user.Age = *in.Age
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.CanBeContacted != nil {
		user.CanBeContacted = *in.CanBeContacted
	}
	if in.CanDataBeShared != nil {
		user.CanDataBeShared = *in.CanDataBeShared
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.store.Users().Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict("email already taken")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	if err := authz.CanAccessUser(actor, id); err != nil {
		return err
	}

	if _, err := s.store.Users().FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound(apperrors.LevelUser)
		}
		return err
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		// Authored projects take their whole subtree with them.
		projects, err := tx.Projects().ListByAuthor(ctx, id)
		if err != nil {
			return err
		}
		for _, project := range projects {
			if err := deleteProjectCascade(ctx, tx, project.ID); err != nil {
				return err
			}
		}

		// Issues authored elsewhere, children first.
		if err := tx.Comments().DeleteByIssueAuthor(ctx, id); err != nil {
			return err
		}
		if err := tx.Issues().DeleteByAuthor(ctx, id); err != nil {
			return err
		}

		// Comments authored on surviving issues.
		if err := tx.Comments().DeleteByAuthor(ctx, id); err != nil {
			return err
		}

		// Assigned issues survive with the assignee cleared.
		if err := tx.Issues().ClearAssignee(ctx, id); err != nil {
			return err
		}

		if err := tx.Contributors().DeleteByUser(ctx, id); err != nil {
			return err
		}

		return tx.Users().Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
