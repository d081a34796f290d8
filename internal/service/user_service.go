package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"modelmatrix/internal/cache"
	apperrors "modelmatrix/internal/errors"
	"modelmatrix/internal/model"
	"modelmatrix/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// ProfileUpdate carries the mutable profile fields of a partial update.
type ProfileUpdate struct {
	Name  *string
	Image *string
}

// UserService exposes user operations. It also backs the authz role lookups.
type UserService interface {
	SignIn(ctx context.Context, user *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uint) error
	RoleFor(ctx context.Context, email string) (string, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(email string) string {
	return fmt.Sprintf("user:%s", email)
}

// SignIn upserts the user record keyed by email: first sign-in inserts the
// record, later sign-ins refresh name, image and lastLogin while createdAt
// and role stay as inserted.
func (s *userService) SignIn(ctx context.Context, user *model.User) (*model.User, error) {
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	stored, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(stored.Email))
	return stored, nil
}

// GetByEmail returns a user or ErrUserNotFound.
func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(email), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(email), user, userCacheTTL)
	return user, nil
}

// UpdateProfile applies a partial update to the caller's profile.
func (s *userService) UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*model.User, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}
	if len(fields) > 0 {
		if err := s.repo.UpdateProfile(ctx, email, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("update profile: %w", err)
		}
		_ = s.cache.Delete(ctx, s.cacheKey(email))
	}
	return s.GetByEmail(ctx, email)
}

// List returns all users.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Delete removes a user record by ID.
func (s *userService) Delete(ctx context.Context, id uint) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.Email))
	return nil
}

// RoleFor resolves the stored role for an identity email. Unknown emails
// report the empty role.
func (s *userService) RoleFor(ctx context.Context, email string) (string, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}
	return user.Role, nil
}
