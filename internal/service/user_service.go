package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"homehub/internal/cache"
	apperrors "homehub/internal/errors"
	"homehub/internal/model"
	"homehub/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// UserService exposes profile operations and the generic owner-or-admin user
// endpoints.
type UserService interface {
	Profile(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, name, email string) error
	SetProfileImage(ctx context.Context, id uint, imageURL string) error

	Get(ctx context.Context, caller *model.User, id uint) (*model.User, error)
	Update(ctx context.Context, caller *model.User, id uint, name, email string) (*model.User, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Profile returns the user's own record, served from cache when possible.
func (s *userService) Profile(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, profileCacheTTL)
	}
	return user, nil
}

// UpdateProfile updates the caller's own name and email. Both are required.
func (s *userService) UpdateProfile(ctx context.Context, id uint, name, email string) error {
	if name == "" || email == "" {
		return apperrors.ErrMissingFields
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.Name = name
	user.Email = email
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrEmailInUse
		}
		return err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// SetProfileImage records the stored image URL on the user.
func (s *userService) SetProfileImage(ctx context.Context, id uint, imageURL string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.ProfileImageURL = imageURL
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Get returns a user record to its owner or an admin.
func (s *userService) Get(ctx context.Context, caller *model.User, id uint) (*model.User, error) {
	if !caller.IsAdmin && caller.ID != id {
		return nil, apperrors.ErrNotAuthorized
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update changes a user's name and email, owner or admin only. The email must
// not belong to another user.
func (s *userService) Update(ctx context.Context, caller *model.User, id uint, name, email string) (*model.User, error) {
	if !caller.IsAdmin && caller.ID != id {
		return nil, apperrors.ErrNotAuthorized
	}
	if name == "" || email == "" {
		return nil, apperrors.ErrNameEmailRequired
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if other, err := s.users.FindByEmail(ctx, email); err == nil && other.ID != user.ID {
		return nil, apperrors.ErrEmailInUse
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user.Name = name
	user.Email = email
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailInUse
		}
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// Delete removes a user and cascades to owned posts, properties, likes and
// comments. Owner or admin only.
func (s *userService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if !caller.IsAdmin && caller.ID != id {
		return apperrors.ErrNotAuthorized
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
