package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"homehub/internal/auth"
	apperrors "homehub/internal/errors"
	"homehub/internal/model"
	"homehub/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	users repository.UserRepository
	jwt   *auth.JWTService
	log   *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService, log *zap.Logger) AuthService {
	return &authService{users: users, jwt: jwt, log: log}
}

// Register creates a new user with a bcrypt-hashed password and issues a
// token. New users are never admins.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", apperrors.ErrMissingFields
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrEmailExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		IsAdmin:      false,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique index decides the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrEmailExists
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.Generate(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID))
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}
