package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/devconnect-app/backend/internal/auth"
	"github.com/devconnect-app/backend/internal/models"
)

// UserStore persists user records. Implementations report missing records
// with ErrUserNotFound.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id int) (*models.User, error)
}

// AuthService handles registration and credential checks. Token issuance
// lives in auth.TokenService; this service only resolves users.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user with a hashed password and a gravatar avatar.
// A duplicate email fails with ErrEmailTaken and creates nothing.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	_, err := s.users.ByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Avatar:   auth.GravatarURL(email),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Authenticate resolves email+password to a user. Unknown email and wrong
// password fail identically with ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UserByID loads a user for the identity echo endpoint.
func (s *AuthService) UserByID(ctx context.Context, id int) (*models.User, error) {
	return s.users.ByID(ctx, id)
}
