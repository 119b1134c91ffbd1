package service

import (
	"context"
	"errors"
	"time"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
	"github.com/southtrails/tours-api/internal/token"
)

// AuthService implements login, signup and token refresh on top of the user
// repository and the dual-secret token manager.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Manager
}

func NewAuthService(users ports.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login validates credentials, records the login time and mints a fresh pair.
// Unknown email, wrong password and inactive account all collapse into
// ErrInvalidCredentials so the response does not reveal which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.SetLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	return s.mintPair(user)
}

// Signup creates a new account with role fixed to "user". Duplicate email or
// phone is reported by the store's unique indexes on insert, so concurrent
// signups for the same identity cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Country:         input.Country,
		PasswordHash:    hash,
		Role:            domain.RoleUser,
		SavedPassengers: []domain.SavedPassenger{},
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.mintPair(created)
}

// Refresh verifies the refresh token, re-fetches the user and rotates the
// whole pair. A deleted or deactivated user fails with ErrUserInactive even
// when the token itself is still valid.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserInactive
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	return s.mintPair(user)
}

// Profile returns the authenticated user's record.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) mintPair(user *domain.User) (*ports.AuthResult, error) {
	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
