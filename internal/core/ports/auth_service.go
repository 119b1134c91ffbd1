package ports

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// SignupInput carries the fields required to create a new account.
// Role is never part of the input: signup always produces a "user".
type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Country  string
}

// AuthResult is returned by every flow that mints a token pair.
type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// AuthService orchestrates login, signup and token refresh.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
