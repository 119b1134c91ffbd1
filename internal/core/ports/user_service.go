package ports

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// AdminCreateUserInput is the back-office user creation payload. Unlike
// signup, an administrator may assign any role.
type AdminCreateUserInput struct {
	Name     string
	Email    string
	Phone    string
	Country  string
	Password string
	Role     domain.Role
}

// AdminUpdateUserInput is a partial update; nil fields are left untouched.
// A non-nil Password is re-hashed before storage.
type AdminUpdateUserInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Country  *string
	Password *string
	Role     *domain.Role
	IsActive *bool
}

// UserPage is a single page of users plus pagination metadata.
type UserPage struct {
	Users      []domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines back-office user management plus owner-scoped
// saved-passenger maintenance.
type UserService interface {
	List(ctx context.Context, page, limit int) (*UserPage, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Create(ctx context.Context, input AdminCreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input AdminUpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	AddPassenger(ctx context.Context, userID string, p domain.SavedPassenger) (*domain.User, error)
	RemovePassenger(ctx context.Context, userID string, index int) (*domain.User, error)
}
