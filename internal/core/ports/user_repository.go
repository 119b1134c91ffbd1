package ports

import (
	"context"
	"time"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// UserUpdate carries a partial user update; nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	Country      *string
	PasswordHash *string
	Role         *domain.Role
	IsActive     *bool
}

// UserRepository defines persistence for user accounts.
//
// Create must report a unique-index violation on email or phone as
// domain.ErrDuplicateUser, so duplicate signups are rejected atomically by the
// store rather than by a separate existence check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, page, limit int) ([]domain.User, int64, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	SetLastLogin(ctx context.Context, id string, at time.Time) error
	AddPassenger(ctx context.Context, id string, p domain.SavedPassenger) (*domain.User, error)
	RemovePassenger(ctx context.Context, id string, index int) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
