package service

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

// UserService implements back-office user management and owner-scoped
// saved-passenger maintenance.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, page, limit int) (*ports.UserPage, error) {
	page, limit = normalizePage(page, limit, 20)
	users, total, err := s.users.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if !role.Valid() {
		return []domain.User{}, nil
	}
	return s.users.ListByRole(ctx, role)
}

// Create lets an administrator provision an account with any role.
func (s *UserService) Create(ctx context.Context, input ports.AdminCreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	return s.users.Create(ctx, &domain.User{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Country:         input.Country,
		PasswordHash:    hash,
		Role:            role,
		SavedPassengers: []domain.SavedPassenger{},
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

// Update applies a partial update. A plaintext password in the input is
// replaced by its hash before it reaches the repository.
func (s *UserService) Update(ctx context.Context, id string, input ports.AdminUpdateUserInput) (*domain.User, error) {
	if input.Role != nil && !input.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	update := ports.UserUpdate{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Country:  input.Country,
		Role:     input.Role,
		IsActive: input.IsActive,
	}
	if input.Password != nil {
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	return s.users.Update(ctx, id, update)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	return s.users.Update(ctx, id, ports.UserUpdate{IsActive: &active})
}

func (s *UserService) AddPassenger(ctx context.Context, userID string, p domain.SavedPassenger) (*domain.User, error) {
	return s.users.AddPassenger(ctx, userID, p)
}

func (s *UserService) RemovePassenger(ctx context.Context, userID string, index int) (*domain.User, error) {
	return s.users.RemovePassenger(ctx, userID, index)
}
