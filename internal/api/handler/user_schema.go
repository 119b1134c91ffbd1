package handler

import "github.com/southtrails/tours-api/internal/core/domain"

type adminCreateUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Country  string `json:"country"  validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin super_admin driver"`
}

type adminUpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Country  *string `json:"country"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role"     validate:"omitempty,oneof=user admin super_admin driver"`
	IsActive *bool   `json:"is_active"`
}

type passengerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Age      int    `json:"age"      validate:"required,gt=0"`
	Passport string `json:"passport"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type listUsersResponse struct {
	Data       []domain.User      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
