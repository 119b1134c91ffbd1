package handler

import "github.com/southtrails/tours-api/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Country  string `json:"country"  validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// authResponse carries the user together with a freshly minted token pair.
type authResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

// logoutResponse echoes the verified claims back to the client. Logout is
// stateless: the server keeps no revocation list.
type logoutResponse struct {
	Message string      `json:"message"`
	UserID  string      `json:"user_id"`
	Email   string      `json:"email"`
	Role    domain.Role `json:"role"`
}
