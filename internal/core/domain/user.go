package domain

import "time"

// Role is the closed set of permission levels gating route access.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
	RoleDriver     Role = "driver"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin, RoleDriver:
		return true
	}
	return false
}

// SavedPassenger is a passenger record kept on a user for quick rebooking.
type SavedPassenger struct {
	Name     string `json:"name" bson:"name"`
	Age      int    `json:"age" bson:"age"`
	Passport string `json:"passport,omitempty" bson:"passport,omitempty"`
}

// User models an authenticated actor in the system. PasswordHash is never
// serialized in API responses.
type User struct {
	ID              string           `json:"id" bson:"_id,omitempty"`
	Name            string           `json:"name" bson:"name"`
	Email           string           `json:"email" bson:"email"`
	Phone           string           `json:"phone" bson:"phone"`
	Country         string           `json:"country" bson:"country"`
	PasswordHash    string           `json:"-" bson:"password_hash"`
	Role            Role             `json:"role" bson:"role"`
	SavedPassengers []SavedPassenger `json:"saved_passengers" bson:"saved_passengers"`
	IsActive        bool             `json:"is_active" bson:"is_active"`
	LastLoginAt     *time.Time       `json:"last_login_at,omitempty" bson:"last_login_at,omitempty"`
	EmailVerifiedAt *time.Time       `json:"email_verified_at,omitempty" bson:"email_verified_at,omitempty"`
	PhoneVerifiedAt *time.Time       `json:"phone_verified_at,omitempty" bson:"phone_verified_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" bson:"updated_at"`
}
