// Package token issues and verifies the JWT pairs used for authentication.
//
// Access and refresh tokens carry the same claim shape but are signed with
// independent secrets, so a leaked access token can never be replayed as a
// refresh token and vice versa. Tokens are self-contained: verification never
// touches the database, and revocation is only possible by rotating a secret.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// Claims is the decoded payload embedded in both token kinds.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies access and refresh tokens.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewManager builds a Manager. A zero TTL falls back to 15 minutes for access
// and 7 days for refresh tokens. Negative TTLs are kept as-is, so a token can
// be minted already expired.
func NewManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Manager {
	if accessTTL == 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL == 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Pair is an access/refresh token pair minted together.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// IssuePair mints a fresh token pair for the given user.
func (m *Manager) IssuePair(user *domain.User) (*Pair, error) {
	access, err := m.IssueAccess(user)
	if err != nil {
		return nil, err
	}
	refresh, err := m.IssueRefresh(user)
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccess signs a short-lived access token.
func (m *Manager) IssueAccess(user *domain.User) (string, error) {
	return m.sign(user, m.accessSecret, m.accessTTL)
}

// IssueRefresh signs a longer-lived refresh token.
func (m *Manager) IssueRefresh(user *domain.User) (string, error) {
	return m.sign(user, m.refreshSecret, m.refreshTTL)
}

func (m *Manager) sign(user *domain.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// VerifyAccess validates an access token and returns its claims.
func (m *Manager) VerifyAccess(tok string) (*Claims, error) {
	return m.verify(tok, m.accessSecret)
}

// VerifyRefresh validates a refresh token and returns its claims.
func (m *Manager) VerifyRefresh(tok string) (*Claims, error) {
	return m.verify(tok, m.refreshSecret)
}

func (m *Manager) verify(tok string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
