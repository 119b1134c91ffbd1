package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
	"github.com/southtrails/tours-api/internal/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.Phone == user.Phone {
			return nil, domain.ErrDuplicateUser
		}
	}
	r.nextID++
	u := cloneUser(user)
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[u.ID] = u
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _, _ int) ([]domain.User, int64, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.Country != nil {
		u.Country = *update.Country
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.IsActive != nil {
		u.IsActive = *update.IsActive
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) SetLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLoginAt = &at
	return nil
}

func (r *stubUserRepo) AddPassenger(_ context.Context, id string, p domain.SavedPassenger) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.SavedPassengers = append(u.SavedPassengers, p)
	return cloneUser(u), nil
}

func (r *stubUserRepo) RemovePassenger(_ context.Context, id string, index int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if index < 0 || index >= len(u.SavedPassengers) {
		return cloneUser(u), nil
	}
	u.SavedPassengers = append(u.SavedPassengers[:index], u.SavedPassengers[index+1:]...)
	return cloneUser(u), nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

func newTestTokens() *token.Manager {
	return token.NewManager("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func signupAnn(t *testing.T, svc *AuthService) *ports.AuthResult {
	t.Helper()
	res, err := svc.Signup(context.Background(), ports.SignupInput{
		Name:     "Ann",
		Email:    "ann@x.com",
		Phone:    "+1555",
		Password: "secret123",
		Country:  "US",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	return res
}

func TestAuthService_SignupThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newTestTokens())

	res := signupAnn(t, svc)
	if res.User.Role != domain.RoleUser {
		t.Fatalf("signup must fix role to user, got %s", res.User.Role)
	}
	if res.AccessToken == "" || res.RefreshToken == "" {
		t.Fatalf("signup did not return a token pair")
	}
	if res.User.PasswordHash == "secret123" {
		t.Fatalf("password stored in plaintext")
	}

	login, err := svc.Login(context.Background(), "ann@x.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.User.LastLoginAt == nil {
		t.Fatalf("login must record lastLoginAt")
	}
	if login.User.Role != domain.RoleUser {
		t.Fatalf("unexpected role after login: %s", login.User.Role)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newTestTokens())
	signupAnn(t, svc)

	if _, err := svc.Login(context.Background(), "ann@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@x.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_LoginInactive(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newTestTokens())
	res := signupAnn(t, svc)

	inactive := false
	if _, err := repo.Update(context.Background(), res.User.ID, ports.UserUpdate{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := svc.Login(context.Background(), "ann@x.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestAuthService_SignupDuplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newTestTokens())
	signupAnn(t, svc)

	// Same email, different phone.
	_, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Ann2", Email: "ann@x.com", Phone: "+1666", Password: "secret123", Country: "US",
	})
	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for email collision, got %v", err)
	}

	// Same phone, different email.
	_, err = svc.Signup(context.Background(), ports.SignupInput{
		Name: "Ann3", Email: "other@x.com", Phone: "+1555", Password: "secret123", Country: "US",
	})
	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for phone collision, got %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newTestTokens())
	res := signupAnn(t, svc)

	refreshed, err := svc.Refresh(context.Background(), res.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatalf("refresh did not rotate the pair")
	}
}

func TestAuthService_RefreshRejectsAccessToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newTestTokens())
	res := signupAnn(t, svc)

	if _, err := svc.Refresh(context.Background(), res.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for access token, got %v", err)
	}
}

func TestAuthService_RefreshInactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newTestTokens())
	res := signupAnn(t, svc)

	inactive := false
	if _, err := repo.Update(context.Background(), res.User.ID, ports.UserUpdate{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), res.RefreshToken); !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestAuthService_RefreshDeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newTestTokens())
	res := signupAnn(t, svc)

	if err := repo.Delete(context.Background(), res.User.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), res.RefreshToken); !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive for deleted user, got %v", err)
	}
}
