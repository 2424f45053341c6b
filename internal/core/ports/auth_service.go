package ports

import (
	"context"

	"github.com/usermgmt/user-service/internal/core/domain"
)

// AuthService defines the login flow and startup seeding.
type AuthService interface {
	// Login verifies name/password and mints a signed token. A wrong name and
	// a wrong password both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, name, password string) (string, *domain.User, error)
	// EnsureDefaultAdmin creates the bootstrap admin account when no user
	// with the admin role exists yet.
	EnsureDefaultAdmin(ctx context.Context) error
}
