package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/usermgmt/user-service/internal/core/auth"
	"github.com/usermgmt/user-service/internal/core/domain"
	"github.com/usermgmt/user-service/internal/core/ports"
)

// DefaultAdmin describes the bootstrap admin account seeded at startup.
type DefaultAdmin struct {
	Name     string
	Password string
	Age      int
}

// AuthService implements login and default-admin seeding.
type AuthService struct {
	repo         ports.UserRepository
	hasher       auth.Hasher
	codec        *auth.Codec
	defaultAdmin DefaultAdmin
	logger       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher auth.Hasher, codec *auth.Codec, defaultAdmin DefaultAdmin, logger zerolog.Logger) *AuthService {
	return &AuthService{
		repo:         repo,
		hasher:       hasher,
		codec:        codec,
		defaultAdmin: defaultAdmin,
		logger:       logger,
	}
}

// Login verifies the credentials and returns a signed token for the user.
// An unknown name and a wrong password collapse to the same
// ErrInvalidCredentials so callers cannot enumerate usernames.
func (s *AuthService) Login(ctx context.Context, name, password string) (string, *domain.User, error) {
	if name == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.Name, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.logger.Info().Str("username", user.Name).Str("role", user.Role).Msg("login succeeded")
	return token, user, nil
}

// EnsureDefaultAdmin creates the configured admin account when no admin-role
// user exists yet. Called once at startup; a second admin created later is
// not prevented.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.repo.FindAnyByRole(ctx, domain.RoleAdmin)
	if err == nil {
		s.logger.Debug().Msg("admin already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("seed admin: %w", err)
	}

	hash, err := s.hasher.Hash(s.defaultAdmin.Password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Name:         s.defaultAdmin.Name,
		Age:          s.defaultAdmin.Age,
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.repo.Insert(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	s.logger.Info().Str("username", s.defaultAdmin.Name).Msg("default admin created")
	return nil
}
