package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/usermgmt/user-service/internal/core/auth"
	"github.com/usermgmt/user-service/internal/core/domain"
	"github.com/usermgmt/user-service/internal/core/ports"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

var listSortFields = map[string]struct{}{
	"id": {}, "name": {}, "age": {}, "role": {},
}

// UserService implements CRUD on user records with admin / admin-or-owner
// access checks in front of every repository call.
type UserService struct {
	repo   ports.UserRepository
	hasher auth.Hasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher auth.Hasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// List returns a page of users. Any authenticated identity may list.
func (s *UserService) List(ctx context.Context, _ domain.Identity, input ports.ListUsersInput) ([]*domain.User, error) {
	limit := defaultListLimit
	if input.Limit != nil {
		limit = *input.Limit
	}
	if input.SortBy == "" {
		input.SortBy = "id"
	}
	if input.Order == "" {
		input.Order = "asc"
	}

	if input.Skip < 0 {
		return nil, fmt.Errorf("%w: skip must be >= 0", domain.ErrInvalidQuery)
	}
	if limit < 1 || limit > maxListLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidQuery, maxListLimit)
	}
	if _, ok := listSortFields[input.SortBy]; !ok {
		return nil, fmt.Errorf("%w: sort_by must be one of id, name, age, role", domain.ErrInvalidQuery)
	}
	if input.Order != "asc" && input.Order != "desc" {
		return nil, fmt.Errorf("%w: order must be 'asc' or 'desc'", domain.ErrInvalidQuery)
	}

	users, err := s.repo.List(ctx, ports.ListUsersFilter{
		Skip:   input.Skip,
		Limit:  limit,
		SortBy: input.SortBy,
		Order:  input.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Search filters users by name substring, exact age, and role substring.
// Zero matches is reported as not found.
func (s *UserService) Search(ctx context.Context, _ domain.Identity, filter ports.SearchUsersFilter) ([]*domain.User, error) {
	users, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return users, nil
}

// Get returns a single user; allowed for admins and the record's owner.
func (s *UserService) Get(ctx context.Context, identity domain.Identity, id int64) (*domain.User, error) {
	decision, err := auth.RequireAdminOrOwner(ctx, identity, id, s.repo.FindByID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. Admin only; the plaintext password is hashed
// before it touches the repository.
func (s *UserService) Create(ctx context.Context, identity domain.Identity, input ports.CreateUserInput) (*domain.User, error) {
	if auth.RequireAdmin(identity) != auth.Allowed {
		return nil, domain.ErrForbidden
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.User{
		Name:         input.Name,
		Age:          input.Age,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Str("username", created.Name).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Update applies a partial update; allowed for admins and the record's
// owner, except that changing the role additionally requires admin.
func (s *UserService) Update(ctx context.Context, identity domain.Identity, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	decision, err := auth.RequireAdminOrOwner(ctx, identity, id, s.repo.FindByID)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if err := decisionError(decision); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.Role != nil {
		if !strings.EqualFold(identity.Role, domain.RoleAdmin) {
			return nil, domain.ErrForbidden
		}
		user.Role = *input.Role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", user.ID).Str("username", user.Name).Msg("user updated")
	return user, nil
}

// Delete removes a user; allowed for admins and the record's owner.
func (s *UserService) Delete(ctx context.Context, identity domain.Identity, id int64) error {
	decision, err := auth.RequireAdminOrOwner(ctx, identity, id, s.repo.FindByID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if err := decisionError(decision); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("user deleted")
	return nil
}

// decisionError maps an authorization decision onto the sentinel error the
// transport layer translates into a status code.
func decisionError(d auth.Decision) error {
	switch d {
	case auth.Forbidden:
		return domain.ErrForbidden
	case auth.NotFound:
		return domain.ErrUserNotFound
	}
	return nil
}
