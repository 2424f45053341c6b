package ports

import (
	"context"

	"github.com/usermgmt/user-service/internal/core/domain"
)

// ListUsersFilter carries pagination and ordering for the list query.
// Values are validated by the service before reaching the repository.
type ListUsersFilter struct {
	Skip   int
	Limit  int
	SortBy string // id, name, age or role
	Order  string // asc or desc
}

// SearchUsersFilter carries the optional search criteria. Name and Role
// match as case-insensitive substrings, Age matches exactly when set.
type SearchUsersFilter struct {
	Name string
	Age  *int
	Role string
}

// UserRepository defines the persistence interface for user records.
// Find methods return domain.ErrUserNotFound when no record matches;
// Insert returns domain.ErrUserExists on a duplicate name.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindAnyByRole(ctx context.Context, role string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	Search(ctx context.Context, filter SearchUsersFilter) ([]*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}
