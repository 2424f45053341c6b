package ports

import (
	"context"

	"github.com/usermgmt/user-service/internal/core/domain"
)

// CreateUserInput carries the data for creating a user. Password arrives in
// plaintext and is hashed by the service before it reaches the repository.
type CreateUserInput struct {
	Name     string
	Age      int
	Role     string
	Password string
}

// UpdateUserInput is a partial update: nil fields are left unchanged.
type UpdateUserInput struct {
	Name *string
	Age  *int
	Role *string
}

// ListUsersInput carries the pagination and sort parameters of the list
// endpoint, prior to validation. Limit is nil when the caller did not send
// one; an explicit zero is invalid, not a request for the default.
type ListUsersInput struct {
	Skip   int
	Limit  *int
	SortBy string
	Order  string
}

// UserService defines the use-case operations on user records. Every method
// takes the caller's Identity and enforces the access policy before touching
// the repository.
type UserService interface {
	List(ctx context.Context, identity domain.Identity, input ListUsersInput) ([]*domain.User, error)
	Search(ctx context.Context, identity domain.Identity, filter SearchUsersFilter) ([]*domain.User, error)
	Get(ctx context.Context, identity domain.Identity, id int64) (*domain.User, error)
	Create(ctx context.Context, identity domain.Identity, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, identity domain.Identity, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, identity domain.Identity, id int64) error
}
