package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/usermgmt/user-service/internal/core/domain"
)

// Decision is the outcome of an authorization check. Checks return a tagged
// value instead of raising across layers; the transport maps decisions to
// status codes (Forbidden → 403, NotFound → 404).
type Decision int

const (
	Allowed Decision = iota
	Forbidden
	NotFound
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

// UserLookup resolves a user id to its record, returning
// domain.ErrUserNotFound when no such user exists.
type UserLookup func(ctx context.Context, id int64) (*domain.User, error)

// RequireAdmin allows only identities whose role is "admin", compared
// case-insensitively.
func RequireAdmin(identity domain.Identity) Decision {
	if strings.EqualFold(identity.Role, domain.RoleAdmin) {
		return Allowed
	}
	return Forbidden
}

// RequireAdminOrOwner allows admins outright and otherwise allows the caller
// only when the target user's name equals the caller's username.
//
// The admin bypass is an exact-case comparison, unlike RequireAdmin's folded
// one; callers depend on this asymmetry, do not unify the two checks. The
// bypass precedes the lookup, so an admin acting on a nonexistent id gets
// Allowed here and the missing record surfaces later.
func RequireAdminOrOwner(ctx context.Context, identity domain.Identity, targetID int64, lookup UserLookup) (Decision, error) {
	if identity.Role == domain.RoleAdmin {
		return Allowed, nil
	}

	target, err := lookup(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NotFound, nil
		}
		return Forbidden, err
	}
	if target.Name == identity.Username {
		return Allowed, nil
	}
	return Forbidden, nil
}
