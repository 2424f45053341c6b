package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/usermgmt/user-service/internal/core/domain"
)

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		role string
		want Decision
	}{
		{"admin", Allowed},
		{"ADMIN", Allowed},
		{"Admin", Allowed},
		{"user", Forbidden},
		{"", Forbidden},
	}
	for _, tc := range cases {
		got := RequireAdmin(domain.Identity{Username: "x", Role: tc.role})
		if got != tc.want {
			t.Fatalf("RequireAdmin(role=%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestRequireAdminOrOwner_AdminBypassSkipsLookup(t *testing.T) {
	lookup := func(ctx context.Context, id int64) (*domain.User, error) {
		t.Fatalf("lookup must not be called for admin identity")
		return nil, nil
	}

	d, err := RequireAdminOrOwner(context.Background(), domain.Identity{Username: "root", Role: "admin"}, 42, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != Allowed {
		t.Fatalf("expected Allowed, got %v", d)
	}
}

func TestRequireAdminOrOwner_UppercaseAdminIsNotBypassed(t *testing.T) {
	// The bypass is exact-case: "ADMIN" falls through to the ownership path.
	called := false
	lookup := func(ctx context.Context, id int64) (*domain.User, error) {
		called = true
		return &domain.User{ID: id, Name: "bob"}, nil
	}

	d, err := RequireAdminOrOwner(context.Background(), domain.Identity{Username: "alice", Role: "ADMIN"}, 1, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("expected lookup to run for non-exact admin role")
	}
	if d != Forbidden {
		t.Fatalf("expected Forbidden, got %v", d)
	}
}

func TestRequireAdminOrOwner_Owner(t *testing.T) {
	lookup := func(ctx context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, Name: "alice"}, nil
	}

	d, err := RequireAdminOrOwner(context.Background(), domain.Identity{Username: "alice", Role: "user"}, 7, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != Allowed {
		t.Fatalf("expected Allowed for owner, got %v", d)
	}
}

func TestRequireAdminOrOwner_NotOwner(t *testing.T) {
	lookup := func(ctx context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, Name: "bob"}, nil
	}

	d, err := RequireAdminOrOwner(context.Background(), domain.Identity{Username: "alice", Role: "user"}, 7, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != Forbidden {
		t.Fatalf("expected Forbidden for non-owner, got %v", d)
	}
}

func TestRequireAdminOrOwner_TargetMissing(t *testing.T) {
	lookup := func(ctx context.Context, id int64) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}

	d, err := RequireAdminOrOwner(context.Background(), domain.Identity{Username: "alice", Role: "user"}, 99, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != NotFound {
		t.Fatalf("expected NotFound, got %v", d)
	}
}

func TestRequireAdminOrOwner_LookupError(t *testing.T) {
	boom := errors.New("store unavailable")
	lookup := func(ctx context.Context, id int64) (*domain.User, error) {
		return nil, boom
	}

	_, err := RequireAdminOrOwner(context.Background(), domain.Identity{Username: "alice", Role: "user"}, 1, lookup)
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
