package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the persisted account record. Name is unique across the store and
// doubles as the ownership key for admin-or-owner checks.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated (username, role) pair derived from a verified
// token. It is a transient view of the user at login time: it is never
// persisted and never re-checked against the store during authorization.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("no permission to perform this action")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidQuery       = errors.New("invalid query parameter")
)
