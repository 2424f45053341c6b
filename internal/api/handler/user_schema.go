package handler

import (
	"time"

	"github.com/usermgmt/user-service/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Age      int    `json:"age"      validate:"gte=0"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
	Password string `json:"password" validate:"required,min=6"`
}

type updateUserRequest struct {
	Name *string `json:"name,omitempty"`
	Age  *int    `json:"age,omitempty"  validate:"omitempty,gte=0"`
	Role *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type deleteUserResponse struct {
	Message string `json:"message"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:   u.ID,
		Name: u.Name,
		Age:  u.Age,
		Role: u.Role,
	}
	if !u.CreatedAt.IsZero() {
		resp.CreatedAt = u.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !u.UpdatedAt.IsZero() {
		resp.UpdatedAt = u.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
