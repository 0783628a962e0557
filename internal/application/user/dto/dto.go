package dto

import (
	"time"

	"github.com/spacebook/spacebook/internal/domain/user"
)

// CreateUserRequest registers a directory entry. Accounts themselves are
// managed by the identity provider; this only records who may book.
type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"omitempty,oneof=admin operator user"`
	UserType  string `json:"user_type" binding:"max=50"`
}

// UserResponse represents the response for a user
type UserResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	UserType  string    `json:"user_type,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		FullName:  u.FullName(),
		Email:     u.Email(),
		Role:      string(u.Role()),
		UserType:  u.UserType(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}
