package user

import (
	"context"
	"errors"

	"github.com/spacebook/spacebook/internal/shared/authorization"
)

var ErrUserNotFound = errors.New("user not found")

// Directory looks users up by ID and role.
type Directory interface {
	GetByID(ctx context.Context, id uint) (*User, error)
	// FindActiveByRoles returns active users holding any of the roles.
	FindActiveByRoles(ctx context.Context, roles ...authorization.UserRole) ([]*User, error)
}

// Repository adds writes used by seeding and tests.
type Repository interface {
	Directory
	Create(ctx context.Context, u *User) error
}
