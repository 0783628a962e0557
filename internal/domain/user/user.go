// Package user is the read side of the user directory. Account management
// lives outside this service; reservations only need identity, role and
// contact details.
package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/spacebook/spacebook/internal/shared/authorization"
)

type User struct {
	id        uint
	firstName string
	lastName  string
	email     string
	role      authorization.UserRole
	userType  string
	isActive  bool
	createdAt time.Time
}

func NewUser(firstName, lastName, email string, role authorization.UserRole, userType string) (*User, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email: %q", email)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		email:     strings.ToLower(strings.TrimSpace(email)),
		role:      role,
		userType:  userType,
		isActive:  true,
	}, nil
}

func ReconstructUser(id uint, firstName, lastName, email string, role authorization.UserRole, userType string, isActive bool, createdAt time.Time) *User {
	return &User{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		role:      role,
		userType:  userType,
		isActive:  isActive,
		createdAt: createdAt,
	}
}

func (u *User) ID() uint                     { return u.id }
func (u *User) FirstName() string            { return u.firstName }
func (u *User) LastName() string             { return u.lastName }
func (u *User) Email() string                { return u.email }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) UserType() string             { return u.userType }
func (u *User) IsActive() bool               { return u.isActive }
func (u *User) CreatedAt() time.Time         { return u.createdAt }

func (u *User) SetID(id uint) { u.id = id }

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}
