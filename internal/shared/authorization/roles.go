// Package authorization defines user roles and the request-scoped principal
// that is passed explicitly into every use case.
package authorization

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
	RoleUser     UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role may review reservations.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleOperator
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleUser:
		return true
	}
	return false
}

// ParseUserRole maps unknown values to RoleUser.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// StaffRoles lists the roles that receive new-request notifications.
func StaffRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleOperator}
}

// Principal identifies the authenticated caller of an operation.
type Principal struct {
	UserID uint
	Role   UserRole
}

func (p Principal) IsStaff() bool { return p.Role.IsStaff() }
func (p Principal) IsAdmin() bool { return p.Role.IsAdmin() }
