// Package permission describes coarse role based access to API resources.
// Ownership checks (a user cancelling their own reservation) stay in the
// use cases; the enforcer only answers whether a role may attempt an action.
package permission

import (
	vo "github.com/spacebook/spacebook/internal/domain/permission/value_objects"
	"github.com/spacebook/spacebook/internal/shared/authorization"
)

type PermissionEnforcer interface {
	Enforce(role authorization.UserRole, resource vo.Resource, action vo.Action) (bool, error)
	AddPolicy(role authorization.UserRole, resource vo.Resource, action vo.Action) error
	RemovePolicy(role authorization.UserRole, resource vo.Resource, action vo.Action) error
	LoadPolicy() error
}

// Policy is one (role, resource, action) grant.
type Policy struct {
	Role     authorization.UserRole
	Resource vo.Resource
	Action   vo.Action
}

// DefaultPolicies returns the grants installed on a fresh database.
// Operators review reservations; only admins manage spaces and settings and
// deactivate reservations.
func DefaultPolicies() []Policy {
	var policies []Policy
	grant := func(role authorization.UserRole, resource vo.Resource, actions ...vo.Action) {
		for _, a := range actions {
			policies = append(policies, Policy{Role: role, Resource: resource, Action: a})
		}
	}

	grant(authorization.RoleUser, vo.ResourceSpace, vo.ActionRead, vo.ActionList)
	grant(authorization.RoleUser, vo.ResourceReservation, vo.ActionCreate, vo.ActionRead, vo.ActionList, vo.ActionCancel)
	grant(authorization.RoleUser, vo.ResourceNotification, vo.ActionRead, vo.ActionList, vo.ActionUpdate)

	grant(authorization.RoleOperator, vo.ResourceSpace, vo.ActionRead, vo.ActionList)
	grant(authorization.RoleOperator, vo.ResourceReservation,
		vo.ActionCreate, vo.ActionRead, vo.ActionList, vo.ActionCancel,
		vo.ActionUpdate, vo.ActionApprove, vo.ActionReject, vo.ActionReactivate)
	grant(authorization.RoleOperator, vo.ResourceSetting, vo.ActionRead, vo.ActionList)
	grant(authorization.RoleOperator, vo.ResourceNotification, vo.ActionRead, vo.ActionList, vo.ActionUpdate)

	grant(authorization.RoleAdmin, vo.ResourceSpace,
		vo.ActionCreate, vo.ActionRead, vo.ActionList, vo.ActionUpdate, vo.ActionDelete)
	grant(authorization.RoleAdmin, vo.ResourceReservation,
		vo.ActionCreate, vo.ActionRead, vo.ActionList, vo.ActionCancel,
		vo.ActionUpdate, vo.ActionApprove, vo.ActionReject, vo.ActionDelete, vo.ActionReactivate)
	grant(authorization.RoleAdmin, vo.ResourceSetting, vo.ActionRead, vo.ActionList, vo.ActionUpdate)
	grant(authorization.RoleAdmin, vo.ResourceNotification, vo.ActionRead, vo.ActionList, vo.ActionUpdate)

	return policies
}
