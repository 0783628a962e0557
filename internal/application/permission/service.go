// Package permission administers the role policies consulted by the HTTP
// permission middleware.
package permission

import (
	"fmt"

	"github.com/spacebook/spacebook/internal/domain/permission"
	vo "github.com/spacebook/spacebook/internal/domain/permission/value_objects"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type Service struct {
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func NewService(enforcer permission.PermissionEnforcer, logger logger.Interface) *Service {
	return &Service{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (s *Service) CheckPermission(role, resource, action string) (bool, error) {
	p, err := parsePolicy(role, resource, action)
	if err != nil {
		return false, err
	}
	return s.enforcer.Enforce(p.Role, p.Resource, p.Action)
}

// GrantPermission adds a policy. Granting an existing policy is a no-op.
func (s *Service) GrantPermission(role, resource, action string) error {
	p, err := parsePolicy(role, resource, action)
	if err != nil {
		return err
	}
	if err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
		return fmt.Errorf("failed to grant %s %s to %s: %w", p.Action, p.Resource, p.Role, err)
	}
	s.logger.Infow("permission granted", "role", p.Role, "resource", p.Resource, "action", p.Action)
	return nil
}

func (s *Service) RevokePermission(role, resource, action string) error {
	p, err := parsePolicy(role, resource, action)
	if err != nil {
		return err
	}
	if err := s.enforcer.RemovePolicy(p.Role, p.Resource, p.Action); err != nil {
		return fmt.Errorf("failed to revoke %s %s from %s: %w", p.Action, p.Resource, p.Role, err)
	}
	s.logger.Infow("permission revoked", "role", p.Role, "resource", p.Resource, "action", p.Action)
	return nil
}

func parsePolicy(role, resource, action string) (permission.Policy, error) {
	r := authorization.UserRole(role)
	if !r.IsValid() {
		return permission.Policy{}, errors.NewValidationError("invalid role", role)
	}
	res, err := vo.NewResource(resource)
	if err != nil {
		return permission.Policy{}, errors.NewValidationError("invalid resource", resource)
	}
	act, err := vo.NewAction(action)
	if err != nil {
		return permission.Policy{}, errors.NewValidationError("invalid action", action)
	}
	return permission.Policy{Role: r, Resource: res, Action: act}, nil
}
