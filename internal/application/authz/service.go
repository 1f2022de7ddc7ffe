// Package authz is the authorizer: it turns "does this principal hold
// these capabilities" into a decision. Every check reads the role and
// its grants fresh so permission edits take effect on the next request
// without re-login.
package authz

import (
	"context"
	"fmt"

	"learnhub/internal/domain/accesscontrol"
	"learnhub/internal/domain/user"
	"learnhub/internal/shared/errors"
)

type Service struct {
	userRepo user.Repository
	roleRepo accesscontrol.RoleRepository
}

func NewService(userRepo user.Repository, roleRepo accesscontrol.RoleRepository) *Service {
	return &Service{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// ResolveCapabilities returns the principal's current capability set:
// the union of module:action pairs linked to their role right now.
func (s *Service) ResolveCapabilities(ctx context.Context, userID uint) (accesscontrol.CapabilitySet, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load principal: %w", err)
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("user no longer exists")
	}

	caps, err := s.roleRepo.GetCapabilities(ctx, u.RoleID())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve capabilities: %w", err)
	}
	return caps, nil
}

// Authorize allows only when the principal holds every required
// capability. Missing any one of them is Forbidden.
func (s *Service) Authorize(ctx context.Context, userID uint, required ...accesscontrol.Capability) error {
	caps, err := s.ResolveCapabilities(ctx, userID)
	if err != nil {
		return err
	}

	if !caps.HasAll(required...) {
		return errors.NewForbiddenError("insufficient permissions")
	}
	return nil
}

// AuthorizeSelfOr lets a principal act on their own resource without
// any capabilities; acting on someone else falls through to Authorize.
// Callers with field-level escalation rules (role changes on
// self-update) enforce those separately.
func (s *Service) AuthorizeSelfOr(ctx context.Context, userID, targetID uint, required ...accesscontrol.Capability) error {
	if userID == targetID {
		return nil
	}
	return s.Authorize(ctx, userID, required...)
}
