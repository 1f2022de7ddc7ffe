// Package accesscontrol manages the permission graph: permission rows,
// their role links, and the role listing with flattened capability
// strings. Multi-row mutations run in one transaction so the graph is
// never observed half-updated.
package accesscontrol

import (
	"context"
	"fmt"

	"learnhub/internal/domain/accesscontrol"
	"learnhub/internal/shared/db"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
)

type Service struct {
	roleRepo  accesscontrol.RoleRepository
	permRepo  accesscontrol.PermissionRepository
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewService(
	roleRepo accesscontrol.RoleRepository,
	permRepo accesscontrol.PermissionRepository,
	txManager *db.TransactionManager,
	log logger.Interface,
) *Service {
	return &Service{
		roleRepo:  roleRepo,
		permRepo:  permRepo,
		txManager: txManager,
		logger:    log,
	}
}

// ListRoles returns every role with its effective capability strings
// flattened from the mapping table.
func (s *Service) ListRoles(ctx context.Context) ([]RoleView, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]RoleView, 0, len(roles))
	for _, role := range roles {
		caps, err := s.roleRepo.GetCapabilities(ctx, role.ID())
		if err != nil {
			return nil, err
		}
		views = append(views, NewRoleView(role, caps.Strings()))
	}
	return views, nil
}

type CreatePermissionInput struct {
	Module string
	Action string
	RoleID *uint
	// RoleIDs, when non-nil, is the complete set of roles to link.
	RoleIDs []uint
}

type UpdatePermissionInput struct {
	Module  *string
	Action  *string
	RoleID  *uint
	RoleIDs []uint
	// ClearRoleID distinguishes "unset the owner link" from "leave it".
	ClearRoleID bool
	// SyncRoles signals that RoleIDs should replace the stored link set,
	// including replacing it with nothing.
	SyncRoles bool
}

// CreatePermission inserts a permission row and, when roleIDs are
// given, its role links, all in one transaction.
func (s *Service) CreatePermission(ctx context.Context, input CreatePermissionInput) (*PermissionView, error) {
	action, err := accesscontrol.NewAction(input.Action)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	capability, err := accesscontrol.NewCapability(input.Module, action)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.validateRoleIDs(ctx, input.RoleID, input.RoleIDs); err != nil {
		return nil, err
	}

	perm, err := accesscontrol.NewPermission(capability, input.RoleID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.permRepo.FindByTriple(txCtx, capability.Module(), action, input.RoleID, 0)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewConflictError("permission already exists for this module, action and role")
		}

		if err := s.permRepo.Create(txCtx, perm); err != nil {
			return err
		}

		if len(input.RoleIDs) > 0 {
			return s.permRepo.ReplaceRoleLinks(txCtx, perm.ID(), input.RoleIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("permission created",
		"permission_id", perm.ID(),
		"capability", perm.Name(),
		"linked_roles", len(input.RoleIDs))

	return s.viewOf(ctx, perm)
}

func (s *Service) GetPermission(ctx context.Context, id uint) (*PermissionView, error) {
	perm, err := s.permRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, errors.NewNotFoundError("permission not found")
	}
	return s.viewOf(ctx, perm)
}

// ListPermissions returns every permission with the roles currently
// granted it.
func (s *Service) ListPermissions(ctx context.Context) ([]PermissionView, error) {
	perms, err := s.permRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PermissionView, 0, len(perms))
	for _, perm := range perms {
		view, err := s.viewOf(ctx, perm)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// UpdatePermission rewrites the permission row and, when SyncRoles is
// set, replaces its role links wholesale. Delete-then-recreate keeps
// removed roles from lingering as stale links.
func (s *Service) UpdatePermission(ctx context.Context, id uint, input UpdatePermissionInput) (*PermissionView, error) {
	perm, err := s.permRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, errors.NewNotFoundError("permission not found")
	}

	module := perm.Module()
	action := perm.Action()
	if input.Module != nil {
		module = *input.Module
	}
	if input.Action != nil {
		action, err = accesscontrol.NewAction(*input.Action)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	capability, err := accesscontrol.NewCapability(module, action)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	roleID := perm.RoleID()
	if input.ClearRoleID {
		roleID = nil
	} else if input.RoleID != nil {
		roleID = input.RoleID
	}

	if err := s.validateRoleIDs(ctx, roleID, input.RoleIDs); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.permRepo.FindByTriple(txCtx, capability.Module(), action, roleID, perm.ID())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewConflictError("permission already exists for this module, action and role")
		}

		perm.SetCapability(capability)
		perm.SetRoleID(roleID)
		if err := s.permRepo.Update(txCtx, perm); err != nil {
			return err
		}

		if input.SyncRoles {
			return s.permRepo.ReplaceRoleLinks(txCtx, perm.ID(), input.RoleIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("permission updated",
		"permission_id", perm.ID(),
		"capability", perm.Name(),
		"roles_synced", input.SyncRoles)

	return s.viewOf(ctx, perm)
}

// DeletePermission removes the role links and then the row itself in
// one transaction.
func (s *Service) DeletePermission(ctx context.Context, id uint) error {
	perm, err := s.permRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if perm == nil {
		return errors.NewNotFoundError("permission not found")
	}

	err = s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.permRepo.DeleteRoleLinks(txCtx, id); err != nil {
			return err
		}
		return s.permRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("permission deleted", "permission_id", id)
	return nil
}

func (s *Service) validateRoleIDs(ctx context.Context, roleID *uint, roleIDs []uint) error {
	check := func(id uint) error {
		exists, err := s.roleRepo.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check role existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError(fmt.Sprintf("role %d not found", id))
		}
		return nil
	}

	if roleID != nil {
		if err := check(*roleID); err != nil {
			return err
		}
	}
	for _, id := range roleIDs {
		if err := check(id); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) viewOf(ctx context.Context, perm *accesscontrol.Permission) (*PermissionView, error) {
	roles, err := s.permRepo.RolesWithAccess(ctx, perm.ID())
	if err != nil {
		return nil, err
	}
	view := NewPermissionView(perm, roles)
	return &view, nil
}
