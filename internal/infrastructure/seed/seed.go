// Package seed creates the default roles, the CRUD permission matrix,
// and the role grants a fresh installation starts with. Every step is
// idempotent: rows that already exist are left untouched.
package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"learnhub/internal/domain/accesscontrol"
	"learnhub/internal/infrastructure/repository"
	"learnhub/internal/shared/constants"
	"learnhub/internal/shared/db"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
)

type Seeder struct {
	roleRepo  accesscontrol.RoleRepository
	permRepo  accesscontrol.PermissionRepository
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewSeeder(gdb *gorm.DB) *Seeder {
	return &Seeder{
		roleRepo:  repository.NewRoleRepository(gdb),
		permRepo:  repository.NewPermissionRepository(gdb),
		txManager: db.NewTransactionManager(gdb),
		logger:    logger.NewLogger().With("component", "seed"),
	}
}

// Run seeds roles, permissions and grants in one transaction so a
// partial seed never leaves the grant matrix half-built.
func (s *Seeder) Run(ctx context.Context) error {
	return s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		roles, err := s.seedRoles(txCtx)
		if err != nil {
			return err
		}

		perms, err := s.seedPermissions(txCtx)
		if err != nil {
			return err
		}

		return s.seedGrants(txCtx, roles, perms)
	})
}

func (s *Seeder) seedRoles(ctx context.Context) (map[string]*accesscontrol.Role, error) {
	roles := make(map[string]*accesscontrol.Role, len(constants.DefaultRoles))

	for _, seed := range constants.DefaultRoles {
		existing, err := s.roleRepo.GetByName(ctx, seed.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up role %q: %w", seed.Name, err)
		}
		if existing != nil {
			roles[seed.Name] = existing
			continue
		}

		role, err := accesscontrol.NewRole(seed.Name, seed.Description)
		if err != nil {
			return nil, err
		}
		if err := s.roleRepo.Create(ctx, role); err != nil {
			return nil, fmt.Errorf("failed to create role %q: %w", seed.Name, err)
		}

		s.logger.Infow("seeded role", "name", seed.Name, "role_id", role.ID())
		roles[seed.Name] = role
	}

	return roles, nil
}

func (s *Seeder) seedPermissions(ctx context.Context) (map[string]*accesscontrol.Permission, error) {
	actions := []accesscontrol.Action{
		accesscontrol.ActionCreate,
		accesscontrol.ActionRead,
		accesscontrol.ActionUpdate,
		accesscontrol.ActionDelete,
	}

	perms := make(map[string]*accesscontrol.Permission, len(constants.DefaultPermissionModules)*len(actions))

	for _, module := range constants.DefaultPermissionModules {
		for _, action := range actions {
			capability, err := accesscontrol.NewCapability(module, action)
			if err != nil {
				return nil, err
			}

			existing, err := s.permRepo.FindByTriple(ctx, capability.Module(), action, nil, 0)
			if err != nil {
				return nil, fmt.Errorf("failed to look up permission %s: %w", capability, err)
			}
			if existing != nil {
				perms[capability.String()] = existing
				continue
			}

			perm, err := accesscontrol.NewPermission(capability, nil)
			if err != nil {
				return nil, err
			}
			if err := s.permRepo.Create(ctx, perm); err != nil {
				if errors.IsConflictError(err) {
					continue
				}
				return nil, fmt.Errorf("failed to create permission %s: %w", capability, err)
			}

			perms[capability.String()] = perm
		}
	}

	s.logger.Infow("seeded permission matrix", "count", len(perms))
	return perms, nil
}

func (s *Seeder) seedGrants(ctx context.Context, roles map[string]*accesscontrol.Role, perms map[string]*accesscontrol.Permission) error {
	for name, role := range roles {
		for _, capString := range s.capabilitiesFor(name, perms) {
			perm, ok := perms[capString]
			if !ok {
				return fmt.Errorf("seed grant references unknown permission %q", capString)
			}
			if err := s.roleRepo.LinkPermission(ctx, role.ID(), perm.ID()); err != nil {
				return fmt.Errorf("failed to grant %s to role %q: %w", capString, name, err)
			}
		}
	}

	s.logger.Infow("seeded role grants", "roles", len(roles))
	return nil
}

// capabilitiesFor returns the capability strings granted to the named
// role. Admin gets the entire matrix.
func (s *Seeder) capabilitiesFor(roleName string, perms map[string]*accesscontrol.Permission) []string {
	if roleName == "Admin" {
		all := make([]string, 0, len(perms))
		for capString := range perms {
			all = append(all, capString)
		}
		return all
	}
	return constants.DefaultRoleCapabilities[roleName]
}
