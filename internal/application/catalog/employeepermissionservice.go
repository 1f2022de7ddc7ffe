package catalog

import (
	"context"
	"fmt"

	"learnhub/internal/domain/catalog"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
)

type EmployeePermissionInput struct {
	EmployeeID  *uint
	EntityID    *uint
	Create      *bool
	Read        *bool
	Update      *bool
	Delete      *bool
	AdminAccess *bool
}

type EmployeePermissionService struct {
	repo       catalog.EmployeePermissionRepository
	entityRepo catalog.SystemEntityRepository
	logger     logger.Interface
}

func NewEmployeePermissionService(repo catalog.EmployeePermissionRepository, entityRepo catalog.SystemEntityRepository, log logger.Interface) *EmployeePermissionService {
	return &EmployeePermissionService{
		repo:       repo,
		entityRepo: entityRepo,
		logger:     log,
	}
}

func (s *EmployeePermissionService) Create(ctx context.Context, employeeID, entityID uint, input EmployeePermissionInput) (*EmployeePermissionView, error) {
	if err := s.validateEntity(ctx, entityID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByPair(ctx, employeeID, entityID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("permission override already exists for this employee and entity")
	}

	ep, err := catalog.NewEmployeePermission(employeeID, entityID, flagsFrom(input))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, ep); err != nil {
		return nil, err
	}

	s.logger.Infow("employee permission created", "employee_id", employeeID, "entity_id", entityID)

	view := NewEmployeePermissionView(ep)
	return &view, nil
}

func (s *EmployeePermissionService) Get(ctx context.Context, id uint) (*EmployeePermissionView, error) {
	ep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ep == nil {
		return nil, errors.NewNotFoundError("employee permission not found")
	}

	view := NewEmployeePermissionView(ep)
	return &view, nil
}

func (s *EmployeePermissionService) List(ctx context.Context) ([]EmployeePermissionView, error) {
	perms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]EmployeePermissionView, 0, len(perms))
	for _, ep := range perms {
		views = append(views, NewEmployeePermissionView(ep))
	}
	return views, nil
}

func (s *EmployeePermissionService) Update(ctx context.Context, id uint, input EmployeePermissionInput) (*EmployeePermissionView, error) {
	ep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ep == nil {
		return nil, errors.NewNotFoundError("employee permission not found")
	}

	employeeID := ep.EmployeeID()
	entityID := ep.EntityID()
	if input.EmployeeID != nil {
		employeeID = *input.EmployeeID
	}
	if input.EntityID != nil && *input.EntityID != ep.EntityID() {
		if err := s.validateEntity(ctx, *input.EntityID); err != nil {
			return nil, err
		}
		entityID = *input.EntityID
	}

	if employeeID != ep.EmployeeID() || entityID != ep.EntityID() {
		existing, err := s.repo.GetByPair(ctx, employeeID, entityID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID() != ep.ID() {
			return nil, errors.NewConflictError("permission override already exists for this employee and entity")
		}
		if err := ep.SetEmployeeID(employeeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := ep.SetEntityID(entityID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	flags := ep.Flags()
	if input.Create != nil {
		flags.Create = *input.Create
	}
	if input.Read != nil {
		flags.Read = *input.Read
	}
	if input.Update != nil {
		flags.Update = *input.Update
	}
	if input.Delete != nil {
		flags.Delete = *input.Delete
	}
	if input.AdminAccess != nil {
		flags.AdminAccess = *input.AdminAccess
	}
	ep.SetFlags(flags)

	if err := s.repo.Update(ctx, ep); err != nil {
		return nil, err
	}

	s.logger.Infow("employee permission updated", "employee_permission_id", ep.ID())

	view := NewEmployeePermissionView(ep)
	return &view, nil
}

func (s *EmployeePermissionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("employee permission deleted", "employee_permission_id", id)
	return nil
}

func (s *EmployeePermissionService) validateEntity(ctx context.Context, entityID uint) error {
	exists, err := s.entityRepo.Exists(ctx, entityID)
	if err != nil {
		return fmt.Errorf("failed to check system entity existence: %w", err)
	}
	if !exists {
		return errors.NewNotFoundError("system entity not found")
	}
	return nil
}

func flagsFrom(input EmployeePermissionInput) catalog.AccessFlags {
	flags := catalog.DefaultAccessFlags()
	if input.Create != nil {
		flags.Create = *input.Create
	}
	if input.Read != nil {
		flags.Read = *input.Read
	}
	if input.Update != nil {
		flags.Update = *input.Update
	}
	if input.Delete != nil {
		flags.Delete = *input.Delete
	}
	if input.AdminAccess != nil {
		flags.AdminAccess = *input.AdminAccess
	}
	return flags
}
