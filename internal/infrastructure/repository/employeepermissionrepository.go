package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"learnhub/internal/domain/catalog"
	"learnhub/internal/infrastructure/persistence/models"
	"learnhub/internal/shared/db"
	"learnhub/internal/shared/errors"
)

type EmployeePermissionRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployeePermissionRepository(gdb *gorm.DB) catalog.EmployeePermissionRepository {
	return &EmployeePermissionRepositoryImpl{db: gdb}
}

func (r *EmployeePermissionRepositoryImpl) Create(ctx context.Context, ep *catalog.EmployeePermission) error {
	flags := ep.Flags()
	model := &models.EmployeePermissionModel{
		EmpID:       ep.EmployeeID(),
		EntityID:    ep.EntityID(),
		AdminAccess: flags.AdminAccess,
		Create:      flags.Create,
		Read:        flags.Read,
		Update:      flags.Update,
		Delete:      flags.Delete,
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("permission already exists for this employee and entity")
		}
		return fmt.Errorf("failed to create employee permission: %w", err)
	}
	return ep.SetID(model.ID)
}

func (r *EmployeePermissionRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.EmployeePermission, error) {
	var model models.EmployeePermissionModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee permission: %w", err)
	}
	return employeePermissionModelToEntity(&model)
}

func (r *EmployeePermissionRepositoryImpl) GetByPair(ctx context.Context, employeeID, entityID uint) (*catalog.EmployeePermission, error) {
	var model models.EmployeePermissionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("emp_id = ? AND entity_id = ?", employeeID, entityID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee permission by pair: %w", err)
	}
	return employeePermissionModelToEntity(&model)
}

func (r *EmployeePermissionRepositoryImpl) List(ctx context.Context) ([]*catalog.EmployeePermission, error) {
	var permModels []*models.EmployeePermissionModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&permModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list employee permissions: %w", err)
	}

	perms := make([]*catalog.EmployeePermission, 0, len(permModels))
	for _, model := range permModels {
		ep, err := employeePermissionModelToEntity(model)
		if err != nil {
			return nil, err
		}
		perms = append(perms, ep)
	}
	return perms, nil
}

func (r *EmployeePermissionRepositoryImpl) Update(ctx context.Context, ep *catalog.EmployeePermission) error {
	flags := ep.Flags()
	result := db.GetTxFromContext(ctx, r.db).Model(&models.EmployeePermissionModel{}).
		Where("id = ?", ep.ID()).
		Updates(map[string]interface{}{
			"emp_id":       ep.EmployeeID(),
			"entity_id":    ep.EntityID(),
			"admin_access": flags.AdminAccess,
			"can_create":   flags.Create,
			"can_read":     flags.Read,
			"can_update":   flags.Update,
			"can_delete":   flags.Delete,
			"updated_at":   ep.UpdatedAt(),
		})

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("permission already exists for this employee and entity")
		}
		return fmt.Errorf("failed to update employee permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("employee permission not found")
	}
	return nil
}

func (r *EmployeePermissionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.EmployeePermissionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("employee permission not found")
	}
	return nil
}

func employeePermissionModelToEntity(model *models.EmployeePermissionModel) (*catalog.EmployeePermission, error) {
	flags := catalog.AccessFlags{
		AdminAccess: model.AdminAccess,
		Create:      model.Create,
		Read:        model.Read,
		Update:      model.Update,
		Delete:      model.Delete,
	}
	ep, err := catalog.ReconstructEmployeePermission(
		model.ID,
		model.EmpID,
		model.EntityID,
		flags,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct employee permission: %w", err)
	}
	return ep, nil
}
