package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"learnhub/internal/domain/accesscontrol"
	"learnhub/internal/infrastructure/persistence/models"
	"learnhub/internal/shared/constants"
	"learnhub/internal/shared/db"
	"learnhub/internal/shared/errors"
)

type PermissionRepositoryImpl struct {
	db *gorm.DB
}

func NewPermissionRepository(gdb *gorm.DB) accesscontrol.PermissionRepository {
	return &PermissionRepositoryImpl{db: gdb}
}

func (r *PermissionRepositoryImpl) Create(ctx context.Context, perm *accesscontrol.Permission) error {
	model := &models.PermissionModel{
		Module: perm.Module(),
		Action: perm.Action().String(),
		RoleID: perm.RoleID(),
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("permission already exists for this module, action and role")
		}
		return fmt.Errorf("failed to create permission: %w", err)
	}

	return perm.SetID(model.ID)
}

func (r *PermissionRepositoryImpl) GetByID(ctx context.Context, id uint) (*accesscontrol.Permission, error) {
	var model models.PermissionModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}
	return permissionModelToEntity(&model)
}

func (r *PermissionRepositoryImpl) FindByTriple(ctx context.Context, module string, action accesscontrol.Action, roleID *uint, excludeID uint) (*accesscontrol.Permission, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Where("module = ? AND action = ?", module, action.String())

	if roleID == nil {
		query = query.Where("role_id IS NULL")
	} else {
		query = query.Where("role_id = ?", *roleID)
	}
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var model models.PermissionModel
	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find permission by triple: %w", err)
	}
	return permissionModelToEntity(&model)
}

func (r *PermissionRepositoryImpl) List(ctx context.Context) ([]*accesscontrol.Permission, error) {
	var permModels []*models.PermissionModel
	if err := db.GetTxFromContext(ctx, r.db).Order("module, action, id").Find(&permModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return permissionModelsToEntities(permModels)
}

func (r *PermissionRepositoryImpl) Update(ctx context.Context, perm *accesscontrol.Permission) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PermissionModel{}).
		Where("id = ?", perm.ID()).
		Updates(map[string]interface{}{
			"module":     perm.Module(),
			"action":     perm.Action().String(),
			"role_id":    perm.RoleID(),
			"updated_at": perm.UpdatedAt(),
		})

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("permission already exists for this module, action and role")
		}
		return fmt.Errorf("failed to update permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("permission not found")
	}
	return nil
}

func (r *PermissionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PermissionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("permission not found")
	}
	return nil
}

// ReplaceRoleLinks resyncs the mapping rows for the permission to the
// given role set. The incoming list replaces the stored set, it is not
// merged into it.
func (r *PermissionRepositoryImpl) ReplaceRoleLinks(ctx context.Context, permissionID uint, roleIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("permission_id = ?", permissionID).Delete(&models.RolePermissionModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear role links: %w", err)
	}

	for _, roleID := range roleIDs {
		link := &models.RolePermissionModel{
			RoleID:       roleID,
			PermissionID: permissionID,
		}
		if err := tx.Create(link).Error; err != nil {
			if errors.IsDuplicateError(err) {
				continue
			}
			return fmt.Errorf("failed to link permission to role %d: %w", roleID, err)
		}
	}
	return nil
}

func (r *PermissionRepositoryImpl) DeleteRoleLinks(ctx context.Context, permissionID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("permission_id = ?", permissionID).
		Delete(&models.RolePermissionModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete role links: %w", err)
	}
	return nil
}

func (r *PermissionRepositoryImpl) RolesWithAccess(ctx context.Context, permissionID uint) ([]*accesscontrol.Role, error) {
	var roleModels []*models.RoleModel
	err := db.GetTxFromContext(ctx, r.db).
		Joins("JOIN "+constants.TableRolePermissions+" rp ON rp.role_id = "+constants.TableRoles+".id").
		Where("rp.permission_id = ?", permissionID).
		Order(constants.TableRoles + ".id").
		Find(&roleModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get roles with access: %w", err)
	}

	roles := make([]*accesscontrol.Role, 0, len(roleModels))
	for _, model := range roleModels {
		role, err := accesscontrol.ReconstructRole(model.ID, model.Name, model.Description, model.CreatedAt, model.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func permissionModelToEntity(model *models.PermissionModel) (*accesscontrol.Permission, error) {
	action, err := accesscontrol.NewAction(model.Action)
	if err != nil {
		return nil, fmt.Errorf("stored action %q is invalid: %w", model.Action, err)
	}
	capability, err := accesscontrol.NewCapability(model.Module, action)
	if err != nil {
		return nil, fmt.Errorf("stored capability is invalid: %w", err)
	}
	return accesscontrol.ReconstructPermission(model.ID, capability, model.RoleID, model.CreatedAt, model.UpdatedAt)
}

func permissionModelsToEntities(permModels []*models.PermissionModel) ([]*accesscontrol.Permission, error) {
	permissions := make([]*accesscontrol.Permission, 0, len(permModels))
	for _, model := range permModels {
		perm, err := permissionModelToEntity(model)
		if err != nil {
			return nil, err
		}
		permissions = append(permissions, perm)
	}
	return permissions, nil
}
