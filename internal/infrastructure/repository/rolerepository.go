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

type RoleRepositoryImpl struct {
	db *gorm.DB
}

func NewRoleRepository(gdb *gorm.DB) accesscontrol.RoleRepository {
	return &RoleRepositoryImpl{db: gdb}
}

func (r *RoleRepositoryImpl) Create(ctx context.Context, role *accesscontrol.Role) error {
	model := &models.RoleModel{
		Name:        role.Name(),
		Description: role.Description(),
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("role %q already exists", role.Name()))
		}
		return fmt.Errorf("failed to create role: %w", err)
	}

	return role.SetID(model.ID)
}

func (r *RoleRepositoryImpl) GetByID(ctx context.Context, id uint) (*accesscontrol.Role, error) {
	var model models.RoleModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return r.toEntity(&model)
}

func (r *RoleRepositoryImpl) GetByName(ctx context.Context, name string) (*accesscontrol.Role, error) {
	var model models.RoleModel
	if err := db.GetTxFromContext(ctx, r.db).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}
	return r.toEntity(&model)
}

func (r *RoleRepositoryImpl) List(ctx context.Context) ([]*accesscontrol.Role, error) {
	var roleModels []*models.RoleModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&roleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]*accesscontrol.Role, 0, len(roleModels))
	for _, model := range roleModels {
		role, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (r *RoleRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.RoleModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check role existence: %w", err)
	}
	return count > 0, nil
}

// GetCapabilities resolves the role's effective grants with one join
// over the mapping table. No caching: every call reflects the rows as
// they exist right now.
func (r *RoleRepositoryImpl) GetCapabilities(ctx context.Context, roleID uint) (accesscontrol.CapabilitySet, error) {
	type pair struct {
		Module string
		Action string
	}

	var pairs []pair
	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TablePermissions+" AS p").
		Select("p.module, p.action").
		Joins("JOIN "+constants.TableRolePermissions+" rp ON rp.permission_id = p.id").
		Where("rp.role_id = ?", roleID).
		Scan(&pairs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role capabilities: %w", err)
	}

	set := make(accesscontrol.CapabilitySet, len(pairs))
	for _, p := range pairs {
		action, err := accesscontrol.NewAction(p.Action)
		if err != nil {
			return nil, fmt.Errorf("stored action %q is invalid: %w", p.Action, err)
		}
		capability, err := accesscontrol.NewCapability(p.Module, action)
		if err != nil {
			return nil, fmt.Errorf("stored capability is invalid: %w", err)
		}
		set[capability] = struct{}{}
	}
	return set, nil
}

func (r *RoleRepositoryImpl) GetPermissions(ctx context.Context, roleID uint) ([]*accesscontrol.Permission, error) {
	var permModels []*models.PermissionModel
	err := db.GetTxFromContext(ctx, r.db).
		Joins("JOIN "+constants.TableRolePermissions+" rp ON rp.permission_id = "+constants.TablePermissions+".id").
		Where("rp.role_id = ?", roleID).
		Order(constants.TablePermissions + ".module, " + constants.TablePermissions + ".action").
		Find(&permModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get role permissions: %w", err)
	}

	return permissionModelsToEntities(permModels)
}

func (r *RoleRepositoryImpl) LinkPermission(ctx context.Context, roleID, permissionID uint) error {
	model := &models.RolePermissionModel{
		RoleID:       roleID,
		PermissionID: permissionID,
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to link permission to role: %w", err)
	}
	return nil
}

func (r *RoleRepositoryImpl) toEntity(model *models.RoleModel) (*accesscontrol.Role, error) {
	role, err := accesscontrol.ReconstructRole(
		model.ID,
		model.Name,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct role: %w", err)
	}
	return role, nil
}
