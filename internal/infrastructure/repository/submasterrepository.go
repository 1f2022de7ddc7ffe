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

type SubMasterRepositoryImpl struct {
	db *gorm.DB
}

func NewSubMasterRepository(gdb *gorm.DB) catalog.SubMasterRepository {
	return &SubMasterRepositoryImpl{db: gdb}
}

func (r *SubMasterRepositoryImpl) Create(ctx context.Context, sm *catalog.SubMaster) error {
	model := &models.SubMasterModel{
		MasterID: sm.MasterID(),
		ParentID: sm.ParentID(),
		Name:     sm.Name(),
		Code:     sm.Code(),
		IsActive: sm.IsActive(),
		Sequence: sm.Sequence(),
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create sub-master: %w", err)
	}
	return sm.SetID(model.ID)
}

func (r *SubMasterRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.SubMaster, error) {
	var model models.SubMasterModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sub-master: %w", err)
	}
	return subMasterModelToEntity(&model)
}

func (r *SubMasterRepositoryImpl) List(ctx context.Context) ([]*catalog.SubMaster, error) {
	var subModels []*models.SubMasterModel
	if err := db.GetTxFromContext(ctx, r.db).Order("master_id, sequence, id").Find(&subModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sub-masters: %w", err)
	}

	subMasters := make([]*catalog.SubMaster, 0, len(subModels))
	for _, model := range subModels {
		sm, err := subMasterModelToEntity(model)
		if err != nil {
			return nil, err
		}
		subMasters = append(subMasters, sm)
	}
	return subMasters, nil
}

func (r *SubMasterRepositoryImpl) Update(ctx context.Context, sm *catalog.SubMaster) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SubMasterModel{}).
		Where("id = ?", sm.ID()).
		Updates(map[string]interface{}{
			"master_id":  sm.MasterID(),
			"parent_id":  sm.ParentID(),
			"name":       sm.Name(),
			"code":       sm.Code(),
			"is_active":  sm.IsActive(),
			"sequence":   sm.Sequence(),
			"updated_at": sm.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update sub-master: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("sub-master not found")
	}
	return nil
}

func (r *SubMasterRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.SubMasterModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sub-master: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("sub-master not found")
	}
	return nil
}

func (r *SubMasterRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.SubMasterModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check sub-master existence: %w", err)
	}
	return count > 0, nil
}

func (r *SubMasterRepositoryImpl) CodeInUse(ctx context.Context, code string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SubMasterModel{}).Where("code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check sub-master code uniqueness: %w", err)
	}
	return count > 0, nil
}

// GetParentID reads only the parent pointer, which is all the cycle
// detection walk needs per hop.
func (r *SubMasterRepositoryImpl) GetParentID(ctx context.Context, id uint) (*uint, error) {
	var model models.SubMasterModel
	err := db.GetTxFromContext(ctx, r.db).Select("id", "parent_id").First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("sub-master not found")
		}
		return nil, fmt.Errorf("failed to get sub-master parent: %w", err)
	}
	return model.ParentID, nil
}

func subMasterModelToEntity(model *models.SubMasterModel) (*catalog.SubMaster, error) {
	sm, err := catalog.ReconstructSubMaster(
		model.ID,
		model.Name,
		model.Code,
		model.MasterID,
		model.ParentID,
		model.IsActive,
		model.Sequence,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct sub-master: %w", err)
	}
	return sm, nil
}
