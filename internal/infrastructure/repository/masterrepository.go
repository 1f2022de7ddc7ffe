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

type MasterRepositoryImpl struct {
	db *gorm.DB
}

func NewMasterRepository(gdb *gorm.DB) catalog.MasterRepository {
	return &MasterRepositoryImpl{db: gdb}
}

func (r *MasterRepositoryImpl) Create(ctx context.Context, m *catalog.Master) error {
	model := &models.MasterModel{
		Name:     m.Name(),
		Code:     m.Code(),
		IsActive: m.IsActive(),
		Sequence: m.Sequence(),
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create master: %w", err)
	}
	return m.SetID(model.ID)
}

func (r *MasterRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Master, error) {
	var model models.MasterModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get master: %w", err)
	}
	return masterModelToEntity(&model)
}

func (r *MasterRepositoryImpl) List(ctx context.Context) ([]*catalog.Master, error) {
	var masterModels []*models.MasterModel
	if err := db.GetTxFromContext(ctx, r.db).Order("sequence, id").Find(&masterModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list masters: %w", err)
	}

	masters := make([]*catalog.Master, 0, len(masterModels))
	for _, model := range masterModels {
		m, err := masterModelToEntity(model)
		if err != nil {
			return nil, err
		}
		masters = append(masters, m)
	}
	return masters, nil
}

func (r *MasterRepositoryImpl) Update(ctx context.Context, m *catalog.Master) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.MasterModel{}).
		Where("id = ?", m.ID()).
		Updates(map[string]interface{}{
			"name":       m.Name(),
			"code":       m.Code(),
			"is_active":  m.IsActive(),
			"sequence":   m.Sequence(),
			"updated_at": m.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update master: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("master not found")
	}
	return nil
}

func (r *MasterRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.MasterModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete master: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("master not found")
	}
	return nil
}

func (r *MasterRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.MasterModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check master existence: %w", err)
	}
	return count > 0, nil
}

func (r *MasterRepositoryImpl) CodeInUse(ctx context.Context, code string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.MasterModel{}).Where("code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check master code uniqueness: %w", err)
	}
	return count > 0, nil
}

func masterModelToEntity(model *models.MasterModel) (*catalog.Master, error) {
	m, err := catalog.ReconstructMaster(
		model.ID,
		model.Name,
		model.Code,
		model.IsActive,
		model.Sequence,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct master: %w", err)
	}
	return m, nil
}
