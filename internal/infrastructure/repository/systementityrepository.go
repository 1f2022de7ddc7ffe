package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"learnhub/internal/domain/catalog"
	"learnhub/internal/infrastructure/persistence/models"
	"learnhub/internal/shared/db"
)

type SystemEntityRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemEntityRepository(gdb *gorm.DB) catalog.SystemEntityRepository {
	return &SystemEntityRepositoryImpl{db: gdb}
}

func (r *SystemEntityRepositoryImpl) Create(ctx context.Context, entity *catalog.SystemEntity) error {
	model := &models.SystemEntityModel{
		Name:     entity.Name(),
		Code:     entity.Code(),
		IsActive: entity.IsActive(),
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create system entity: %w", err)
	}
	return entity.SetID(model.ID)
}

func (r *SystemEntityRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.SystemEntity, error) {
	var model models.SystemEntityModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get system entity: %w", err)
	}
	return systemEntityModelToEntity(&model)
}

func (r *SystemEntityRepositoryImpl) List(ctx context.Context) ([]*catalog.SystemEntity, error) {
	var entityModels []*models.SystemEntityModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&entityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list system entities: %w", err)
	}

	entities := make([]*catalog.SystemEntity, 0, len(entityModels))
	for _, model := range entityModels {
		entity, err := systemEntityModelToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (r *SystemEntityRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.SystemEntityModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check system entity existence: %w", err)
	}
	return count > 0, nil
}

func systemEntityModelToEntity(model *models.SystemEntityModel) (*catalog.SystemEntity, error) {
	entity, err := catalog.ReconstructSystemEntity(
		model.ID,
		model.Name,
		model.Code,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct system entity: %w", err)
	}
	return entity, nil
}
