package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"learnhub/internal/domain/user"
	"learnhub/internal/infrastructure/persistence/models"
	"learnhub/internal/shared/db"
	"learnhub/internal/shared/errors"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(gdb *gorm.DB) user.Repository {
	return &UserRepositoryImpl{db: gdb}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := &models.UserModel{
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		RoleID:       u.RoleID(),
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("email or username already in use")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return userModelToEntity(&model)
}

// GetByIdentifier resolves a login identifier that may be either the
// email or the username, in a single lookup.
func (r *UserRepositoryImpl) GetByIdentifier(ctx context.Context, identifier string) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("email = ? OR username = ?", identifier, identifier).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by identifier: %w", err)
	}
	return userModelToEntity(&model)
}

func (r *UserRepositoryImpl) List(ctx context.Context) ([]*user.User, error) {
	var userModels []*models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		u, err := userModelToEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"first_name":    u.FirstName(),
			"last_name":     u.LastName(),
			"username":      u.Username(),
			"email":         u.Email(),
			"password_hash": u.PasswordHash(),
			"role_id":       u.RoleID(),
			"updated_at":    u.UpdatedAt(),
		})

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("email or username already in use")
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepositoryImpl) EmailInUse(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.fieldInUse(ctx, "email", email, excludeID)
}

func (r *UserRepositoryImpl) UsernameInUse(ctx context.Context, username string, excludeID uint) (bool, error) {
	return r.fieldInUse(ctx, "username", username, excludeID)
}

func (r *UserRepositoryImpl) fieldInUse(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Where(column+" = ?", value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s uniqueness: %w", column, err)
	}
	return count > 0, nil
}

func userModelToEntity(model *models.UserModel) (*user.User, error) {
	u, err := user.ReconstructUser(
		model.ID,
		model.FirstName,
		model.LastName,
		model.Username,
		model.Email,
		model.PasswordHash,
		model.RoleID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user: %w", err)
	}
	return u, nil
}
