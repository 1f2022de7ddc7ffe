package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"learnhub/internal/domain/accesscontrol"
	infraauth "learnhub/internal/infrastructure/auth"
	"learnhub/internal/infrastructure/persistence/models"
	"learnhub/internal/infrastructure/repository"
	"learnhub/internal/shared/constants"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.RoleModel{}, &models.UserModel{}))

	roleRepo := repository.NewRoleRepository(gdb)
	for _, name := range []string{"Admin", "Trainer", "Employee"} {
		role, err := accesscontrol.NewRole(name, "")
		require.NoError(t, err)
		require.NoError(t, roleRepo.Create(context.Background(), role))
	}

	svc := NewService(
		repository.NewUserRepository(gdb),
		roleRepo,
		infraauth.NewJWTService("test-secret", 1),
		infraauth.NewBcryptPasswordHasher(4),
		logger.NewLogger(),
	)
	return svc, gdb
}

func TestService_Register(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	t.Run("defaults the role to Employee", func(t *testing.T) {
		result, err := svc.Register(ctx, RegisterInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Username:  "ada",
			Email:     "ada@example.com",
			Password:  "s3cret-pass",
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "ada", result.User.Username)

		employee, err := svc.roleRepo.GetByName(ctx, constants.DefaultSignupRole)
		require.NoError(t, err)
		assert.Equal(t, employee.ID(), result.User.RoleID)
	})

	t.Run("honors an explicit role name", func(t *testing.T) {
		result, err := svc.Register(ctx, RegisterInput{
			FirstName: "Grace",
			LastName:  "Hopper",
			Username:  "grace",
			Email:     "grace@example.com",
			Password:  "s3cret-pass",
			RoleName:  "Trainer",
		})
		require.NoError(t, err)

		trainer, err := svc.roleRepo.GetByName(ctx, "Trainer")
		require.NoError(t, err)
		assert.Equal(t, trainer.ID(), result.User.RoleID)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{
			FirstName: "Nob",
			LastName:  "Ody",
			Username:  "nobody",
			Email:     "nobody@example.com",
			Password:  "s3cret-pass",
			RoleName:  "Superuser",
		})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{
			FirstName: "Ada",
			LastName:  "Again",
			Username:  "ada2",
			Email:     "ada@example.com",
			Password:  "s3cret-pass",
		})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{
			FirstName: "Ada",
			LastName:  "Again",
			Username:  "ada",
			Email:     "ada2@example.com",
			Password:  "s3cret-pass",
		})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("requires a password", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{
			FirstName: "No",
			LastName:  "Pass",
			Username:  "nopass",
			Email:     "nopass@example.com",
		})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestService_Login(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)

	t.Run("authenticates by email", func(t *testing.T) {
		result, err := svc.Login(ctx, LoginInput{Identifier: "ada@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "ada", result.User.Username)
	})

	t.Run("authenticates by username", func(t *testing.T) {
		result, err := svc.Login(ctx, LoginInput{Identifier: "ada", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("reports the same error for unknown user and wrong password", func(t *testing.T) {
		_, unknownErr := svc.Login(ctx, LoginInput{Identifier: "ghost", Password: "s3cret-pass"})
		_, wrongPassErr := svc.Login(ctx, LoginInput{Identifier: "ada", Password: "wrong-pass"})

		require.Error(t, unknownErr)
		require.Error(t, wrongPassErr)
		assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())

		appErr, ok := unknownErr.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})
}
