package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"learnhub/internal/infrastructure/persistence/models"
	"learnhub/internal/infrastructure/repository"
	"learnhub/internal/shared/constants"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.RoleModel{},
		&models.PermissionModel{},
		&models.RolePermissionModel{},
	)
	require.NoError(t, err)

	return gdb
}

func TestSeeder_Run(t *testing.T) {
	gdb := setupTestDB(t)
	seeder := NewSeeder(gdb)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	roleRepo := repository.NewRoleRepository(gdb)
	permRepo := repository.NewPermissionRepository(gdb)

	t.Run("creates the default roles", func(t *testing.T) {
		for _, seed := range constants.DefaultRoles {
			role, err := roleRepo.GetByName(ctx, seed.Name)
			require.NoError(t, err)
			require.NotNil(t, role, "role %q should exist", seed.Name)
		}
	})

	t.Run("creates one permission per module and action", func(t *testing.T) {
		perms, err := permRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, perms, len(constants.DefaultPermissionModules)*4)
	})

	t.Run("admin holds the full matrix", func(t *testing.T) {
		admin, err := roleRepo.GetByName(ctx, "Admin")
		require.NoError(t, err)

		caps, err := roleRepo.GetCapabilities(ctx, admin.ID())
		require.NoError(t, err)
		assert.Len(t, caps, len(constants.DefaultPermissionModules)*4)
	})

	t.Run("employee only reads courses", func(t *testing.T) {
		employee, err := roleRepo.GetByName(ctx, "Employee")
		require.NoError(t, err)

		caps, err := roleRepo.GetCapabilities(ctx, employee.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"courses:read"}, caps.Strings())
	})

	t.Run("trainer grants match the seed list", func(t *testing.T) {
		trainer, err := roleRepo.GetByName(ctx, "Trainer")
		require.NoError(t, err)

		caps, err := roleRepo.GetCapabilities(ctx, trainer.ID())
		require.NoError(t, err)
		assert.ElementsMatch(t, constants.DefaultRoleCapabilities["Trainer"], caps.Strings())
	})
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	gdb := setupTestDB(t)
	seeder := NewSeeder(gdb)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	permRepo := repository.NewPermissionRepository(gdb)
	perms, err := permRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, perms, len(constants.DefaultPermissionModules)*4)

	roleRepo := repository.NewRoleRepository(gdb)
	roles, err := roleRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, len(constants.DefaultRoles))
}
