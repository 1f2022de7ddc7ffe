package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"learnhub/internal/domain/accesscontrol"
	userDomain "learnhub/internal/domain/user"
	"learnhub/internal/infrastructure/persistence/models"
	"learnhub/internal/infrastructure/repository"
	"learnhub/internal/shared/errors"
)

type fixture struct {
	svc      *Service
	userRepo userDomain.Repository
	roleRepo accesscontrol.RoleRepository
	permRepo accesscontrol.PermissionRepository
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.RoleModel{},
		&models.UserModel{},
		&models.PermissionModel{},
		&models.RolePermissionModel{},
	))

	userRepo := repository.NewUserRepository(gdb)
	roleRepo := repository.NewRoleRepository(gdb)
	return &fixture{
		svc:      NewService(userRepo, roleRepo),
		userRepo: userRepo,
		roleRepo: roleRepo,
		permRepo: repository.NewPermissionRepository(gdb),
	}
}

func (f *fixture) createRole(t *testing.T, name string, capabilities ...string) *accesscontrol.Role {
	t.Helper()
	ctx := context.Background()

	role, err := accesscontrol.NewRole(name, "")
	require.NoError(t, err)
	require.NoError(t, f.roleRepo.Create(ctx, role))

	for _, c := range capabilities {
		capability, err := accesscontrol.ParseCapability(c)
		require.NoError(t, err)
		perm, err := accesscontrol.NewPermission(capability, nil)
		require.NoError(t, err)
		require.NoError(t, f.permRepo.Create(ctx, perm))
		require.NoError(t, f.roleRepo.LinkPermission(ctx, role.ID(), perm.ID()))
	}
	return role
}

func (f *fixture) createUser(t *testing.T, username string, roleID uint) *userDomain.User {
	t.Helper()
	u, err := userDomain.NewUser("Test", "User", username, username+"@example.com", "hash", roleID)
	require.NoError(t, err)
	require.NoError(t, f.userRepo.Create(context.Background(), u))
	return u
}

func TestService_ResolveCapabilities(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	role := f.createRole(t, "Trainer", "courses:create", "courses:read")
	u := f.createUser(t, "trainer", role.ID())

	caps, err := f.svc.ResolveCapabilities(ctx, u.ID())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"courses:create", "courses:read"}, caps.Strings())

	t.Run("unknown principal is unauthorized", func(t *testing.T) {
		_, err := f.svc.ResolveCapabilities(ctx, 9999)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})
}

func TestService_Authorize(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	role := f.createRole(t, "Trainer", "courses:create", "courses:read")
	u := f.createUser(t, "trainer", role.ID())

	capCreate := accesscontrol.MustCapability("courses:create")
	capRead := accesscontrol.MustCapability("courses:read")
	capDelete := accesscontrol.MustCapability("courses:delete")

	t.Run("allows a held capability", func(t *testing.T) {
		assert.NoError(t, f.svc.Authorize(ctx, u.ID(), capRead))
	})

	t.Run("requires every listed capability", func(t *testing.T) {
		err := f.svc.Authorize(ctx, u.ID(), capCreate, capDelete)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("forbids a missing capability", func(t *testing.T) {
		err := f.svc.Authorize(ctx, u.ID(), capDelete)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("sees permission changes without re-login", func(t *testing.T) {
		capability := accesscontrol.MustCapability("courses:delete")
		perm, err := accesscontrol.NewPermission(capability, nil)
		require.NoError(t, err)
		require.NoError(t, f.permRepo.Create(ctx, perm))
		require.NoError(t, f.roleRepo.LinkPermission(ctx, role.ID(), perm.ID()))

		assert.NoError(t, f.svc.Authorize(ctx, u.ID(), capDelete))
	})
}

func TestService_AuthorizeSelfOr(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	role := f.createRole(t, "Employee", "courses:read")
	u := f.createUser(t, "emp", role.ID())
	other := f.createUser(t, "other", role.ID())

	capUpdate := accesscontrol.MustCapability("users:update")

	t.Run("self access needs no capability", func(t *testing.T) {
		assert.NoError(t, f.svc.AuthorizeSelfOr(ctx, u.ID(), u.ID(), capUpdate))
	})

	t.Run("acting on another user needs the capability", func(t *testing.T) {
		err := f.svc.AuthorizeSelfOr(ctx, u.ID(), other.ID(), capUpdate)
		assert.True(t, errors.IsForbiddenError(err))
	})
}
