package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/domain/accesscontrol"
	"learnhub/internal/shared/errors"
)

func createTestRole(t *testing.T, name string) *accesscontrol.Role {
	t.Helper()
	role, err := accesscontrol.NewRole(name, "test role")
	require.NoError(t, err)
	return role
}

func TestRoleRepository_CreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRoleRepository(gdb)
	ctx := context.Background()

	t.Run("create sets id and round-trips", func(t *testing.T) {
		role := createTestRole(t, "Trainer")
		err := repo.Create(ctx, role)
		require.NoError(t, err)
		assert.NotZero(t, role.ID())

		found, err := repo.GetByName(ctx, "Trainer")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, role.ID(), found.ID())
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		role := createTestRole(t, "Trainer")
		err := repo.Create(ctx, role)
		assert.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("missing role returns nil", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestRoleRepository_GetCapabilities(t *testing.T) {
	gdb := setupTestDB(t)
	roleRepo := NewRoleRepository(gdb)
	permRepo := NewPermissionRepository(gdb)
	ctx := context.Background()

	role := createTestRole(t, "Employee")
	require.NoError(t, roleRepo.Create(ctx, role))

	coursesRead := createTestPermission(t, "courses", accesscontrol.ActionRead, nil)
	usersRead := createTestPermission(t, "users", accesscontrol.ActionRead, nil)
	require.NoError(t, permRepo.Create(ctx, coursesRead))
	require.NoError(t, permRepo.Create(ctx, usersRead))

	require.NoError(t, roleRepo.LinkPermission(ctx, role.ID(), coursesRead.ID()))
	require.NoError(t, roleRepo.LinkPermission(ctx, role.ID(), usersRead.ID()))

	t.Run("resolves linked capabilities", func(t *testing.T) {
		caps, err := roleRepo.GetCapabilities(ctx, role.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"courses:read", "users:read"}, caps.Strings())
	})

	t.Run("reflects mapping changes immediately", func(t *testing.T) {
		require.NoError(t, permRepo.ReplaceRoleLinks(ctx, usersRead.ID(), nil))

		caps, err := roleRepo.GetCapabilities(ctx, role.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"courses:read"}, caps.Strings())
	})

	t.Run("role with no links resolves empty", func(t *testing.T) {
		bare := createTestRole(t, "Bare")
		require.NoError(t, roleRepo.Create(ctx, bare))

		caps, err := roleRepo.GetCapabilities(ctx, bare.ID())
		require.NoError(t, err)
		assert.Empty(t, caps)
	})
}

func TestRoleRepository_LinkPermissionIdempotent(t *testing.T) {
	gdb := setupTestDB(t)
	roleRepo := NewRoleRepository(gdb)
	permRepo := NewPermissionRepository(gdb)
	ctx := context.Background()

	role := createTestRole(t, "Admin")
	require.NoError(t, roleRepo.Create(ctx, role))

	perm := createTestPermission(t, "roles", accesscontrol.ActionCreate, nil)
	require.NoError(t, permRepo.Create(ctx, perm))

	require.NoError(t, roleRepo.LinkPermission(ctx, role.ID(), perm.ID()))
	require.NoError(t, roleRepo.LinkPermission(ctx, role.ID(), perm.ID()))

	perms, err := roleRepo.GetPermissions(ctx, role.ID())
	require.NoError(t, err)
	assert.Len(t, perms, 1)
}
