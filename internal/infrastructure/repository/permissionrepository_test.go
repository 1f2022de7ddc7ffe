package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/domain/accesscontrol"
	"learnhub/internal/shared/errors"
)

func createTestPermission(t *testing.T, module string, action accesscontrol.Action, roleID *uint) *accesscontrol.Permission {
	t.Helper()
	capability, err := accesscontrol.NewCapability(module, action)
	require.NoError(t, err)
	perm, err := accesscontrol.NewPermission(capability, roleID)
	require.NoError(t, err)
	return perm
}

func TestPermissionRepository_Create(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPermissionRepository(gdb)
	ctx := context.Background()

	t.Run("create sets id", func(t *testing.T) {
		perm := createTestPermission(t, "courses", accesscontrol.ActionRead, nil)
		err := repo.Create(ctx, perm)
		assert.NoError(t, err)
		assert.NotZero(t, perm.ID())
	})

	t.Run("duplicate triple conflicts", func(t *testing.T) {
		roleID := uint(3)
		first := createTestPermission(t, "users", accesscontrol.ActionCreate, &roleID)
		require.NoError(t, repo.Create(ctx, first))

		dup := createTestPermission(t, "users", accesscontrol.ActionCreate, &roleID)
		err := repo.Create(ctx, dup)
		assert.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("same pair under different role scope is allowed", func(t *testing.T) {
		roleA := uint(10)
		roleB := uint(11)
		require.NoError(t, repo.Create(ctx, createTestPermission(t, "masters", accesscontrol.ActionUpdate, &roleA)))
		assert.NoError(t, repo.Create(ctx, createTestPermission(t, "masters", accesscontrol.ActionUpdate, &roleB)))
	})
}

func TestPermissionRepository_FindByTriple(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPermissionRepository(gdb)
	ctx := context.Background()

	roleID := uint(2)
	perm := createTestPermission(t, "roles", accesscontrol.ActionDelete, &roleID)
	require.NoError(t, repo.Create(ctx, perm))

	t.Run("finds matching row", func(t *testing.T) {
		found, err := repo.FindByTriple(ctx, "roles", accesscontrol.ActionDelete, &roleID, 0)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, perm.ID(), found.ID())
	})

	t.Run("nil role scope does not match scoped row", func(t *testing.T) {
		found, err := repo.FindByTriple(ctx, "roles", accesscontrol.ActionDelete, nil, 0)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("excludeID skips the row itself", func(t *testing.T) {
		found, err := repo.FindByTriple(ctx, "roles", accesscontrol.ActionDelete, &roleID, perm.ID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestPermissionRepository_ReplaceRoleLinks(t *testing.T) {
	gdb := setupTestDB(t)
	permRepo := NewPermissionRepository(gdb)
	roleRepo := NewRoleRepository(gdb)
	ctx := context.Background()

	roleA := createTestRole(t, "LinkRoleA")
	roleB := createTestRole(t, "LinkRoleB")
	roleC := createTestRole(t, "LinkRoleC")
	require.NoError(t, roleRepo.Create(ctx, roleA))
	require.NoError(t, roleRepo.Create(ctx, roleB))
	require.NoError(t, roleRepo.Create(ctx, roleC))

	perm := createTestPermission(t, "courses", accesscontrol.ActionUpdate, nil)
	require.NoError(t, permRepo.Create(ctx, perm))

	t.Run("replace is a full resync, not a merge", func(t *testing.T) {
		err := permRepo.ReplaceRoleLinks(ctx, perm.ID(), []uint{roleA.ID(), roleB.ID()})
		require.NoError(t, err)

		err = permRepo.ReplaceRoleLinks(ctx, perm.ID(), []uint{roleC.ID()})
		require.NoError(t, err)

		roles, err := permRepo.RolesWithAccess(ctx, perm.ID())
		require.NoError(t, err)
		require.Len(t, roles, 1)
		assert.Equal(t, roleC.ID(), roles[0].ID())
	})

	t.Run("duplicate ids in input collapse to one link", func(t *testing.T) {
		err := permRepo.ReplaceRoleLinks(ctx, perm.ID(), []uint{roleA.ID(), roleA.ID()})
		require.NoError(t, err)

		roles, err := permRepo.RolesWithAccess(ctx, perm.ID())
		require.NoError(t, err)
		assert.Len(t, roles, 1)
	})

	t.Run("empty set clears all links", func(t *testing.T) {
		err := permRepo.ReplaceRoleLinks(ctx, perm.ID(), nil)
		require.NoError(t, err)

		roles, err := permRepo.RolesWithAccess(ctx, perm.ID())
		require.NoError(t, err)
		assert.Empty(t, roles)
	})
}

func TestPermissionRepository_DeleteCascadesLinks(t *testing.T) {
	gdb := setupTestDB(t)
	permRepo := NewPermissionRepository(gdb)
	roleRepo := NewRoleRepository(gdb)
	ctx := context.Background()

	role := createTestRole(t, "CascadeRole")
	require.NoError(t, roleRepo.Create(ctx, role))

	perm := createTestPermission(t, "submasters", accesscontrol.ActionRead, nil)
	require.NoError(t, permRepo.Create(ctx, perm))
	require.NoError(t, roleRepo.LinkPermission(ctx, role.ID(), perm.ID()))

	require.NoError(t, permRepo.DeleteRoleLinks(ctx, perm.ID()))
	require.NoError(t, permRepo.Delete(ctx, perm.ID()))

	caps, err := roleRepo.GetCapabilities(ctx, role.ID())
	require.NoError(t, err)
	assert.Empty(t, caps)

	found, err := permRepo.GetByID(ctx, perm.ID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPermissionRepository_DeleteMissing(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPermissionRepository(gdb)

	err := repo.Delete(context.Background(), 9999)
	assert.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
