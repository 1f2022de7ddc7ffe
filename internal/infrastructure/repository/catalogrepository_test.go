package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/domain/catalog"
	"learnhub/internal/shared/errors"
)

func TestSubMasterRepository_GetParentID(t *testing.T) {
	gdb := setupTestDB(t)
	masterRepo := NewMasterRepository(gdb)
	subRepo := NewSubMasterRepository(gdb)
	ctx := context.Background()

	master, err := catalog.NewMaster("Departments", "dept")
	require.NoError(t, err)
	require.NoError(t, masterRepo.Create(ctx, master))

	root, err := catalog.NewSubMaster("Engineering", "eng", master.ID(), nil)
	require.NoError(t, err)
	require.NoError(t, subRepo.Create(ctx, root))

	rootID := root.ID()
	child, err := catalog.NewSubMaster("Platform", "platform", master.ID(), &rootID)
	require.NoError(t, err)
	require.NoError(t, subRepo.Create(ctx, child))

	t.Run("root has nil parent", func(t *testing.T) {
		parent, err := subRepo.GetParentID(ctx, root.ID())
		require.NoError(t, err)
		assert.Nil(t, parent)
	})

	t.Run("child reports its parent", func(t *testing.T) {
		parent, err := subRepo.GetParentID(ctx, child.ID())
		require.NoError(t, err)
		require.NotNil(t, parent)
		assert.Equal(t, root.ID(), *parent)
	})

	t.Run("missing node is not found", func(t *testing.T) {
		_, err := subRepo.GetParentID(ctx, 9999)
		assert.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestSubMasterRepository_SoftDelete(t *testing.T) {
	gdb := setupTestDB(t)
	subRepo := NewSubMasterRepository(gdb)
	ctx := context.Background()

	sm, err := catalog.NewSubMaster("Transient", "tmp", 1, nil)
	require.NoError(t, err)
	require.NoError(t, subRepo.Create(ctx, sm))

	require.NoError(t, subRepo.SoftDelete(ctx, sm.ID()))

	found, err := subRepo.GetByID(ctx, sm.ID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestEmployeePermissionRepository_PairUniqueness(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewEmployeePermissionRepository(gdb)
	ctx := context.Background()

	ep, err := catalog.NewEmployeePermission(5, 9, catalog.DefaultAccessFlags())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, ep))

	t.Run("same pair conflicts", func(t *testing.T) {
		dup, err := catalog.NewEmployeePermission(5, 9, catalog.AccessFlags{Read: true, Update: true})
		require.NoError(t, err)

		err = repo.Create(ctx, dup)
		assert.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("same employee different entity is allowed", func(t *testing.T) {
		other, err := catalog.NewEmployeePermission(5, 10, catalog.DefaultAccessFlags())
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, other))
	})

	t.Run("pair lookup returns flags", func(t *testing.T) {
		found, err := repo.GetByPair(ctx, 5, 9)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.Flags().Read)
		assert.False(t, found.Flags().AdminAccess)
	})

	t.Run("absent pair returns nil", func(t *testing.T) {
		found, err := repo.GetByPair(ctx, 5, 999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestEmployeePermissionRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewEmployeePermissionRepository(gdb)
	ctx := context.Background()

	ep, err := catalog.NewEmployeePermission(3, 4, catalog.DefaultAccessFlags())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, ep))

	ep.SetFlags(catalog.AccessFlags{AdminAccess: true, Create: true, Read: true, Update: true, Delete: true})
	require.NoError(t, repo.Update(ctx, ep))

	found, err := repo.GetByID(ctx, ep.ID())
	require.NoError(t, err)
	assert.True(t, found.Flags().AdminAccess)
	assert.True(t, found.Flags().Delete)
}
