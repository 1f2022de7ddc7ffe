package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/domain/user"
	"learnhub/internal/shared/errors"
)

func createTestUser(t *testing.T, username, email string) *user.User {
	t.Helper()
	u, err := user.NewUser("Ada", "Lovelace", username, email, "$2a$10$hashhashhash", 1)
	require.NoError(t, err)
	return u
}

func TestUserRepository_Create(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	t.Run("create sets id", func(t *testing.T) {
		u := createTestUser(t, "ada", "ada@example.com")
		err := repo.Create(ctx, u)
		require.NoError(t, err)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		u := createTestUser(t, "ada2", "ada@example.com")
		err := repo.Create(ctx, u)
		assert.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		u := createTestUser(t, "ada", "other@example.com")
		err := repo.Create(ctx, u)
		assert.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestUserRepository_GetByIdentifier(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	u := createTestUser(t, "grace", "grace@example.com")
	require.NoError(t, repo.Create(ctx, u))

	t.Run("matches email", func(t *testing.T) {
		found, err := repo.GetByIdentifier(ctx, "grace@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("matches username", func(t *testing.T) {
		found, err := repo.GetByIdentifier(ctx, "grace")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("unknown identifier returns nil", func(t *testing.T) {
		found, err := repo.GetByIdentifier(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_UniquenessProbes(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	u := createTestUser(t, "alan", "alan@example.com")
	require.NoError(t, repo.Create(ctx, u))

	t.Run("email in use", func(t *testing.T) {
		inUse, err := repo.EmailInUse(ctx, "alan@example.com", 0)
		require.NoError(t, err)
		assert.True(t, inUse)
	})

	t.Run("excluding the owner row", func(t *testing.T) {
		inUse, err := repo.EmailInUse(ctx, "alan@example.com", u.ID())
		require.NoError(t, err)
		assert.False(t, inUse)
	})

	t.Run("free username", func(t *testing.T) {
		inUse, err := repo.UsernameInUse(ctx, "fresh", 0)
		require.NoError(t, err)
		assert.False(t, inUse)
	})
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	u := createTestUser(t, "edsger", "edsger@example.com")
	require.NoError(t, repo.Create(ctx, u))

	t.Run("update persists field changes", func(t *testing.T) {
		require.NoError(t, u.AssignRole(2))
		u.UpdateProfile("Edsger", "Dijkstra")

		err := repo.Update(ctx, u)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, uint(2), found.RoleID())
		assert.Equal(t, "Edsger Dijkstra", found.FullName())
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, u.ID()))

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete missing user is not found", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		assert.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
