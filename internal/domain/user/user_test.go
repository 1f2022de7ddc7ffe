package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *User {
	u, err := NewUser("Ada", "Lovelace", "ada", "ada@example.com", "$2a$12$hash", 3)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u := newTestUser(t)
		assert.Equal(t, "ada", u.Username())
		assert.Equal(t, uint(3), u.RoleID())
		assert.Equal(t, "Ada Lovelace", u.FullName())
	})

	t.Run("requires role", func(t *testing.T) {
		_, err := NewUser("Ada", "", "ada", "ada@example.com", "hash", 0)
		assert.Error(t, err)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("Ada", "", "ada", "not-an-email", "hash", 1)
		assert.Error(t, err)
	})
}

func TestUser_AssignRole(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.AssignRole(7))
	assert.Equal(t, uint(7), u.RoleID())

	assert.Error(t, u.AssignRole(0), "a user may never end up without a role")
	assert.Equal(t, uint(7), u.RoleID())
}

func TestUser_SetID(t *testing.T) {
	u := newTestUser(t)
	require.NoError(t, u.SetID(42))
	assert.Error(t, u.SetID(43), "id is immutable once set")
	assert.Equal(t, uint(42), u.ID())
}
