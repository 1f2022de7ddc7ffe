package accesscontrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapability(t *testing.T) {
	t.Run("normalizes module case", func(t *testing.T) {
		upper, err := NewCapability("Courses", ActionRead)
		require.NoError(t, err)
		lower, err := NewCapability("courses", ActionRead)
		require.NoError(t, err)

		assert.Equal(t, upper, lower)
		assert.Equal(t, "courses:read", upper.String())
	})

	t.Run("rejects empty module", func(t *testing.T) {
		_, err := NewCapability("", ActionRead)
		assert.Error(t, err)
	})

	t.Run("rejects module containing separator", func(t *testing.T) {
		_, err := NewCapability("courses:extra", ActionRead)
		assert.Error(t, err)
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		_, err := NewCapability("courses", Action("publish"))
		assert.Error(t, err)
	})
}

func TestParseCapability(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple", input: "courses:read", want: "courses:read"},
		{name: "mixed case", input: "Courses:READ", want: "courses:read"},
		{name: "hyphenated module", input: "employee-permissions:delete", want: "employee-permissions:delete"},
		{name: "missing separator", input: "coursesread", wantErr: true},
		{name: "bad action", input: "courses:list", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCapability(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCapabilitySet_HasAll(t *testing.T) {
	set := NewCapabilitySet(
		MustCapability("courses:read"),
		MustCapability("courses:create"),
		MustCapability("users:read"),
	)

	t.Run("all present", func(t *testing.T) {
		assert.True(t, set.HasAll(MustCapability("courses:read"), MustCapability("users:read")))
	})

	t.Run("one missing denies", func(t *testing.T) {
		assert.False(t, set.HasAll(MustCapability("courses:read"), MustCapability("users:update")))
	})

	t.Run("empty requirement allows", func(t *testing.T) {
		assert.True(t, set.HasAll())
	})

	t.Run("adding a capability never revokes", func(t *testing.T) {
		required := []Capability{MustCapability("courses:read")}
		assert.True(t, set.HasAll(required...))

		set[MustCapability("masters:read")] = struct{}{}
		assert.True(t, set.HasAll(required...))
	})
}

func TestCapabilitySet_Strings(t *testing.T) {
	set := NewCapabilitySet(
		MustCapability("users:read"),
		MustCapability("courses:create"),
	)
	assert.Equal(t, []string{"courses:create", "users:read"}, set.Strings())
}
