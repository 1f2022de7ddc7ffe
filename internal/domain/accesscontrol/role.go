package accesscontrol

import (
	"fmt"
	"time"
)

// Role is a named bundle of capabilities assigned to users. Every user
// holds exactly one role.
type Role struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRole(name, description string) (*Role, error) {
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("role name too long (max 100 characters)")
	}

	now := time.Now()
	return &Role{
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRole(id uint, name, description string, createdAt, updatedAt time.Time) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}
	return &Role{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Role) ID() uint {
	return r.id
}

func (r *Role) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) Description() string {
	return r.description
}

func (r *Role) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Role) UpdatedAt() time.Time {
	return r.updatedAt
}
