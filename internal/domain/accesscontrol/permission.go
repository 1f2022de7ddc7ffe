package accesscontrol

import (
	"fmt"
	"time"
)

// Permission is one grantable module:action pair, optionally scoped to
// a single owning role. The (module, action, roleID) triple is unique;
// roleID nil means the permission is a global, unassigned candidate.
type Permission struct {
	id         uint
	capability Capability
	roleID     *uint
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPermission(capability Capability, roleID *uint) (*Permission, error) {
	if capability.Module() == "" {
		return nil, fmt.Errorf("permission capability is required")
	}
	now := time.Now()
	return &Permission{
		capability: capability,
		roleID:     roleID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPermission(id uint, capability Capability, roleID *uint, createdAt, updatedAt time.Time) (*Permission, error) {
	if id == 0 {
		return nil, fmt.Errorf("permission ID cannot be zero")
	}
	return &Permission{
		id:         id,
		capability: capability,
		roleID:     roleID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (p *Permission) ID() uint {
	return p.id
}

func (p *Permission) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("permission ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("permission ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Permission) Capability() Capability {
	return p.capability
}

func (p *Permission) Module() string {
	return p.capability.Module()
}

func (p *Permission) Action() Action {
	return p.capability.Action()
}

// RoleID returns the optional single-owner role link. This is distinct
// from the role_permissions mapping, which is the actual authorization
// surface.
func (p *Permission) RoleID() *uint {
	return p.roleID
}

func (p *Permission) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Permission) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Permission) SetCapability(capability Capability) {
	p.capability = capability
	p.updatedAt = time.Now()
}

func (p *Permission) SetRoleID(roleID *uint) {
	p.roleID = roleID
	p.updatedAt = time.Now()
}

// Name derives the display name from the capability. It is computed,
// never stored, so it cannot drift from the module and action columns.
func (p *Permission) Name() string {
	return p.capability.String()
}
