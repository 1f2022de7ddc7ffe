package catalog

import (
	"fmt"
	"time"
)

// AccessFlags are the five per-entity grants an employee override
// carries. They are evaluated independently of the role/permission graph.
type AccessFlags struct {
	AdminAccess bool
	Create      bool
	Read        bool
	Update      bool
	Delete      bool
}

// DefaultAccessFlags grants read only, matching the seed behavior for
// newly created overrides.
func DefaultAccessFlags() AccessFlags {
	return AccessFlags{Read: true}
}

// EmployeePermission is a per-employee, per-entity override. The
// (employeeID, entityID) pair is unique: one row per combination.
type EmployeePermission struct {
	id         uint
	employeeID uint
	entityID   uint
	flags      AccessFlags
	createdAt  time.Time
	updatedAt  time.Time
}

func NewEmployeePermission(employeeID, entityID uint, flags AccessFlags) (*EmployeePermission, error) {
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if entityID == 0 {
		return nil, fmt.Errorf("entity ID is required")
	}
	now := time.Now()
	return &EmployeePermission{
		employeeID: employeeID,
		entityID:   entityID,
		flags:      flags,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructEmployeePermission(id, employeeID, entityID uint, flags AccessFlags, createdAt, updatedAt time.Time) (*EmployeePermission, error) {
	if id == 0 {
		return nil, fmt.Errorf("employee permission ID cannot be zero")
	}
	return &EmployeePermission{
		id:         id,
		employeeID: employeeID,
		entityID:   entityID,
		flags:      flags,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (ep *EmployeePermission) ID() uint             { return ep.id }
func (ep *EmployeePermission) EmployeeID() uint     { return ep.employeeID }
func (ep *EmployeePermission) EntityID() uint       { return ep.entityID }
func (ep *EmployeePermission) Flags() AccessFlags   { return ep.flags }
func (ep *EmployeePermission) CreatedAt() time.Time { return ep.createdAt }
func (ep *EmployeePermission) UpdatedAt() time.Time { return ep.updatedAt }

func (ep *EmployeePermission) SetID(id uint) error {
	if ep.id != 0 {
		return fmt.Errorf("employee permission ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("employee permission ID cannot be zero")
	}
	ep.id = id
	return nil
}

func (ep *EmployeePermission) SetEmployeeID(employeeID uint) error {
	if employeeID == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	ep.employeeID = employeeID
	ep.updatedAt = time.Now()
	return nil
}

func (ep *EmployeePermission) SetEntityID(entityID uint) error {
	if entityID == 0 {
		return fmt.Errorf("entity ID cannot be zero")
	}
	ep.entityID = entityID
	ep.updatedAt = time.Now()
	return nil
}

func (ep *EmployeePermission) SetFlags(flags AccessFlags) {
	ep.flags = flags
	ep.updatedAt = time.Now()
}
