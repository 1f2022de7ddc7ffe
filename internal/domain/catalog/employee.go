package catalog

import (
	"fmt"
	"time"
)

// Employee is a catalogue-side identity. It is not linked to the user
// account model: an employee having a namesake user implies nothing.
type Employee struct {
	id          uint
	firstName   string
	lastName    string
	email       string
	subMasterID *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEmployee(firstName, lastName, email string, subMasterID *uint) (*Employee, error) {
	if firstName == "" {
		return nil, fmt.Errorf("employee first name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("employee email is required")
	}
	now := time.Now()
	return &Employee{
		firstName:   firstName,
		lastName:    lastName,
		email:       email,
		subMasterID: subMasterID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructEmployee(id uint, firstName, lastName, email string, subMasterID *uint, createdAt, updatedAt time.Time) (*Employee, error) {
	if id == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}
	return &Employee{
		id:          id,
		firstName:   firstName,
		lastName:    lastName,
		email:       email,
		subMasterID: subMasterID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (e *Employee) ID() uint             { return e.id }
func (e *Employee) FirstName() string    { return e.firstName }
func (e *Employee) LastName() string     { return e.lastName }
func (e *Employee) Email() string        { return e.email }
func (e *Employee) SubMasterID() *uint   { return e.subMasterID }
func (e *Employee) CreatedAt() time.Time { return e.createdAt }
func (e *Employee) UpdatedAt() time.Time { return e.updatedAt }

func (e *Employee) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("employee ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	e.id = id
	return nil
}

// SystemEntity is a named, coded catalogue object that employee
// permission overrides attach to. It is unrelated to the module strings
// used by role permissions.
type SystemEntity struct {
	id        uint
	name      string
	code      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSystemEntity(name, code string) (*SystemEntity, error) {
	if name == "" {
		return nil, fmt.Errorf("system entity name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("system entity code is required")
	}
	now := time.Now()
	return &SystemEntity{
		name:      name,
		code:      code,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSystemEntity(id uint, name, code string, isActive bool, createdAt, updatedAt time.Time) (*SystemEntity, error) {
	if id == 0 {
		return nil, fmt.Errorf("system entity ID cannot be zero")
	}
	return &SystemEntity{
		id:        id,
		name:      name,
		code:      code,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *SystemEntity) ID() uint             { return s.id }
func (s *SystemEntity) Name() string         { return s.name }
func (s *SystemEntity) Code() string         { return s.code }
func (s *SystemEntity) IsActive() bool       { return s.isActive }
func (s *SystemEntity) CreatedAt() time.Time { return s.createdAt }
func (s *SystemEntity) UpdatedAt() time.Time { return s.updatedAt }

func (s *SystemEntity) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("system entity ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("system entity ID cannot be zero")
	}
	s.id = id
	return nil
}
