// Package catalog holds the catalogue hierarchy: masters, sub-masters
// (a self-referential tree), employees, system entities, and the
// per-employee permission overrides layered on top of them. The
// hierarchy is a second identity axis, deliberately unlinked from the
// user/role model.
package catalog

import (
	"fmt"
	"time"
)

type Master struct {
	id        uint
	name      string
	code      string
	isActive  bool
	sequence  int
	createdAt time.Time
	updatedAt time.Time
}

func NewMaster(name, code string) (*Master, error) {
	if name == "" {
		return nil, fmt.Errorf("master name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("master code is required")
	}
	now := time.Now()
	return &Master{
		name:      name,
		code:      code,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructMaster(id uint, name, code string, isActive bool, sequence int, createdAt, updatedAt time.Time) (*Master, error) {
	if id == 0 {
		return nil, fmt.Errorf("master ID cannot be zero")
	}
	return &Master{
		id:        id,
		name:      name,
		code:      code,
		isActive:  isActive,
		sequence:  sequence,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *Master) ID() uint             { return m.id }
func (m *Master) Name() string         { return m.name }
func (m *Master) Code() string         { return m.code }
func (m *Master) IsActive() bool       { return m.isActive }
func (m *Master) Sequence() int        { return m.sequence }
func (m *Master) CreatedAt() time.Time { return m.createdAt }
func (m *Master) UpdatedAt() time.Time { return m.updatedAt }

func (m *Master) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("master ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("master ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Master) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("master name cannot be empty")
	}
	m.name = name
	m.updatedAt = time.Now()
	return nil
}

func (m *Master) SetCode(code string) error {
	if code == "" {
		return fmt.Errorf("master code cannot be empty")
	}
	m.code = code
	m.updatedAt = time.Now()
	return nil
}

func (m *Master) SetActive(active bool) {
	m.isActive = active
	m.updatedAt = time.Now()
}

func (m *Master) SetSequence(sequence int) {
	m.sequence = sequence
	m.updatedAt = time.Now()
}
