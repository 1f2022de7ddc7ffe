package catalog

import (
	"fmt"
	"time"
)

// SubMaster is a node in the catalogue tree: it belongs to exactly one
// master and optionally to a parent sub-master. The tree is stored
// id-indexed (parent id field), and writes must keep it acyclic.
type SubMaster struct {
	id        uint
	name      string
	code      string
	masterID  uint
	parentID  *uint
	isActive  bool
	sequence  int
	createdAt time.Time
	updatedAt time.Time
}

func NewSubMaster(name, code string, masterID uint, parentID *uint) (*SubMaster, error) {
	if name == "" {
		return nil, fmt.Errorf("sub-master name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("sub-master code is required")
	}
	if masterID == 0 {
		return nil, fmt.Errorf("master ID is required")
	}
	now := time.Now()
	return &SubMaster{
		name:      name,
		code:      code,
		masterID:  masterID,
		parentID:  parentID,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSubMaster(id uint, name, code string, masterID uint, parentID *uint, isActive bool, sequence int, createdAt, updatedAt time.Time) (*SubMaster, error) {
	if id == 0 {
		return nil, fmt.Errorf("sub-master ID cannot be zero")
	}
	return &SubMaster{
		id:        id,
		name:      name,
		code:      code,
		masterID:  masterID,
		parentID:  parentID,
		isActive:  isActive,
		sequence:  sequence,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *SubMaster) ID() uint             { return s.id }
func (s *SubMaster) Name() string         { return s.name }
func (s *SubMaster) Code() string         { return s.code }
func (s *SubMaster) MasterID() uint       { return s.masterID }
func (s *SubMaster) ParentID() *uint      { return s.parentID }
func (s *SubMaster) IsActive() bool       { return s.isActive }
func (s *SubMaster) Sequence() int        { return s.sequence }
func (s *SubMaster) CreatedAt() time.Time { return s.createdAt }
func (s *SubMaster) UpdatedAt() time.Time { return s.updatedAt }

func (s *SubMaster) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("sub-master ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("sub-master ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *SubMaster) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("sub-master name cannot be empty")
	}
	s.name = name
	s.touch()
	return nil
}

func (s *SubMaster) SetCode(code string) error {
	if code == "" {
		return fmt.Errorf("sub-master code cannot be empty")
	}
	s.code = code
	s.touch()
	return nil
}

func (s *SubMaster) SetMasterID(masterID uint) error {
	if masterID == 0 {
		return fmt.Errorf("master ID cannot be zero")
	}
	s.masterID = masterID
	s.touch()
	return nil
}

// SetParentID reparents the node. A node may never be its own parent;
// deeper cycle detection needs the stored tree and lives in the service.
func (s *SubMaster) SetParentID(parentID *uint) error {
	if parentID != nil && s.id != 0 && *parentID == s.id {
		return fmt.Errorf("sub-master cannot be its own parent")
	}
	s.parentID = parentID
	s.touch()
	return nil
}

func (s *SubMaster) SetActive(active bool) {
	s.isActive = active
	s.touch()
}

func (s *SubMaster) SetSequence(sequence int) {
	s.sequence = sequence
	s.touch()
}

func (s *SubMaster) touch() {
	s.updatedAt = time.Now()
}
