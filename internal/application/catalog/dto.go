package catalog

import (
	"time"

	"learnhub/internal/domain/catalog"
)

type MasterView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"isActive"`
	Sequence  int       `json:"sequence"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewMasterView(m *catalog.Master) MasterView {
	return MasterView{
		ID:        m.ID(),
		Name:      m.Name(),
		Code:      m.Code(),
		IsActive:  m.IsActive(),
		Sequence:  m.Sequence(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

type SubMasterView struct {
	ID        uint      `json:"id"`
	MasterID  uint      `json:"masterId"`
	ParentID  *uint     `json:"parentId,omitempty"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"isActive"`
	Sequence  int       `json:"sequence"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewSubMasterView(sm *catalog.SubMaster) SubMasterView {
	return SubMasterView{
		ID:        sm.ID(),
		MasterID:  sm.MasterID(),
		ParentID:  sm.ParentID(),
		Name:      sm.Name(),
		Code:      sm.Code(),
		IsActive:  sm.IsActive(),
		Sequence:  sm.Sequence(),
		CreatedAt: sm.CreatedAt(),
		UpdatedAt: sm.UpdatedAt(),
	}
}

type EmployeePermissionView struct {
	ID          uint      `json:"id"`
	EmpID       uint      `json:"empId"`
	EntityID    uint      `json:"entityId"`
	AdminAccess bool      `json:"adminAccess"`
	Create      bool      `json:"create"`
	Read        bool      `json:"read"`
	Update      bool      `json:"update"`
	Delete      bool      `json:"delete"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewEmployeePermissionView(ep *catalog.EmployeePermission) EmployeePermissionView {
	flags := ep.Flags()
	return EmployeePermissionView{
		ID:          ep.ID(),
		EmpID:       ep.EmployeeID(),
		EntityID:    ep.EntityID(),
		AdminAccess: flags.AdminAccess,
		Create:      flags.Create,
		Read:        flags.Read,
		Update:      flags.Update,
		Delete:      flags.Delete,
		CreatedAt:   ep.CreatedAt(),
		UpdatedAt:   ep.UpdatedAt(),
	}
}
