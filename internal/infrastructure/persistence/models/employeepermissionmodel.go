package models

import (
	"time"

	"learnhub/internal/shared/constants"
)

// EmployeePermissionModel stores the per-entity access override for an
// employee. One row per (employee, entity) pair.
type EmployeePermissionModel struct {
	ID          uint `gorm:"primarykey"`
	EmpID       uint `gorm:"not null;uniqueIndex:idx_emp_entity"`
	EntityID    uint `gorm:"not null;uniqueIndex:idx_emp_entity"`
	AdminAccess bool `gorm:"default:false"`
	Create      bool `gorm:"column:can_create;default:false"`
	Read        bool `gorm:"column:can_read;default:true"`
	Update      bool `gorm:"column:can_update;default:false"`
	Delete      bool `gorm:"column:can_delete;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EmployeePermissionModel) TableName() string {
	return constants.TableEmployeePermissions
}
