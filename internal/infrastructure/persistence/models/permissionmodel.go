package models

import (
	"time"

	"learnhub/internal/shared/constants"
)

// PermissionModel stores one capability grant. RoleID participates in
// the uniqueness index so the same module/action pair can exist once
// per role scope; the display name is derived, never stored.
type PermissionModel struct {
	ID        uint   `gorm:"primarykey"`
	Module    string `gorm:"not null;size:50;uniqueIndex:idx_module_action_role"`
	Action    string `gorm:"not null;size:20;uniqueIndex:idx_module_action_role"`
	RoleID    *uint  `gorm:"uniqueIndex:idx_module_action_role"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PermissionModel) TableName() string {
	return constants.TablePermissions
}
