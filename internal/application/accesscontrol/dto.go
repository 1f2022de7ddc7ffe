package accesscontrol

import (
	"time"

	"learnhub/internal/domain/accesscontrol"
)

type RoleRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type RoleView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewRoleView(role *accesscontrol.Role, capabilities []string) RoleView {
	return RoleView{
		ID:          role.ID(),
		Name:        role.Name(),
		Description: role.Description(),
		Permissions: capabilities,
		CreatedAt:   role.CreatedAt(),
		UpdatedAt:   role.UpdatedAt(),
	}
}

type PermissionView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Module    string    `json:"module"`
	Action    string    `json:"action"`
	RoleID    *uint     `json:"roleId,omitempty"`
	Roles     []RoleRef `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewPermissionView(perm *accesscontrol.Permission, roles []*accesscontrol.Role) PermissionView {
	refs := make([]RoleRef, 0, len(roles))
	for _, role := range roles {
		refs = append(refs, RoleRef{ID: role.ID(), Name: role.Name()})
	}
	return PermissionView{
		ID:        perm.ID(),
		Name:      perm.Name(),
		Module:    perm.Module(),
		Action:    perm.Action().String(),
		RoleID:    perm.RoleID(),
		Roles:     refs,
		CreatedAt: perm.CreatedAt(),
		UpdatedAt: perm.UpdatedAt(),
	}
}
