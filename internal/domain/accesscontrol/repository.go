package accesscontrol

import "context"

// RoleRepository persists roles and the role↔permission mapping.
type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	GetByID(ctx context.Context, id uint) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
	Exists(ctx context.Context, id uint) (bool, error)

	// GetCapabilities returns the role's effective capability set:
	// the union of module:action pairs reachable through
	// role_permissions. Always a fresh read.
	GetCapabilities(ctx context.Context, roleID uint) (CapabilitySet, error)
	GetPermissions(ctx context.Context, roleID uint) ([]*Permission, error)

	// LinkPermission inserts one (roleID, permissionID) mapping row,
	// suppressing duplicates.
	LinkPermission(ctx context.Context, roleID, permissionID uint) error
}

// PermissionRepository persists permission rows.
type PermissionRepository interface {
	Create(ctx context.Context, permission *Permission) error
	GetByID(ctx context.Context, id uint) (*Permission, error)
	// FindByTriple locates a permission by its uniqueness triple.
	// excludeID, when non-zero, excludes that row from the match so
	// updates can probe for duplicates other than themselves.
	FindByTriple(ctx context.Context, module string, action Action, roleID *uint, excludeID uint) (*Permission, error)
	List(ctx context.Context) ([]*Permission, error)
	Update(ctx context.Context, permission *Permission) error
	Delete(ctx context.Context, id uint) error

	// ReplaceRoleLinks removes every role_permissions row for the
	// permission and recreates the given set. Callers wrap this in a
	// transaction together with the permission write.
	ReplaceRoleLinks(ctx context.Context, permissionID uint, roleIDs []uint) error
	DeleteRoleLinks(ctx context.Context, permissionID uint) error
	// RolesWithAccess returns the roles granted the permission through
	// the mapping table.
	RolesWithAccess(ctx context.Context, permissionID uint) ([]*Role, error)
}
