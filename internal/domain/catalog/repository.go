package catalog

import "context"

type MasterRepository interface {
	Create(ctx context.Context, master *Master) error
	GetByID(ctx context.Context, id uint) (*Master, error)
	List(ctx context.Context) ([]*Master, error)
	Update(ctx context.Context, master *Master) error
	SoftDelete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	CodeInUse(ctx context.Context, code string, excludeID uint) (bool, error)
}

type SubMasterRepository interface {
	Create(ctx context.Context, subMaster *SubMaster) error
	GetByID(ctx context.Context, id uint) (*SubMaster, error)
	List(ctx context.Context) ([]*SubMaster, error)
	Update(ctx context.Context, subMaster *SubMaster) error
	SoftDelete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	CodeInUse(ctx context.Context, code string, excludeID uint) (bool, error)

	// GetParentID returns the parent id of the node, nil when the node
	// is a root. Used for cycle detection walks over the stored tree.
	GetParentID(ctx context.Context, id uint) (*uint, error)
}

type SystemEntityRepository interface {
	Create(ctx context.Context, entity *SystemEntity) error
	GetByID(ctx context.Context, id uint) (*SystemEntity, error)
	List(ctx context.Context) ([]*SystemEntity, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type EmployeePermissionRepository interface {
	Create(ctx context.Context, permission *EmployeePermission) error
	GetByID(ctx context.Context, id uint) (*EmployeePermission, error)
	// GetByPair looks up the unique (employeeID, entityID) row; nil when
	// absent. Callers decide what an absent override means.
	GetByPair(ctx context.Context, employeeID, entityID uint) (*EmployeePermission, error)
	List(ctx context.Context) ([]*EmployeePermission, error)
	Update(ctx context.Context, permission *EmployeePermission) error
	Delete(ctx context.Context, id uint) error
}
