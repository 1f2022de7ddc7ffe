package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "learnhub/internal/domain/catalog"
	"learnhub/internal/infrastructure/persistence/models"
	"learnhub/internal/infrastructure/repository"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
)

type fixture struct {
	masters    *MasterService
	subMasters *SubMasterService
	empPerms   *EmployeePermissionService
	entityRepo domain.SystemEntityRepository
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.MasterModel{},
		&models.SubMasterModel{},
		&models.SystemEntityModel{},
		&models.EmployeePermissionModel{},
	))

	log := logger.NewLogger()
	masterRepo := repository.NewMasterRepository(gdb)
	subRepo := repository.NewSubMasterRepository(gdb)
	entityRepo := repository.NewSystemEntityRepository(gdb)
	epRepo := repository.NewEmployeePermissionRepository(gdb)

	return &fixture{
		masters:    NewMasterService(masterRepo, log),
		subMasters: NewSubMasterService(subRepo, masterRepo, log),
		empPerms:   NewEmployeePermissionService(epRepo, entityRepo, log),
		entityRepo: entityRepo,
	}
}

func (f *fixture) createEntity(t *testing.T, name, code string) *domain.SystemEntity {
	t.Helper()
	entity, err := domain.NewSystemEntity(name, code)
	require.NoError(t, err)
	require.NoError(t, f.entityRepo.Create(context.Background(), entity))
	return entity
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

func TestMasterService_CRUD(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	created, err := f.masters.Create(ctx, "Departments", "DEPT", MasterInput{})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	t.Run("rejects a duplicate code", func(t *testing.T) {
		_, err := f.masters.Create(ctx, "Other", "DEPT", MasterInput{})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("update keeps the code unique across rows", func(t *testing.T) {
		other, err := f.masters.Create(ctx, "Locations", "LOC", MasterInput{})
		require.NoError(t, err)

		_, err = f.masters.Update(ctx, other.ID, MasterInput{Code: strPtr("DEPT")})
		assert.True(t, errors.IsConflictError(err))

		view, err := f.masters.Update(ctx, other.ID, MasterInput{Code: strPtr("LOC"), Name: strPtr("Sites")})
		require.NoError(t, err)
		assert.Equal(t, "Sites", view.Name)
	})

	t.Run("deactivation sticks", func(t *testing.T) {
		view, err := f.masters.Update(ctx, created.ID, MasterInput{IsActive: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, view.IsActive)
	})

	t.Run("deleted masters disappear from reads", func(t *testing.T) {
		require.NoError(t, f.masters.Delete(ctx, created.ID))
		_, err := f.masters.Get(ctx, created.ID)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestSubMasterService_Create(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	master, err := f.masters.Create(ctx, "Departments", "DEPT", MasterInput{})
	require.NoError(t, err)

	t.Run("creates a root node", func(t *testing.T) {
		view, err := f.subMasters.Create(ctx, "Engineering", "ENG", master.ID, nil, SubMasterInput{})
		require.NoError(t, err)
		assert.Equal(t, master.ID, view.MasterID)
		assert.Nil(t, view.ParentID)
	})

	t.Run("creates a child under a parent", func(t *testing.T) {
		root, err := f.subMasters.Create(ctx, "Sales", "SALES", master.ID, nil, SubMasterInput{})
		require.NoError(t, err)

		child, err := f.subMasters.Create(ctx, "Inside Sales", "ISALES", master.ID, &root.ID, SubMasterInput{})
		require.NoError(t, err)
		require.NotNil(t, child.ParentID)
		assert.Equal(t, root.ID, *child.ParentID)
	})

	t.Run("rejects an unknown master", func(t *testing.T) {
		_, err := f.subMasters.Create(ctx, "Orphan", "ORPH", 9999, nil, SubMasterInput{})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("rejects an unknown parent", func(t *testing.T) {
		_, err := f.subMasters.Create(ctx, "Orphan", "ORPH", master.ID, uintPtr(9999), SubMasterInput{})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("rejects a duplicate code", func(t *testing.T) {
		_, err := f.subMasters.Create(ctx, "Engineering Again", "ENG", master.ID, nil, SubMasterInput{})
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestSubMasterService_CycleGuard(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	master, err := f.masters.Create(ctx, "Departments", "DEPT", MasterInput{})
	require.NoError(t, err)

	// a -> b -> c chain, parent pointing upward
	a, err := f.subMasters.Create(ctx, "A", "A", master.ID, nil, SubMasterInput{})
	require.NoError(t, err)
	b, err := f.subMasters.Create(ctx, "B", "B", master.ID, &a.ID, SubMasterInput{})
	require.NoError(t, err)
	c, err := f.subMasters.Create(ctx, "C", "C", master.ID, &b.ID, SubMasterInput{})
	require.NoError(t, err)

	t.Run("a node cannot become its own parent", func(t *testing.T) {
		_, err := f.subMasters.Update(ctx, a.ID, SubMasterInput{ParentID: &a.ID})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("attaching to a descendant is rejected", func(t *testing.T) {
		_, err := f.subMasters.Update(ctx, a.ID, SubMasterInput{ParentID: &c.ID})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("reparenting within the tree is allowed", func(t *testing.T) {
		view, err := f.subMasters.Update(ctx, c.ID, SubMasterInput{ParentID: &a.ID})
		require.NoError(t, err)
		require.NotNil(t, view.ParentID)
		assert.Equal(t, a.ID, *view.ParentID)
	})

	t.Run("detaching clears the parent", func(t *testing.T) {
		view, err := f.subMasters.Update(ctx, b.ID, SubMasterInput{ClearParent: true})
		require.NoError(t, err)
		assert.Nil(t, view.ParentID)
	})
}

func TestEmployeePermissionService_Create(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	entity := f.createEntity(t, "Reports", "RPT")

	t.Run("creates an override with default flags", func(t *testing.T) {
		view, err := f.empPerms.Create(ctx, 11, entity.ID(), EmployeePermissionInput{})
		require.NoError(t, err)
		assert.True(t, view.Read)
		assert.False(t, view.Create)
		assert.False(t, view.AdminAccess)
	})

	t.Run("rejects a second override for the same pair", func(t *testing.T) {
		_, err := f.empPerms.Create(ctx, 11, entity.ID(), EmployeePermissionInput{})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("rejects an unknown entity", func(t *testing.T) {
		_, err := f.empPerms.Create(ctx, 11, 9999, EmployeePermissionInput{})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("explicit flags override the defaults", func(t *testing.T) {
		view, err := f.empPerms.Create(ctx, 12, entity.ID(), EmployeePermissionInput{
			Create:      boolPtr(true),
			Read:        boolPtr(false),
			AdminAccess: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, view.Create)
		assert.False(t, view.Read)
		assert.True(t, view.AdminAccess)
	})
}

func TestEmployeePermissionService_Update(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	reports := f.createEntity(t, "Reports", "RPT")
	billing := f.createEntity(t, "Billing", "BILL")

	created, err := f.empPerms.Create(ctx, 11, reports.ID(), EmployeePermissionInput{})
	require.NoError(t, err)

	t.Run("flag changes persist", func(t *testing.T) {
		view, err := f.empPerms.Update(ctx, created.ID, EmployeePermissionInput{
			Update: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, view.Update)
		assert.True(t, view.Read)
	})

	t.Run("moving to another entity revalidates existence", func(t *testing.T) {
		_, err := f.empPerms.Update(ctx, created.ID, EmployeePermissionInput{
			EntityID: uintPtr(9999),
		})
		assert.True(t, errors.IsNotFoundError(err))

		view, err := f.empPerms.Update(ctx, created.ID, EmployeePermissionInput{
			EntityID: uintPtr(billing.ID()),
		})
		require.NoError(t, err)
		assert.Equal(t, billing.ID(), view.EntityID)
	})

	t.Run("moving onto an occupied pair conflicts", func(t *testing.T) {
		_, err := f.empPerms.Create(ctx, 11, reports.ID(), EmployeePermissionInput{})
		require.NoError(t, err)

		_, err = f.empPerms.Update(ctx, created.ID, EmployeePermissionInput{
			EntityID: uintPtr(reports.ID()),
		})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("delete removes the override", func(t *testing.T) {
		require.NoError(t, f.empPerms.Delete(ctx, created.ID))
		_, err := f.empPerms.Get(ctx, created.ID)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
