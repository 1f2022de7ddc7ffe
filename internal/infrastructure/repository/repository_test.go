package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"learnhub/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.UserModel{},
		&models.RoleModel{},
		&models.PermissionModel{},
		&models.RolePermissionModel{},
		&models.CourseModel{},
		&models.MasterModel{},
		&models.SubMasterModel{},
		&models.EmployeeModel{},
		&models.SystemEntityModel{},
		&models.EmployeePermissionModel{},
	)
	require.NoError(t, err)

	return gdb
}
