package migration

import (
	"learnhub/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the AutoMigrate
// strategy manages, in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RoleModel{},
		&models.UserModel{},
		&models.PermissionModel{},
		&models.RolePermissionModel{},
		&models.CourseModel{},
		&models.ModuleModel{},
		&models.AssignmentModel{},
		&models.AssessmentModel{},
		&models.CourseAssignmentModel{},
		&models.CourseAssessmentModel{},
		&models.MasterModel{},
		&models.SubMasterModel{},
		&models.EmployeeModel{},
		&models.SystemEntityModel{},
		&models.EmployeePermissionModel{},
	}
}
