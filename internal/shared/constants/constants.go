package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Context keys
	ContextKeyUserID = "user_id"
	ContextKeyRoleID = "role_id"

	// Database table names
	TableUsers               = "users"
	TableRoles               = "roles"
	TablePermissions         = "permissions"
	TableRolePermissions     = "role_permissions"
	TableCourses             = "courses"
	TableModules             = "modules"
	TableAssignments         = "assignments"
	TableAssessments         = "assessments"
	TableCourseAssignments   = "course_assignments"
	TableCourseAssessments   = "course_assessments"
	TableMasters             = "masters"
	TableSubMasters          = "sub_masters"
	TableEmployees           = "employees"
	TableSystemEntities      = "system_entities"
	TableEmployeePermissions = "employee_permissions"

	// Default role assigned at signup when none is requested
	DefaultSignupRole = "Employee"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgInvalidCredentials  = "Invalid credentials."
)

// RoleSeed describes a role created by the initial seeding pass.
type RoleSeed struct {
	Name        string
	Description string
}

// DefaultRoles are created idempotently by the seed command.
var DefaultRoles = []RoleSeed{
	{Name: "Admin", Description: "Administrator with full platform access."},
	{Name: "Trainer", Description: "Trainer responsible for managing learning materials."},
	{Name: "Employee", Description: "Employee with course consumption capabilities."},
}

// DefaultPermissionModules enumerates the resource modules the platform
// seeds one permission per CRUD action for.
var DefaultPermissionModules = []string{
	"users",
	"roles",
	"courses",
	"permissions",
	"masters",
	"submasters",
	"employee-permissions",
}

// DefaultRoleCapabilities maps seeded role names to the capability
// strings granted at seed time. Admin receives every module:action
// pair and is expanded in code.
var DefaultRoleCapabilities = map[string][]string{
	"Trainer": {
		"courses:create",
		"courses:read",
		"courses:update",
		"users:read",
	},
	"Employee": {
		"courses:read",
	},
}
