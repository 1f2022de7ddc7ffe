package routes

import (
	"github.com/gin-gonic/gin"

	"learnhub/internal/interfaces/http/handlers"
	"learnhub/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for catalogue routes.
type CatalogRouteConfig struct {
	MasterHandler             *handlers.MasterHandler
	SubMasterHandler          *handlers.SubMasterHandler
	EmployeePermissionHandler *handlers.EmployeePermissionHandler
	AuthMiddleware            *middleware.AuthMiddleware
	Capabilities              *middleware.CapabilityMiddleware
}

// SetupCatalogRoutes configures masters, sub-masters and employee
// permission overrides.
func SetupCatalogRoutes(api *gin.RouterGroup, cfg *CatalogRouteConfig) {
	masters := api.Group("/masters")
	masters.Use(cfg.AuthMiddleware.RequireAuth())
	{
		masters.POST("", cfg.Capabilities.RequireCapabilities("masters:create"), cfg.MasterHandler.CreateMaster)
		masters.GET("", cfg.Capabilities.RequireCapabilities("masters:read"), cfg.MasterHandler.ListMasters)
		masters.GET("/:id", cfg.Capabilities.RequireCapabilities("masters:read"), cfg.MasterHandler.GetMaster)
		masters.PUT("/:id", cfg.Capabilities.RequireCapabilities("masters:update"), cfg.MasterHandler.UpdateMaster)
		masters.DELETE("/:id", cfg.Capabilities.RequireCapabilities("masters:delete"), cfg.MasterHandler.DeleteMaster)
	}

	subMasters := api.Group("/submasters")
	subMasters.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subMasters.POST("", cfg.Capabilities.RequireCapabilities("submasters:create"), cfg.SubMasterHandler.CreateSubMaster)
		subMasters.GET("", cfg.Capabilities.RequireCapabilities("submasters:read"), cfg.SubMasterHandler.ListSubMasters)
		subMasters.GET("/:id", cfg.Capabilities.RequireCapabilities("submasters:read"), cfg.SubMasterHandler.GetSubMaster)
		subMasters.PUT("/:id", cfg.Capabilities.RequireCapabilities("submasters:update"), cfg.SubMasterHandler.UpdateSubMaster)
		subMasters.DELETE("/:id", cfg.Capabilities.RequireCapabilities("submasters:delete"), cfg.SubMasterHandler.DeleteSubMaster)
	}

	empPerms := api.Group("/employee-permissions")
	empPerms.Use(cfg.AuthMiddleware.RequireAuth())
	{
		empPerms.POST("", cfg.Capabilities.RequireCapabilities("employee-permissions:create"), cfg.EmployeePermissionHandler.CreateEmployeePermission)
		empPerms.GET("", cfg.Capabilities.RequireCapabilities("employee-permissions:read"), cfg.EmployeePermissionHandler.ListEmployeePermissions)
		empPerms.GET("/:id", cfg.Capabilities.RequireCapabilities("employee-permissions:read"), cfg.EmployeePermissionHandler.GetEmployeePermission)
		empPerms.PUT("/:id", cfg.Capabilities.RequireCapabilities("employee-permissions:update"), cfg.EmployeePermissionHandler.UpdateEmployeePermission)
		empPerms.DELETE("/:id", cfg.Capabilities.RequireCapabilities("employee-permissions:delete"), cfg.EmployeePermissionHandler.DeleteEmployeePermission)
	}
}
