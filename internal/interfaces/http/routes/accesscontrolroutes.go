package routes

import (
	"github.com/gin-gonic/gin"

	"learnhub/internal/interfaces/http/handlers"
	"learnhub/internal/interfaces/http/middleware"
)

// AccessControlRouteConfig holds dependencies for permission and role
// routes.
type AccessControlRouteConfig struct {
	PermissionHandler *handlers.PermissionHandler
	RoleHandler       *handlers.RoleHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Capabilities      *middleware.CapabilityMiddleware
}

// SetupAccessControlRoutes configures the permission graph endpoints.
func SetupAccessControlRoutes(api *gin.RouterGroup, cfg *AccessControlRouteConfig) {
	permissions := api.Group("/permissions")
	permissions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		permissions.POST("", cfg.Capabilities.RequireCapabilities("permissions:create"), cfg.PermissionHandler.CreatePermission)
		permissions.GET("", cfg.Capabilities.RequireCapabilities("permissions:read"), cfg.PermissionHandler.ListPermissions)
		permissions.GET("/:id", cfg.Capabilities.RequireCapabilities("permissions:read"), cfg.PermissionHandler.GetPermission)
		permissions.PUT("/:id", cfg.Capabilities.RequireCapabilities("permissions:update"), cfg.PermissionHandler.UpdatePermission)
		permissions.DELETE("/:id", cfg.Capabilities.RequireCapabilities("permissions:delete"), cfg.PermissionHandler.DeletePermission)
	}

	roles := api.Group("/roles")
	roles.Use(cfg.AuthMiddleware.RequireAuth())
	{
		roles.GET("", cfg.Capabilities.RequireCapabilities("roles:read"), cfg.RoleHandler.ListRoles)
	}
}
