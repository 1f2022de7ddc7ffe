package routes

import (
	"github.com/gin-gonic/gin"

	"learnhub/internal/interfaces/http/handlers"
	"learnhub/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	Capabilities   *middleware.CapabilityMiddleware
}

// SetupUserRoutes configures user management routes. Updates admit the
// target user themselves; the role-escalation rule on self-updates is
// enforced inside the user service.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", cfg.Capabilities.RequireCapabilities("users:read"), cfg.UserHandler.ListUsers)
		users.GET("/:id", cfg.Capabilities.RequireSelfOrCapabilities("id", "users:read"), cfg.UserHandler.GetUser)
		users.PUT("/:id", cfg.Capabilities.RequireSelfOrCapabilities("id", "users:update"), cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", cfg.Capabilities.RequireCapabilities("users:delete"), cfg.UserHandler.DeleteUser)
	}
}
