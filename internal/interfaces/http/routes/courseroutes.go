package routes

import (
	"github.com/gin-gonic/gin"

	"learnhub/internal/interfaces/http/handlers"
	"learnhub/internal/interfaces/http/middleware"
)

// CourseRouteConfig holds dependencies for course routes.
type CourseRouteConfig struct {
	CourseHandler  *handlers.CourseHandler
	AuthMiddleware *middleware.AuthMiddleware
	Capabilities   *middleware.CapabilityMiddleware
}

// SetupCourseRoutes configures course CRUD under /api/courses.
func SetupCourseRoutes(api *gin.RouterGroup, cfg *CourseRouteConfig) {
	courses := api.Group("/courses")
	courses.Use(cfg.AuthMiddleware.RequireAuth())
	{
		courses.POST("", cfg.Capabilities.RequireCapabilities("courses:create"), cfg.CourseHandler.CreateCourse)
		courses.GET("", cfg.Capabilities.RequireCapabilities("courses:read"), cfg.CourseHandler.ListCourses)
		courses.GET("/:id", cfg.Capabilities.RequireCapabilities("courses:read"), cfg.CourseHandler.GetCourse)
		courses.GET("/:id/description", cfg.Capabilities.RequireCapabilities("courses:read"), cfg.CourseHandler.GetCourseDescription)
		courses.PUT("/:id", cfg.Capabilities.RequireCapabilities("courses:update"), cfg.CourseHandler.UpdateCourse)
		courses.DELETE("/:id", cfg.Capabilities.RequireCapabilities("courses:delete"), cfg.CourseHandler.DeleteCourse)
	}
}
