package routes

import (
	"github.com/gin-gonic/gin"

	"learnhub/internal/interfaces/http/handlers"
	"learnhub/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

// SetupAuthRoutes configures signup and login under /api/auth.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/signup", cfg.RateLimiter.Limit(), cfg.AuthHandler.Signup)
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
	}
}
