// Package http wires the gin engine: global middleware, the /health
// endpoint, and every /api route group.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	acApp "learnhub/internal/application/accesscontrol"
	authApp "learnhub/internal/application/auth"
	authzApp "learnhub/internal/application/authz"
	catalogApp "learnhub/internal/application/catalog"
	courseApp "learnhub/internal/application/course"
	userApp "learnhub/internal/application/user"
	"learnhub/internal/infrastructure/auth"
	"learnhub/internal/infrastructure/config"
	"learnhub/internal/infrastructure/ratelimit"
	"learnhub/internal/infrastructure/repository"
	"learnhub/internal/interfaces/http/handlers"
	"learnhub/internal/interfaces/http/middleware"
	"learnhub/internal/interfaces/http/routes"
	"learnhub/internal/shared/db"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/services/markdown"
)

type Router struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	logger logger.Interface
}

func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	return &Router{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		logger: log,
	}
}

// SetupRoutes builds the full dependency graph and registers every
// route.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS([]string{"*"}))
	r.engine.Use(middleware.SecurityHeaders())

	// repositories
	userRepo := repository.NewUserRepository(r.db)
	roleRepo := repository.NewRoleRepository(r.db)
	permRepo := repository.NewPermissionRepository(r.db)
	courseRepo := repository.NewCourseRepository(r.db)
	masterRepo := repository.NewMasterRepository(r.db)
	subMasterRepo := repository.NewSubMasterRepository(r.db)
	entityRepo := repository.NewSystemEntityRepository(r.db)
	empPermRepo := repository.NewEmployeePermissionRepository(r.db)
	txManager := db.NewTransactionManager(r.db)

	// infrastructure services
	jwtService := auth.NewJWTService(r.cfg.Auth.JWT.Secret, r.cfg.Auth.JWT.ExpHours)
	hasher := auth.NewBcryptPasswordHasher(r.cfg.Auth.Password.BcryptCost)

	// application services
	authzService := authzApp.NewService(userRepo, roleRepo)
	authService := authApp.NewService(userRepo, roleRepo, jwtService, hasher, r.logger)
	userService := userApp.NewService(userRepo, roleRepo, authzService, hasher, r.logger)
	acService := acApp.NewService(roleRepo, permRepo, txManager, r.logger)
	courseService := courseApp.NewService(courseRepo, markdown.NewService(), r.logger)
	masterService := catalogApp.NewMasterService(masterRepo, r.logger)
	subMasterService := catalogApp.NewSubMasterService(subMasterRepo, masterRepo, r.logger)
	empPermService := catalogApp.NewEmployeePermissionService(empPermRepo, entityRepo, r.logger)

	// middleware
	authMW := middleware.NewAuthMiddleware(jwtService, userRepo, r.logger)
	capMW := middleware.NewCapabilityMiddleware(authzService, r.logger)
	rateLimiter := middleware.NewRateLimiter(r.buildRateLimiter(), ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   100,
		RequestsPerDay:    500,
	}, r.logger)

	healthHandler := handlers.NewHealthHandler(r.db)
	r.engine.GET("/health", healthHandler.Health)

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: handlers.NewAuthHandler(authService, r.logger),
		RateLimiter: rateLimiter,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    handlers.NewUserHandler(userService, r.logger),
		AuthMiddleware: authMW,
		Capabilities:   capMW,
	})

	routes.SetupAccessControlRoutes(api, &routes.AccessControlRouteConfig{
		PermissionHandler: handlers.NewPermissionHandler(acService, r.logger),
		RoleHandler:       handlers.NewRoleHandler(acService, r.logger),
		AuthMiddleware:    authMW,
		Capabilities:      capMW,
	})

	routes.SetupCourseRoutes(api, &routes.CourseRouteConfig{
		CourseHandler:  handlers.NewCourseHandler(courseService, r.logger),
		AuthMiddleware: authMW,
		Capabilities:   capMW,
	})

	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		MasterHandler:             handlers.NewMasterHandler(masterService, r.logger),
		SubMasterHandler:          handlers.NewSubMasterHandler(subMasterService, r.logger),
		EmployeePermissionHandler: handlers.NewEmployeePermissionHandler(empPermService, r.logger),
		AuthMiddleware:            authMW,
		Capabilities:              capMW,
	})
}

// buildRateLimiter picks redis when configured and enabled, otherwise
// the in-process fallback.
func (r *Router) buildRateLimiter() ratelimit.RateLimiter {
	if r.cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     r.cfg.Redis.Addr(),
			Password: r.cfg.Redis.Password,
			DB:       r.cfg.Redis.DB,
		})
		return ratelimit.NewRedisRateLimiter(client)
	}
	return ratelimit.NewMemoryRateLimiter()
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
