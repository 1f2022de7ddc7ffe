package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"learnhub/internal/domain/user"
	"learnhub/internal/infrastructure/auth"
	"learnhub/internal/shared/constants"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     log,
	}
}

// RequireAuth verifies the bearer token and re-fetches the user so a
// deleted account or a role change is reflected on the very next
// request, not at token refresh.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Errorw("failed to load token principal", "error", err, "user_id", claims.UserID)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}
		if u == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user no longer exists")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyRoleID, u.RoleID())

		c.Next()
	}
}

// ActorID returns the authenticated user's id from the request context.
func ActorID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
