package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authzApp "learnhub/internal/application/authz"
	"learnhub/internal/domain/accesscontrol"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

type CapabilityMiddleware struct {
	authz  *authzApp.Service
	logger logger.Interface
}

func NewCapabilityMiddleware(authz *authzApp.Service, log logger.Interface) *CapabilityMiddleware {
	return &CapabilityMiddleware{
		authz:  authz,
		logger: log,
	}
}

// RequireCapabilities admits only principals holding every listed
// capability. The check reads the grant tables fresh on each request.
func (m *CapabilityMiddleware) RequireCapabilities(capabilities ...string) gin.HandlerFunc {
	required := mustParseAll(capabilities)

	return func(c *gin.Context) {
		actorID, ok := ActorID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		if err := m.authz.Authorize(c.Request.Context(), actorID, required...); err != nil {
			if errors.IsForbiddenError(err) {
				m.logger.Warnw("capability check failed",
					"user_id", actorID,
					"path", c.Request.URL.Path,
					"required", capabilities)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSelfOrCapabilities admits the principal when the :id path
// parameter is their own id, otherwise falls back to the capability
// check.
func (m *CapabilityMiddleware) RequireSelfOrCapabilities(idParam string, capabilities ...string) gin.HandlerFunc {
	required := mustParseAll(capabilities)

	return func(c *gin.Context) {
		actorID, ok := ActorID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		targetID, err := utils.ParseIDParam(c, idParam, "resource")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if err := m.authz.AuthorizeSelfOr(c.Request.Context(), actorID, targetID, required...); err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

func mustParseAll(capabilities []string) []accesscontrol.Capability {
	required := make([]accesscontrol.Capability, 0, len(capabilities))
	for _, s := range capabilities {
		required = append(required, accesscontrol.MustCapability(s))
	}
	return required
}
