package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	acApp "learnhub/internal/application/accesscontrol"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

type RoleHandler struct {
	service *acApp.Service
	logger  logger.Interface
}

func NewRoleHandler(service *acApp.Service, log logger.Interface) *RoleHandler {
	return &RoleHandler{
		service: service,
		logger:  log,
	}
}

// ListRoles returns every role with its flattened capability strings.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	views, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Roles retrieved successfully", views)
}
