package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	acApp "learnhub/internal/application/accesscontrol"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

type PermissionHandler struct {
	service *acApp.Service
	logger  logger.Interface
}

func NewPermissionHandler(service *acApp.Service, log logger.Interface) *PermissionHandler {
	return &PermissionHandler{
		service: service,
		logger:  log,
	}
}

type CreatePermissionRequest struct {
	Module  string `json:"module" binding:"required"`
	Action  string `json:"action" binding:"required"`
	RoleID  *uint  `json:"roleId"`
	RoleIDs []uint `json:"roleIds"`
}

type UpdatePermissionRequest struct {
	Module *string `json:"module"`
	Action *string `json:"action"`
	RoleID *uint   `json:"roleId"`
	// RoleIDs replaces the linked role set wholesale when present.
	RoleIDs     *[]uint `json:"roleIds"`
	ClearRoleID bool    `json:"clearRoleId"`
}

func (h *PermissionHandler) CreatePermission(c *gin.Context) {
	var req CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create permission request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.service.CreatePermission(c.Request.Context(), acApp.CreatePermissionInput{
		Module:  req.Module,
		Action:  req.Action,
		RoleID:  req.RoleID,
		RoleIDs: req.RoleIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, "Permission created successfully", view)
}

func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	views, err := h.service.ListPermissions(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Permissions retrieved successfully", views)
}

func (h *PermissionHandler) GetPermission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.service.GetPermission(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Permission retrieved successfully", view)
}

func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update permission request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	input := acApp.UpdatePermissionInput{
		Module:      req.Module,
		Action:      req.Action,
		RoleID:      req.RoleID,
		ClearRoleID: req.ClearRoleID,
	}
	if req.RoleIDs != nil {
		input.RoleIDs = *req.RoleIDs
		input.SyncRoles = true
	}

	view, err := h.service.UpdatePermission(c.Request.Context(), id, input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Permission updated successfully", view)
}

func (h *PermissionHandler) DeletePermission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeletePermission(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Permission deleted successfully", nil)
}
