package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogApp "learnhub/internal/application/catalog"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

type EmployeePermissionHandler struct {
	service *catalogApp.EmployeePermissionService
	logger  logger.Interface
}

func NewEmployeePermissionHandler(service *catalogApp.EmployeePermissionService, log logger.Interface) *EmployeePermissionHandler {
	return &EmployeePermissionHandler{
		service: service,
		logger:  log,
	}
}

type CreateEmployeePermissionRequest struct {
	EmpID       uint  `json:"empId" binding:"required"`
	EntityID    uint  `json:"entityId" binding:"required"`
	Create      *bool `json:"create"`
	Read        *bool `json:"read"`
	Update      *bool `json:"update"`
	Delete      *bool `json:"delete"`
	AdminAccess *bool `json:"adminAccess"`
}

type UpdateEmployeePermissionRequest struct {
	EmpID       *uint `json:"empId"`
	EntityID    *uint `json:"entityId"`
	Create      *bool `json:"create"`
	Read        *bool `json:"read"`
	Update      *bool `json:"update"`
	Delete      *bool `json:"delete"`
	AdminAccess *bool `json:"adminAccess"`
}

func (h *EmployeePermissionHandler) CreateEmployeePermission(c *gin.Context) {
	var req CreateEmployeePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create employee permission request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.service.Create(c.Request.Context(), req.EmpID, req.EntityID, catalogApp.EmployeePermissionInput{
		Create:      req.Create,
		Read:        req.Read,
		Update:      req.Update,
		Delete:      req.Delete,
		AdminAccess: req.AdminAccess,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, "Employee permission created successfully", view)
}

func (h *EmployeePermissionHandler) ListEmployeePermissions(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Employee permissions retrieved successfully", views)
}

func (h *EmployeePermissionHandler) GetEmployeePermission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "employee permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Employee permission retrieved successfully", view)
}

func (h *EmployeePermissionHandler) UpdateEmployeePermission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "employee permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEmployeePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update employee permission request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.service.Update(c.Request.Context(), id, catalogApp.EmployeePermissionInput{
		EmployeeID:  req.EmpID,
		EntityID:    req.EntityID,
		Create:      req.Create,
		Read:        req.Read,
		Update:      req.Update,
		Delete:      req.Delete,
		AdminAccess: req.AdminAccess,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Employee permission updated successfully", view)
}

func (h *EmployeePermissionHandler) DeleteEmployeePermission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "employee permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Employee permission deleted successfully", nil)
}
