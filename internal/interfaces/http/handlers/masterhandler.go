package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogApp "learnhub/internal/application/catalog"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

type MasterHandler struct {
	masters *catalogApp.MasterService
	logger  logger.Interface
}

func NewMasterHandler(masters *catalogApp.MasterService, log logger.Interface) *MasterHandler {
	return &MasterHandler{
		masters: masters,
		logger:  log,
	}
}

type CreateMasterRequest struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required"`
	IsActive *bool  `json:"isActive"`
	Sequence *int   `json:"sequence"`
}

type UpdateMasterRequest struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	IsActive *bool   `json:"isActive"`
	Sequence *int    `json:"sequence"`
}

func (h *MasterHandler) CreateMaster(c *gin.Context) {
	var req CreateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create master request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.masters.Create(c.Request.Context(), req.Name, req.Code, catalogApp.MasterInput{
		IsActive: req.IsActive,
		Sequence: req.Sequence,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, "Master created successfully", view)
}

func (h *MasterHandler) ListMasters(c *gin.Context) {
	views, err := h.masters.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Masters retrieved successfully", views)
}

func (h *MasterHandler) GetMaster(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "master")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.masters.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Master retrieved successfully", view)
}

func (h *MasterHandler) UpdateMaster(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "master")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update master request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.masters.Update(c.Request.Context(), id, catalogApp.MasterInput{
		Name:     req.Name,
		Code:     req.Code,
		IsActive: req.IsActive,
		Sequence: req.Sequence,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Master updated successfully", view)
}

func (h *MasterHandler) DeleteMaster(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "master")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.masters.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Master deleted successfully", nil)
}
