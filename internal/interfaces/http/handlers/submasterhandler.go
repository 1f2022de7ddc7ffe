package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogApp "learnhub/internal/application/catalog"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

type SubMasterHandler struct {
	subMasters *catalogApp.SubMasterService
	logger     logger.Interface
}

func NewSubMasterHandler(subMasters *catalogApp.SubMasterService, log logger.Interface) *SubMasterHandler {
	return &SubMasterHandler{
		subMasters: subMasters,
		logger:     log,
	}
}

type CreateSubMasterRequest struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required"`
	MasterID uint   `json:"masterId" binding:"required"`
	ParentID *uint  `json:"parentId"`
	IsActive *bool  `json:"isActive"`
	Sequence *int   `json:"sequence"`
}

type UpdateSubMasterRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	MasterID    *uint   `json:"masterId"`
	ParentID    *uint   `json:"parentId"`
	ClearParent bool    `json:"clearParent"`
	IsActive    *bool   `json:"isActive"`
	Sequence    *int    `json:"sequence"`
}

func (h *SubMasterHandler) CreateSubMaster(c *gin.Context) {
	var req CreateSubMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create sub-master request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.subMasters.Create(c.Request.Context(), req.Name, req.Code, req.MasterID, req.ParentID, catalogApp.SubMasterInput{
		IsActive: req.IsActive,
		Sequence: req.Sequence,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, "Sub-master created successfully", view)
}

func (h *SubMasterHandler) ListSubMasters(c *gin.Context) {
	views, err := h.subMasters.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Sub-masters retrieved successfully", views)
}

func (h *SubMasterHandler) GetSubMaster(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sub-master")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.subMasters.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Sub-master retrieved successfully", view)
}

func (h *SubMasterHandler) UpdateSubMaster(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sub-master")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update sub-master request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.subMasters.Update(c.Request.Context(), id, catalogApp.SubMasterInput{
		Name:        req.Name,
		Code:        req.Code,
		MasterID:    req.MasterID,
		ParentID:    req.ParentID,
		ClearParent: req.ClearParent,
		IsActive:    req.IsActive,
		Sequence:    req.Sequence,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Sub-master updated successfully", view)
}

func (h *SubMasterHandler) DeleteSubMaster(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sub-master")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.subMasters.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Sub-master deleted successfully", nil)
}
