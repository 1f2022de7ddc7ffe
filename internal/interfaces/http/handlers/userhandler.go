package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userApp "learnhub/internal/application/user"
	"learnhub/internal/interfaces/http/middleware"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

type UserHandler struct {
	users  *userApp.Service
	logger logger.Interface
}

func NewUserHandler(users *userApp.Service, log logger.Interface) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: log,
	}
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Username  *string `json:"username"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	RoleID    *uint   `json:"roleId"`
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	views, err := h.users.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", views)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", view)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update user request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.users.Update(c.Request.Context(), actorID, id, userApp.UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		RoleID:    req.RoleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", view)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}
