package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authApp "learnhub/internal/application/auth"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

type AuthHandler struct {
	auth   *authApp.Service
	logger logger.Interface
}

func NewAuthHandler(auth *authApp.Service, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: log,
	}
}

type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	RoleName  string `json:"roleName"`
}

type LoginRequest struct {
	// Identifier carries an email or a username; "email" is kept as an
	// accepted alias for older clients.
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Password   string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid signup request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.auth.Register(c.Request.Context(), authApp.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		RoleName:  req.RoleName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "User registered successfully", result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}

	result, err := h.auth.Login(c.Request.Context(), authApp.LoginInput{
		Identifier: identifier,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}
