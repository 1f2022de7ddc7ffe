package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/internal/shared/constants"
	"learnhub/internal/shared/errors"
)

// APIResponse is the envelope returned by every endpoint: a human
// readable message plus an optional data payload.
type APIResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Message: message,
		Data:    data,
	})
}

// CreatedResponse sends a 201 response
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	SuccessResponse(c, http.StatusCreated, message, data)
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{Message: message})
}

// ErrorResponseWithError maps an application error to its HTTP status.
// Non-AppError values surface as a generic 500 so internal details never
// leak to the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
}
