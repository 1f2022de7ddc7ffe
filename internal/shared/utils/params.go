package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"learnhub/internal/shared/errors"
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// entityName is used in the error message (e.g. "user", "permission").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " identifier")
	}
	return uint(id), nil
}
