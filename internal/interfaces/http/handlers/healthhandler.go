package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"learnhub/internal/shared/utils"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports liveness. The database ping is best-effort: the
// process is still alive when the database is not, and the status field
// says which.
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "ok"
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			dbStatus = "unavailable"
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Service is healthy", gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
