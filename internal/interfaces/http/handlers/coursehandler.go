package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	courseApp "learnhub/internal/application/course"
	"learnhub/internal/interfaces/http/middleware"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

type CourseHandler struct {
	courses *courseApp.Service
	logger  logger.Interface
}

func NewCourseHandler(courses *courseApp.Service, log logger.Interface) *CourseHandler {
	return &CourseHandler{
		courses: courses,
		logger:  log,
	}
}

type CreateCourseRequest struct {
	Name             string   `json:"name" binding:"required"`
	CourseType       string   `json:"courseType" binding:"required"`
	Duration         *string  `json:"duration"`
	Description      *string  `json:"description"`
	TrainerID        *uint    `json:"trainerId"`
	TargetAudiences  []string `json:"targetAudiences"`
	Thumbnail        *string  `json:"thumbnail"`
	Level            *string  `json:"level"`
	LastDate         *string  `json:"lastDate"`
	ShowFeedback     *bool    `json:"showFeedback"`
	FeedbackQuestion *string  `json:"feedbackQuestion"`
	Status           *string  `json:"status"`
}

type UpdateCourseRequest struct {
	Name             *string  `json:"name"`
	CourseType       *string  `json:"courseType"`
	Duration         *string  `json:"duration"`
	Description      *string  `json:"description"`
	TrainerID        *uint    `json:"trainerId"`
	TargetAudiences  []string `json:"targetAudiences"`
	Thumbnail        *string  `json:"thumbnail"`
	Level            *string  `json:"level"`
	LastDate         *string  `json:"lastDate"`
	ShowFeedback     *bool    `json:"showFeedback"`
	FeedbackQuestion *string  `json:"feedbackQuestion"`
	Status           *string  `json:"status"`
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create course request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.courses.Create(c.Request.Context(), actorID, courseApp.CreateInput{
		Name:             req.Name,
		CourseType:       req.CourseType,
		Duration:         req.Duration,
		Description:      req.Description,
		TrainerID:        req.TrainerID,
		TargetAudiences:  req.TargetAudiences,
		Thumbnail:        req.Thumbnail,
		Level:            req.Level,
		LastDate:         req.LastDate,
		ShowFeedback:     req.ShowFeedback,
		FeedbackQuestion: req.FeedbackQuestion,
		Status:           req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, "Course created successfully", view)
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	views, err := h.courses.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Courses retrieved successfully", views)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "course")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Course retrieved successfully", view)
}

// GetCourseDescription renders the stored markdown description as
// sanitized HTML.
func (h *CourseHandler) GetCourseDescription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "course")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	html, err := h.courses.RenderDescription(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Course description rendered successfully", gin.H{"html": html})
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "course")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update course request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := h.courses.Update(c.Request.Context(), actorID, id, courseApp.UpdateInput{
		Name:             req.Name,
		CourseType:       req.CourseType,
		Duration:         req.Duration,
		Description:      req.Description,
		TrainerID:        req.TrainerID,
		TargetAudiences:  req.TargetAudiences,
		Thumbnail:        req.Thumbnail,
		Level:            req.Level,
		LastDate:         req.LastDate,
		ShowFeedback:     req.ShowFeedback,
		FeedbackQuestion: req.FeedbackQuestion,
		Status:           req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Course updated successfully", view)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "course")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	if err := h.courses.Delete(c.Request.Context(), actorID, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Course deleted successfully", nil)
}
