package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"learnhub/internal/domain/course"
	"learnhub/internal/infrastructure/persistence/models"
	"learnhub/internal/shared/db"
	"learnhub/internal/shared/errors"
)

type CourseRepositoryImpl struct {
	db *gorm.DB
}

func NewCourseRepository(gdb *gorm.DB) course.Repository {
	return &CourseRepositoryImpl{db: gdb}
}

func (r *CourseRepositoryImpl) Create(ctx context.Context, c *course.Course) error {
	model, err := courseEntityToModel(c)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CourseRepositoryImpl) GetByID(ctx context.Context, id uint) (*course.Course, error) {
	var model models.CourseModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return courseModelToEntity(&model)
}

func (r *CourseRepositoryImpl) List(ctx context.Context) ([]*course.Course, error) {
	var courseModels []*models.CourseModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&courseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]*course.Course, 0, len(courseModels))
	for _, model := range courseModels {
		c, err := courseModelToEntity(model)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func (r *CourseRepositoryImpl) Update(ctx context.Context, c *course.Course) error {
	audiences, err := audiencesToJSON(c.TargetAudiences())
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.CourseModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]interface{}{
			"name":              c.Name(),
			"course_type":       c.Type(),
			"duration":          c.Duration(),
			"description":       c.Description(),
			"trainer_id":        c.TrainerID(),
			"target_audiences":  audiences,
			"thumbnail":         c.Thumbnail(),
			"level":             c.Level(),
			"last_date":         c.LastDate(),
			"show_feedback":     c.ShowFeedback(),
			"feedback_question": c.FeedbackQuestion(),
			"status":            c.Status(),
			"updated_by":        c.UpdatedBy(),
			"updated_at":        c.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update course: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("course not found")
	}
	return nil
}

// SoftDelete stamps deleted_by, then lets gorm set deleted_at. The row
// stays in place and drops out of default queries.
func (r *CourseRepositoryImpl) SoftDelete(ctx context.Context, id uint, deletedBy *uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CourseModel{}).
		Where("id = ?", id).
		Update("deleted_by", deletedBy)
	if result.Error != nil {
		return fmt.Errorf("failed to stamp course deleter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("course not found")
	}

	if err := tx.Delete(&models.CourseModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

func courseEntityToModel(c *course.Course) (*models.CourseModel, error) {
	audiences, err := audiencesToJSON(c.TargetAudiences())
	if err != nil {
		return nil, err
	}

	var lastDate *time.Time
	if c.LastDate() != nil {
		d := *c.LastDate()
		lastDate = &d
	}

	return &models.CourseModel{
		ID:               c.ID(),
		Name:             c.Name(),
		CourseType:       c.Type(),
		Duration:         c.Duration(),
		Description:      c.Description(),
		TrainerID:        c.TrainerID(),
		TargetAudiences:  audiences,
		Thumbnail:        c.Thumbnail(),
		Level:            c.Level(),
		LastDate:         lastDate,
		ShowFeedback:     c.ShowFeedback(),
		FeedbackQuestion: c.FeedbackQuestion(),
		Status:           c.Status(),
		CreatedBy:        c.CreatedBy(),
		UpdatedBy:        c.UpdatedBy(),
	}, nil
}

func courseModelToEntity(model *models.CourseModel) (*course.Course, error) {
	var audiences []string
	if len(model.TargetAudiences) > 0 {
		if err := json.Unmarshal(model.TargetAudiences, &audiences); err != nil {
			return nil, fmt.Errorf("failed to decode target audiences: %w", err)
		}
	}

	c, err := course.ReconstructCourse(
		model.ID,
		model.Name,
		model.CourseType,
		model.Duration,
		model.Description,
		model.TrainerID,
		audiences,
		model.Thumbnail,
		model.Level,
		model.LastDate,
		model.ShowFeedback,
		model.FeedbackQuestion,
		model.Status,
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct course: %w", err)
	}
	return c, nil
}

func audiencesToJSON(audiences []string) (datatypes.JSON, error) {
	if audiences == nil {
		audiences = []string{}
	}
	raw, err := json.Marshal(audiences)
	if err != nil {
		return nil, fmt.Errorf("failed to encode target audiences: %w", err)
	}
	return datatypes.JSON(raw), nil
}
