package course

import (
	"context"
	"fmt"
	"time"

	courseDomain "learnhub/internal/domain/course"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/services/markdown"
)

// dateLayout is the wire format for lastDate.
const dateLayout = "2006-01-02"

type CreateInput struct {
	Name             string
	CourseType       string
	Duration         *string
	Description      *string
	TrainerID        *uint
	TargetAudiences  []string
	Thumbnail        *string
	Level            *string
	LastDate         *string
	ShowFeedback     *bool
	FeedbackQuestion *string
	Status           *string
}

type UpdateInput struct {
	Name             *string
	CourseType       *string
	Duration         *string
	Description      *string
	TrainerID        *uint
	TargetAudiences  []string
	Thumbnail        *string
	Level            *string
	LastDate         *string
	ShowFeedback     *bool
	FeedbackQuestion *string
	Status           *string
}

type Service struct {
	repo     courseDomain.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewService(repo courseDomain.Repository, md markdown.Service, log logger.Interface) *Service {
	return &Service{
		repo:     repo,
		markdown: md,
		logger:   log,
	}
}

func (s *Service) Create(ctx context.Context, actorID uint, input CreateInput) (*View, error) {
	c, err := courseDomain.NewCourse(input.Name, input.CourseType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.applyOptionalFields(c, input.Duration, input.Description, input.TrainerID,
		input.TargetAudiences, input.Thumbnail, input.Level, input.LastDate,
		input.ShowFeedback, input.FeedbackQuestion, input.Status); err != nil {
		return nil, err
	}

	actor := actorID
	c.SetCreatedBy(&actor)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Infow("course created", "course_id", c.ID(), "actor_id", actorID)

	view := NewView(c)
	return &view, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*View, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("course not found")
	}

	view := NewView(c)
	return &view, nil
}

func (s *Service) List(ctx context.Context) ([]View, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(courses))
	for _, c := range courses {
		views = append(views, NewView(c))
	}
	return views, nil
}

func (s *Service) Update(ctx context.Context, actorID, id uint, input UpdateInput) (*View, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("course not found")
	}

	if input.Name != nil {
		if err := c.Rename(*input.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if input.CourseType != nil {
		if err := c.SetType(*input.CourseType); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.applyOptionalFields(c, input.Duration, input.Description, input.TrainerID,
		input.TargetAudiences, input.Thumbnail, input.Level, input.LastDate,
		input.ShowFeedback, input.FeedbackQuestion, input.Status); err != nil {
		return nil, err
	}

	actor := actorID
	c.SetUpdatedBy(&actor)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Infow("course updated", "course_id", c.ID(), "actor_id", actorID)

	view := NewView(c)
	return &view, nil
}

func (s *Service) Delete(ctx context.Context, actorID, id uint) error {
	actor := actorID
	if err := s.repo.SoftDelete(ctx, id, &actor); err != nil {
		return err
	}

	s.logger.Infow("course deleted", "course_id", id, "actor_id", actorID)
	return nil
}

// RenderDescription converts the stored markdown description to
// sanitized HTML for display contexts.
func (s *Service) RenderDescription(ctx context.Context, id uint) (string, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", errors.NewNotFoundError("course not found")
	}
	if c.Description() == nil {
		return "", nil
	}

	html, err := s.markdown.ToHTMLSanitized(*c.Description())
	if err != nil {
		return "", fmt.Errorf("failed to render description: %w", err)
	}
	return html, nil
}

func (s *Service) applyOptionalFields(
	c *courseDomain.Course,
	duration, description *string,
	trainerID *uint,
	audiences []string,
	thumbnail, level, lastDate *string,
	showFeedback *bool,
	feedbackQuestion, status *string,
) error {
	if duration != nil {
		c.SetDuration(duration)
	}
	if description != nil {
		// Stored as provided; sanitization happens on render. The raw
		// markdown is still stripped of active HTML before persisting.
		clean := s.markdown.Sanitize(*description)
		c.SetDescription(&clean)
	}
	if trainerID != nil {
		c.SetTrainerID(trainerID)
	}
	if audiences != nil {
		c.SetTargetAudiences(audiences)
	}
	if thumbnail != nil {
		c.SetThumbnail(thumbnail)
	}
	if level != nil {
		c.SetLevel(level)
	}
	if lastDate != nil {
		parsed, err := time.Parse(dateLayout, *lastDate)
		if err != nil {
			return errors.NewValidationError(fmt.Sprintf("lastDate must be in %s format", dateLayout))
		}
		c.SetLastDate(&parsed)
	}
	if showFeedback != nil {
		c.SetShowFeedback(*showFeedback)
	}
	if feedbackQuestion != nil {
		c.SetFeedbackQuestion(feedbackQuestion)
	}
	if status != nil {
		c.SetStatus(*status)
	}
	return nil
}
