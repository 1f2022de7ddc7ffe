// Package course holds the training programme entity. Courses are
// soft-deleted content: queries must filter by lifecycle state.
package course

import (
	"fmt"
	"time"
)

type Course struct {
	id               uint
	name             string
	courseType       string
	duration         *string
	description      *string
	trainerID        *uint
	targetAudiences  []string
	thumbnail        *string
	level            *string
	lastDate         *time.Time
	showFeedback     bool
	feedbackQuestion *string
	status           string
	createdBy        *uint
	updatedBy        *uint
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCourse(name, courseType string) (*Course, error) {
	if name == "" {
		return nil, fmt.Errorf("course name is required")
	}
	if courseType == "" {
		return nil, fmt.Errorf("course type is required")
	}

	now := time.Now()
	return &Course{
		name:       name,
		courseType: courseType,
		status:     "draft",
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructCourse(
	id uint,
	name, courseType string,
	duration, description *string,
	trainerID *uint,
	targetAudiences []string,
	thumbnail, level *string,
	lastDate *time.Time,
	showFeedback bool,
	feedbackQuestion *string,
	status string,
	createdBy, updatedBy *uint,
	createdAt, updatedAt time.Time,
) (*Course, error) {
	if id == 0 {
		return nil, fmt.Errorf("course ID cannot be zero")
	}
	return &Course{
		id:               id,
		name:             name,
		courseType:       courseType,
		duration:         duration,
		description:      description,
		trainerID:        trainerID,
		targetAudiences:  targetAudiences,
		thumbnail:        thumbnail,
		level:            level,
		lastDate:         lastDate,
		showFeedback:     showFeedback,
		feedbackQuestion: feedbackQuestion,
		status:           status,
		createdBy:        createdBy,
		updatedBy:        updatedBy,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *Course) ID() uint                  { return c.id }
func (c *Course) Name() string              { return c.name }
func (c *Course) Type() string              { return c.courseType }
func (c *Course) Duration() *string         { return c.duration }
func (c *Course) Description() *string      { return c.description }
func (c *Course) TrainerID() *uint          { return c.trainerID }
func (c *Course) TargetAudiences() []string { return c.targetAudiences }
func (c *Course) Thumbnail() *string        { return c.thumbnail }
func (c *Course) Level() *string            { return c.level }
func (c *Course) LastDate() *time.Time      { return c.lastDate }
func (c *Course) ShowFeedback() bool        { return c.showFeedback }
func (c *Course) FeedbackQuestion() *string { return c.feedbackQuestion }
func (c *Course) Status() string            { return c.status }
func (c *Course) CreatedBy() *uint          { return c.createdBy }
func (c *Course) UpdatedBy() *uint          { return c.updatedBy }
func (c *Course) CreatedAt() time.Time      { return c.createdAt }
func (c *Course) UpdatedAt() time.Time      { return c.updatedAt }

func (c *Course) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("course ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("course ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Course) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("course name cannot be empty")
	}
	c.name = name
	c.touch()
	return nil
}

func (c *Course) SetType(courseType string) error {
	if courseType == "" {
		return fmt.Errorf("course type cannot be empty")
	}
	c.courseType = courseType
	c.touch()
	return nil
}

func (c *Course) SetDuration(duration *string)          { c.duration = duration; c.touch() }
func (c *Course) SetDescription(description *string)    { c.description = description; c.touch() }
func (c *Course) SetTrainerID(trainerID *uint)          { c.trainerID = trainerID; c.touch() }
func (c *Course) SetTargetAudiences(audiences []string) { c.targetAudiences = audiences; c.touch() }
func (c *Course) SetThumbnail(thumbnail *string)        { c.thumbnail = thumbnail; c.touch() }
func (c *Course) SetLevel(level *string)                { c.level = level; c.touch() }
func (c *Course) SetLastDate(lastDate *time.Time)       { c.lastDate = lastDate; c.touch() }
func (c *Course) SetShowFeedback(show bool)             { c.showFeedback = show; c.touch() }
func (c *Course) SetFeedbackQuestion(question *string)  { c.feedbackQuestion = question; c.touch() }
func (c *Course) SetStatus(status string)               { c.status = status; c.touch() }
func (c *Course) SetCreatedBy(userID *uint)             { c.createdBy = userID }
func (c *Course) SetUpdatedBy(userID *uint)             { c.updatedBy = userID; c.touch() }

func (c *Course) touch() {
	c.updatedAt = time.Now()
}
