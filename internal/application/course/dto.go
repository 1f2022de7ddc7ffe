package course

import (
	"time"

	courseDomain "learnhub/internal/domain/course"
)

type View struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	CourseType       string     `json:"courseType"`
	Duration         *string    `json:"duration,omitempty"`
	Description      *string    `json:"description,omitempty"`
	TrainerID        *uint      `json:"trainerId,omitempty"`
	TargetAudiences  []string   `json:"targetAudiences"`
	Thumbnail        *string    `json:"thumbnail,omitempty"`
	Level            *string    `json:"level,omitempty"`
	LastDate         *time.Time `json:"lastDate,omitempty"`
	ShowFeedback     bool       `json:"showFeedback"`
	FeedbackQuestion *string    `json:"feedbackQuestion,omitempty"`
	Status           string     `json:"status"`
	CreatedBy        *uint      `json:"createdBy,omitempty"`
	UpdatedBy        *uint      `json:"updatedBy,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func NewView(c *courseDomain.Course) View {
	audiences := c.TargetAudiences()
	if audiences == nil {
		audiences = []string{}
	}
	return View{
		ID:               c.ID(),
		Name:             c.Name(),
		CourseType:       c.Type(),
		Duration:         c.Duration(),
		Description:      c.Description(),
		TrainerID:        c.TrainerID(),
		TargetAudiences:  audiences,
		Thumbnail:        c.Thumbnail(),
		Level:            c.Level(),
		LastDate:         c.LastDate(),
		ShowFeedback:     c.ShowFeedback(),
		FeedbackQuestion: c.FeedbackQuestion(),
		Status:           c.Status(),
		CreatedBy:        c.CreatedBy(),
		UpdatedBy:        c.UpdatedBy(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}
