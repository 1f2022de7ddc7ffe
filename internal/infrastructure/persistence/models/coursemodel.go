package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"learnhub/internal/shared/constants"
)

type CourseModel struct {
	ID               uint           `gorm:"primarykey"`
	Name             string         `gorm:"not null;size:255"`
	CourseType       string         `gorm:"not null;size:50"`
	Duration         *string        `gorm:"size:100"`
	Description      *string        `gorm:"type:text"`
	TrainerID        *uint          `gorm:"index"`
	TargetAudiences  datatypes.JSON `gorm:"column:target_audiences"`
	Thumbnail        *string        `gorm:"size:500"`
	Level            *string        `gorm:"size:50"`
	LastDate         *time.Time
	ShowFeedback     bool    `gorm:"default:false"`
	FeedbackQuestion *string `gorm:"type:text"`
	Status           string  `gorm:"not null;default:draft;size:20"`
	CreatedBy        *uint
	UpdatedBy        *uint
	DeletedBy        *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (CourseModel) TableName() string {
	return constants.TableCourses
}
