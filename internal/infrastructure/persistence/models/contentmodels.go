package models

import (
	"time"

	"gorm.io/gorm"

	"learnhub/internal/shared/constants"
)

// Content tables below are migrated alongside the rest of the schema.
// They back course material that is soft-deleted in lockstep with the
// owning course.

type ModuleModel struct {
	ID        uint    `gorm:"primarykey"`
	CourseID  uint    `gorm:"not null;index"`
	Name      string  `gorm:"not null;size:255"`
	Content   *string `gorm:"type:text"`
	Sequence  int     `gorm:"default:0"`
	CreatedBy *uint
	UpdatedBy *uint
	DeletedBy *uint
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ModuleModel) TableName() string {
	return constants.TableModules
}

type AssignmentModel struct {
	ID          uint    `gorm:"primarykey"`
	Title       string  `gorm:"not null;size:255"`
	Description *string `gorm:"type:text"`
	DueDate     *time.Time
	CreatedBy   *uint
	UpdatedBy   *uint
	DeletedBy   *uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (AssignmentModel) TableName() string {
	return constants.TableAssignments
}

type AssessmentModel struct {
	ID          uint    `gorm:"primarykey"`
	Title       string  `gorm:"not null;size:255"`
	Description *string `gorm:"type:text"`
	TotalMarks  *int
	CreatedBy   *uint
	UpdatedBy   *uint
	DeletedBy   *uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (AssessmentModel) TableName() string {
	return constants.TableAssessments
}

type CourseAssignmentModel struct {
	ID           uint `gorm:"primarykey"`
	CourseID     uint `gorm:"not null;uniqueIndex:idx_course_assignment"`
	AssignmentID uint `gorm:"not null;uniqueIndex:idx_course_assignment"`
	CreatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (CourseAssignmentModel) TableName() string {
	return constants.TableCourseAssignments
}

type CourseAssessmentModel struct {
	ID           uint `gorm:"primarykey"`
	CourseID     uint `gorm:"not null;uniqueIndex:idx_course_assessment"`
	AssessmentID uint `gorm:"not null;uniqueIndex:idx_course_assessment"`
	CreatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (CourseAssessmentModel) TableName() string {
	return constants.TableCourseAssessments
}
