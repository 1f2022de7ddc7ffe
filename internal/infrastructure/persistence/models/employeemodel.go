package models

import (
	"time"

	"gorm.io/gorm"

	"learnhub/internal/shared/constants"
)

type EmployeeModel struct {
	ID          uint   `gorm:"primarykey"`
	FirstName   string `gorm:"not null;size:100"`
	LastName    string `gorm:"not null;size:100"`
	Email       string `gorm:"not null;size:255;index"`
	SubMasterID *uint  `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}
