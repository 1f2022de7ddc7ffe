package models

import (
	"time"

	"gorm.io/gorm"

	"learnhub/internal/shared/constants"
)

type SystemEntityModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100"`
	Code      string `gorm:"not null;size:50;index"`
	IsActive  bool   `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (SystemEntityModel) TableName() string {
	return constants.TableSystemEntities
}
