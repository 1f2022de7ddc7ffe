package models

import (
	"time"

	"gorm.io/gorm"

	"learnhub/internal/shared/constants"
)

type SubMasterModel struct {
	ID        uint   `gorm:"primarykey"`
	MasterID  uint   `gorm:"not null;index"`
	ParentID  *uint  `gorm:"index"`
	Name      string `gorm:"not null;size:100"`
	Code      string `gorm:"not null;size:50;index"`
	IsActive  bool   `gorm:"default:true"`
	Sequence  int    `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (SubMasterModel) TableName() string {
	return constants.TableSubMasters
}
