package models

import (
	"time"

	"learnhub/internal/shared/constants"
)

// UserModel is the persistence model for users. It is the
// anti-corruption layer between the domain entity and the database.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	FirstName    string `gorm:"not null;size:100"`
	LastName     string `gorm:"not null;size:100"`
	Username     string `gorm:"uniqueIndex;not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	RoleID       uint   `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
