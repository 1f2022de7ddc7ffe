package db

import (
	"gorm.io/gorm"
)

// NotDeleted is a GORM scope that filters out soft-deleted records.
// Use it when querying with Table() or raw joins where GORM's automatic
// soft delete filtering does not apply.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// NotDeletedWithAlias filters out soft-deleted records using a table alias,
// for joins where the deleted_at column must be qualified.
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".deleted_at IS NULL")
	}
}
