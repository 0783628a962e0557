// Package db provides transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
)

// Active filters out soft-deleted rows, which in this schema are flagged
// with is_active = false rather than a deleted_at timestamp.
//
//	db.Model(&models.SpaceModel{}).Scopes(db.Active()).Find(&rows)
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}

// ActiveWithAlias is Active for joined queries.
func ActiveWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".is_active = ?", true)
	}
}
