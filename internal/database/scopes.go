package database

import (
	"gorm.io/gorm"
)

// OwnedBy limits a journal query to one user's rows.
func OwnedBy(username string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("username = ?", username)
	}
}

// DateBetween keeps rows whose date falls in [from, to]. Dates are
// YYYY-MM-DD strings, so lexical order is calendar order.
func DateBetween(from, to string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date >= ? AND date <= ?", from, to)
	}
}

// NewestFirst orders by entry date, then insertion order.
func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC").Order("id DESC")
}

// Paginate applies offset and limit. A non-positive limit disables paging.
func Paginate(offset, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Offset(offset).Limit(limit)
	}
}
