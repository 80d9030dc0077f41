package repository

import (
	"time"

	"github.com/sangkips/shopadmin-api/pkg/pagination"
	"gorm.io/gorm"
)

// Paginate returns a GORM scope applying offset and limit from validated params
func Paginate(params *pagination.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		params.Validate()
		return db.Offset(params.Offset()).Limit(params.PerPage)
	}
}

// PlacedBetween returns a GORM scope filtering orders by their epoch-millisecond
// timestamp. Nil bounds are open.
func PlacedBetween(start, end *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != nil {
			db = db.Where("placed_at >= ?", start.UnixMilli())
		}
		if end != nil {
			db = db.Where("placed_at <= ?", end.UnixMilli())
		}
		return db
	}
}

// Search returns a GORM scope matching term case-insensitively against column.
func Search(column, term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where(column+" ILIKE ?", "%"+term+"%")
	}
}
