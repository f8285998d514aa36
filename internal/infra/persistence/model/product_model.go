// Package model holds the GORM table structs. Domain entities never carry
// gorm tags; repositories map between the two.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProductRatingModel is the 'product_ratings' table: one row per product
// that has ever been reviewed.
type ProductRatingModel struct {
	ProductID       string                             `gorm:"type:varchar(128);primaryKey"`
	AvgRating       float64                            `gorm:"not null;default:0"`
	RatingCount     int                                `gorm:"not null;default:0"`
	RatingBreakdown datatypes.JSONType[map[string]int] `gorm:"type:jsonb;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductRatingModel) TableName() string {
	return "product_ratings"
}
