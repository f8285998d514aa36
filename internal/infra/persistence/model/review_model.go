package model

import "time"

// ReviewModel is the 'product_reviews' table. The composite primary key is
// what makes a resubmission replace rather than duplicate.
type ReviewModel struct {
	ProductID  string    `gorm:"type:varchar(128);primaryKey"`
	UserID     string    `gorm:"type:varchar(128);primaryKey"`
	Rating     int       `gorm:"not null;check:rating_range,rating BETWEEN 1 AND 5"`
	Comment    string    `gorm:"type:text;not null;default:''"`
	AuthorName string    `gorm:"type:varchar(255);not null;default:''"`
	Email      string    `gorm:"type:varchar(255)"`
	OrderID    string    `gorm:"type:varchar(128)"`
	CreatedAt  time.Time `gorm:"index:idx_product_reviews_created"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "product_reviews"
}
