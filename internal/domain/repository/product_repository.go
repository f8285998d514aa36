// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bakery/internal/domain/entity"
)

// ProductRepository reads and writes the rating summary stored on a product.
type ProductRepository interface {
	// FindRatingSummary returns the product's summary. A product without a
	// summary (or without a document at all) yields entity.EmptyRatingSummary.
	FindRatingSummary(ctx context.Context, productID string) (*entity.RatingSummary, error)

	// FindRatingSummaryForUpdate is FindRatingSummary with write intent: stores
	// that lock pessimistically take the lock here.
	FindRatingSummaryForUpdate(ctx context.Context, productID string) (*entity.RatingSummary, error)

	// SaveRatingSummary overwrites the summary fields, creating the product
	// record if needed. Other product fields are left untouched.
	SaveRatingSummary(ctx context.Context, productID string, summary entity.RatingSummary) error
}
