package repository

import (
	"context"

	"bakery/internal/domain/entity"
	"bakery/internal/errors"
)

// ErrReviewNotFound is returned when a user has not reviewed a product.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository persists reviews keyed by (productID, userID).
type ReviewRepository interface {
	// FindByUser returns the user's review of the product or ErrReviewNotFound.
	FindByUser(ctx context.Context, productID, userID string) (*entity.Review, error)

	// Upsert creates or replaces the user's review. A zero CreatedAt is
	// assigned by the store; UpdatedAt is always set by the store.
	Upsert(ctx context.Context, review *entity.Review) error

	// ListByProduct returns up to limit reviews, newest first. A limit of
	// zero or less returns every review of the product.
	ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.Review, error)
}
