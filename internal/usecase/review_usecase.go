package usecase

import (
	"context"

	"bakery/internal/domain/entity"
)

// SubmitReviewInput is what a signed-in customer sends with a review.
type SubmitReviewInput struct {
	UserID     string
	AuthorName string
	Email      string
	OrderID    string
	Rating     int
	Comment    string
}

// SubmitReviewResult is the committed state after a submission.
type SubmitReviewResult struct {
	Review   *entity.Review       `json:"review"`
	Summary  entity.RatingSummary `json:"summary"`
	Replaced bool                 `json:"replaced"` // An earlier review by the same user was overwritten
}

// ReconcileResult reports what a summary reconciliation found.
type ReconcileResult struct {
	Summary entity.RatingSummary `json:"summary"`
	Drifted bool                 `json:"drifted"` // The stored summary disagreed with the reviews and was rewritten
	Skipped bool                 `json:"skipped"` // The resubmit policy keeps no record to rebuild from
}

// ReviewUsecase defines the interface for product review use cases
type ReviewUsecase interface {
	// SubmitReview records the review and updates the product's rating summary atomically.
	SubmitReview(ctx context.Context, productID string, input *SubmitReviewInput) (*SubmitReviewResult, error)

	// GetRatingSummary returns the product's current rating summary.
	GetRatingSummary(ctx context.Context, productID string) (*entity.RatingSummary, error)

	// ListReviews returns the newest reviews of a product.
	ListReviews(ctx context.Context, productID string, limit int) ([]*entity.Review, error)

	// ReconcileSummary recomputes the product's summary from its stored reviews
	// and repairs the stored one if they disagree.
	ReconcileSummary(ctx context.Context, productID string) (*ReconcileResult, error)
}
