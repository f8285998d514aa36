package memory

import (
	"context"
	"sort"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
)

type productRepository struct {
	tx *transaction
}

func (r *productRepository) FindRatingSummary(_ context.Context, productID string) (*entity.RatingSummary, error) {
	summary := r.tx.getProduct(productID)

	return &summary, nil
}

// FindRatingSummaryForUpdate is the same read; the conflict check at commit
// covers write intent.
func (r *productRepository) FindRatingSummaryForUpdate(ctx context.Context, productID string) (*entity.RatingSummary, error) {
	return r.FindRatingSummary(ctx, productID)
}

func (r *productRepository) SaveRatingSummary(_ context.Context, productID string, summary entity.RatingSummary) error {
	r.tx.productWrites[productID] = summary.Normalize()

	return nil
}

type reviewRepository struct {
	tx *transaction
}

func (r *reviewRepository) FindByUser(_ context.Context, productID, userID string) (*entity.Review, error) {
	review, ok := r.tx.getReview(reviewKey{productID: productID, userID: userID})
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	return &review, nil
}

func (r *reviewRepository) Upsert(_ context.Context, review *entity.Review) error {
	key := reviewKey{productID: review.ProductID, userID: review.UserID}
	now := r.tx.store.now()

	if review.CreatedAt.IsZero() {
		if existing, ok := r.tx.getReview(key); ok {
			review.CreatedAt = existing.CreatedAt
		} else {
			review.CreatedAt = now
		}
	}
	review.UpdatedAt = now

	r.tx.reviewWrites[key] = *review

	return nil
}

func (r *reviewRepository) ListByProduct(_ context.Context, productID string, limit int) ([]*entity.Review, error) {
	merged := make(map[string]entity.Review)
	for _, review := range r.tx.store.productReviews(productID) {
		merged[review.UserID] = review
	}
	for key, review := range r.tx.reviewWrites {
		if key.productID == productID {
			merged[key.userID] = review
		}
	}

	out := make([]*entity.Review, 0, len(merged))
	for _, review := range merged {
		out = append(out, &review)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].UserID < out[j].UserID
		}

		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
