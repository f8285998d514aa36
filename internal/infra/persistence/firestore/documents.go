package firestore

import (
	"time"

	"bakery/internal/domain/entity"
)

// productDoc holds only the rating fields; other product fields on the same
// document are left alone because summaries are written with MergeAll.
type productDoc struct {
	AvgRating       float64        `firestore:"avgRating"`
	RatingCount     int            `firestore:"ratingCount"`
	RatingBreakdown map[string]int `firestore:"ratingBreakdown"`
}

type reviewDoc struct {
	ProductID  string    `firestore:"productId"`
	UserID     string    `firestore:"userId"`
	Rating     int       `firestore:"rating"`
	Comment    string    `firestore:"comment"`
	AuthorName string    `firestore:"authorName"`
	Email      string    `firestore:"email,omitempty"`
	OrderID    string    `firestore:"orderId,omitempty"`
	CreatedAt  time.Time `firestore:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

func toRatingDomain(doc *productDoc) *entity.RatingSummary {
	summary := entity.RatingSummary{
		AvgRating:       doc.AvgRating,
		RatingCount:     doc.RatingCount,
		RatingBreakdown: doc.RatingBreakdown,
	}.Normalize()

	return &summary
}

func ratingFields(summary entity.RatingSummary) map[string]any {
	summary = summary.Normalize()

	return map[string]any{
		"avgRating":       summary.AvgRating,
		"ratingCount":     summary.RatingCount,
		"ratingBreakdown": summary.RatingBreakdown,
	}
}

func toReviewDomain(doc *reviewDoc) *entity.Review {
	return &entity.Review{
		ProductID:  doc.ProductID,
		UserID:     doc.UserID,
		Rating:     doc.Rating,
		Comment:    doc.Comment,
		AuthorName: doc.AuthorName,
		Email:      doc.Email,
		OrderID:    doc.OrderID,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

func fromReviewDomain(review *entity.Review) *reviewDoc {
	return &reviewDoc{
		ProductID:  review.ProductID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		AuthorName: review.AuthorName,
		Email:      review.Email,
		OrderID:    review.OrderID,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}
