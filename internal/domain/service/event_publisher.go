package service

import (
	"context"
	"time"
)

// ReviewSubmittedEvent is emitted after a review and its product summary
// have been committed together.
type ReviewSubmittedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	ProductID   string    `json:"product_id"`
	UserID      string    `json:"user_id"`
	Rating      int       `json:"rating"`
	Replaced    bool      `json:"replaced"` // The user already had a review on this product
	AvgRating   float64   `json:"avg_rating"`
	RatingCount int       `json:"rating_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewSubmitted publishes a review event for downstream consumers
	PublishReviewSubmitted(ctx context.Context, event *ReviewSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
