package memory

import (
	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
)

// transaction buffers writes and remembers what it read.
type transaction struct {
	store *Store

	productReads  map[string]uint64
	reviewReads   map[reviewKey]uint64
	productWrites map[string]entity.RatingSummary
	reviewWrites  map[reviewKey]entity.Review
}

func newTransaction(store *Store) *transaction {
	return &transaction{
		store:         store,
		productReads:  make(map[string]uint64),
		reviewReads:   make(map[reviewKey]uint64),
		productWrites: make(map[string]entity.RatingSummary),
		reviewWrites:  make(map[reviewKey]entity.Review),
	}
}

func (tx *transaction) ProductRepo() repository.ProductRepository {
	return &productRepository{tx: tx}
}

func (tx *transaction) ReviewRepo() repository.ReviewRepository {
	return &reviewRepository{tx: tx}
}

func (tx *transaction) getProduct(id string) entity.RatingSummary {
	if pending, ok := tx.productWrites[id]; ok {
		return pending.Normalize()
	}

	summary, version, ok := tx.store.readProduct(id)
	if _, seen := tx.productReads[id]; !seen {
		tx.productReads[id] = version
	}
	if !ok {
		return entity.EmptyRatingSummary()
	}

	return summary
}

func (tx *transaction) getReview(key reviewKey) (entity.Review, bool) {
	if pending, ok := tx.reviewWrites[key]; ok {
		return pending, true
	}

	review, version, ok := tx.store.readReview(key)
	if _, seen := tx.reviewReads[key]; !seen {
		tx.reviewReads[key] = version
	}

	return review, ok
}
