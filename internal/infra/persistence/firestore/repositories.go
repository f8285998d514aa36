package firestore

import (
	"context"
	"time"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/errors"

	"cloud.google.com/go/firestore"
)

type productRepository struct {
	client *firestore.Client
	tx     *firestore.Transaction
	cols   collections
}

func (repo *productRepository) FindRatingSummary(ctx context.Context, productID string) (*entity.RatingSummary, error) {
	snap, err := get(ctx, repo.tx, repo.cols.product(repo.client, productID))
	if err != nil {
		if isNotFound(err) {
			empty := entity.EmptyRatingSummary()

			return &empty, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read product rating")
	}

	var doc productDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode product rating")
	}

	return toRatingDomain(&doc), nil
}

// FindRatingSummaryForUpdate is a plain transactional read: Firestore tracks
// every document read in the transaction and aborts the commit if one of them
// changed.
func (repo *productRepository) FindRatingSummaryForUpdate(ctx context.Context, productID string) (*entity.RatingSummary, error) {
	return repo.FindRatingSummary(ctx, productID)
}

func (repo *productRepository) SaveRatingSummary(ctx context.Context, productID string, summary entity.RatingSummary) error {
	ref := repo.cols.product(repo.client, productID)
	fields := ratingFields(summary)
	fields["ratingUpdatedAt"] = firestore.ServerTimestamp

	var err error
	if repo.tx != nil {
		err = repo.tx.Set(ref, fields, firestore.MergeAll)
	} else {
		_, err = ref.Set(ctx, fields, firestore.MergeAll)
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save product rating")
	}

	return nil
}

type reviewRepository struct {
	client *firestore.Client
	tx     *firestore.Transaction
	cols   collections
	now    func() time.Time
}

func (repo *reviewRepository) FindByUser(ctx context.Context, productID, userID string) (*entity.Review, error) {
	snap, err := get(ctx, repo.tx, repo.cols.reviewsOf(repo.client, productID).Doc(userID))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read review")
	}

	var doc reviewDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode review")
	}

	return toReviewDomain(&doc), nil
}

// Upsert overwrites the user's review document. A transaction cannot read
// after writing, so the caller passes the previous CreatedAt on replace; a
// zero CreatedAt means a new review.
func (repo *reviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	now := repo.now().UTC()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now

	ref := repo.cols.reviewsOf(repo.client, review.ProductID).Doc(review.UserID)
	doc := fromReviewDomain(review)

	var err error
	if repo.tx != nil {
		err = repo.tx.Set(ref, doc)
	} else {
		_, err = ref.Set(ctx, doc)
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review")
	}

	return nil
}

func (repo *reviewRepository) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.Review, error) {
	query := repo.cols.reviewsOf(repo.client, productID).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var iter *firestore.DocumentIterator
	if repo.tx != nil {
		iter = repo.tx.Documents(query)
	} else {
		iter = query.Documents(ctx)
	}
	snaps, err := iter.GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(snaps))
	for _, snap := range snaps {
		var doc reviewDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode review %s", snap.Ref.ID)
		}
		reviews = append(reviews, toReviewDomain(&doc))
	}

	return reviews, nil
}

func get(ctx context.Context, tx *firestore.Transaction, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if tx != nil {
		return tx.Get(ref) //nolint:wrapcheck // callers classify NotFound
	}

	return ref.Get(ctx) //nolint:wrapcheck // callers classify NotFound
}
