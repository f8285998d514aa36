// Package firestore keeps rating summaries on product documents and reviews
// in a per-product subcollection keyed by user ID:
//
//	products/{productID}                  avgRating, ratingCount, ratingBreakdown
//	products/{productID}/reviews/{userID} review fields
package firestore

import (
	"context"
	"log/slog"
	"time"

	"bakery/config"
	"bakery/internal/domain/repository"
	"bakery/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultProductsCollection = "products"
	defaultReviewsCollection  = "reviews"
	defaultMaxAttempts        = 5
)

type collections struct {
	products string
	reviews  string
}

func collectionsFrom(cfg *config.FirestoreConfig) collections {
	c := collections{products: defaultProductsCollection, reviews: defaultReviewsCollection}
	if cfg == nil {
		return c
	}
	if cfg.ProductsCollection != "" {
		c.products = cfg.ProductsCollection
	}
	if cfg.ReviewsCollection != "" {
		c.reviews = cfg.ReviewsCollection
	}

	return c
}

func (c collections) product(client *firestore.Client, productID string) *firestore.DocumentRef {
	return client.Collection(c.products).Doc(productID)
}

func (c collections) reviewsOf(client *firestore.Client, productID string) *firestore.CollectionRef {
	return c.product(client, productID).Collection(c.reviews)
}

// transactionManager runs each unit of work through RunTransaction, which
// re-runs the callback when Firestore aborts it for contention.
type transactionManager struct {
	client      *firestore.Client
	cols        collections
	maxAttempts int
	now         func() time.Time
	logger      *slog.Logger
}

// repositoryFactory binds repositories to one Firestore transaction. All
// reads must be issued before the first write.
type repositoryFactory struct {
	client *firestore.Client
	tx     *firestore.Transaction
	cols   collections
	now    func() time.Time
}

func (f *repositoryFactory) ProductRepo() repository.ProductRepository {
	return &productRepository{client: f.client, tx: f.tx, cols: f.cols}
}

func (f *repositoryFactory) ReviewRepo() repository.ReviewRepository {
	return &reviewRepository{client: f.client, tx: f.tx, cols: f.cols, now: f.now}
}

func NewTransactionManager(client *firestore.Client, cfg *config.FirestoreConfig, maxAttempts int, logger *slog.Logger) repository.TransactionManager {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	return &transactionManager{
		client:      client,
		cols:        collectionsFrom(cfg),
		maxAttempts: maxAttempts,
		now:         time.Now,
		logger:      logger,
	}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	attempts := 0
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		attempts++
		if attempts > 1 && tm.logger != nil {
			tm.logger.WarnContext(ctx, "Firestore transaction aborted, retrying", slog.Int("attempt", attempts))
		}

		return fn(&repositoryFactory{client: tm.client, tx: tx, cols: tm.cols, now: tm.now})
	}, firestore.MaxAttempts(tm.maxAttempts))
	if err == nil {
		return nil
	}

	if status.Code(err) == codes.Aborted {
		return errors.Wrapf(errors.Join(repository.ErrTransactionConflict, err), "gave up after %d attempts", attempts)
	}

	return err
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
