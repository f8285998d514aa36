package mongo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"bakery/config"
	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// newTestDatabase needs MONGODB_TEST_URI pointing at a replica set, e.g.
// mongodb://localhost:27017/?replicaSet=rs0. Each test gets its own database.
func newTestDatabase(t *testing.T) *mongodriver.Database {
	t.Helper()

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx := context.Background()
	client, err := Connect(ctx, &config.MongoConfig{URI: uri})
	require.NoError(t, err)

	db := client.Database("bakery_test_" + uuid.NewString()[:8])
	require.NoError(t, EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return db
}

func addReview(ctx context.Context, tm repository.TransactionManager, productID, userID string, rating int) error {
	return tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		current, err := f.ProductRepo().FindRatingSummaryForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if err := f.ReviewRepo().Upsert(ctx, &entity.Review{ProductID: productID, UserID: userID, Rating: rating}); err != nil {
			return err
		}

		return f.ProductRepo().SaveRatingSummary(ctx, productID, current.Add(rating))
	})
}

func TestReviewID(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "p", Value: "tarta"}, {Key: "u", Value: "u1"}}, reviewID("tarta", "u1"))
	assert.NotEqual(t, reviewID("a:b", "c"), reviewID("a", "b:c"))
}

func TestDatabaseName(t *testing.T) {
	assert.Equal(t, "bakery", DatabaseName(nil))
	assert.Equal(t, "shop", DatabaseName(&config.MongoConfig{Database: "shop"}))
}

func TestConnectRequiresURI(t *testing.T) {
	_, err := Connect(context.Background(), &config.MongoConfig{})
	assert.ErrorContains(t, err, "mongo.uri")
}

func TestTransactionManager_ReplicaSet(t *testing.T) {
	db := newTestDatabase(t)
	tm := NewTransactionManager(db, 20, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	t.Run("concurrent submissions all count", func(t *testing.T) {
		const writers = 8

		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for i := range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- addReview(ctx, tm, "croissant", fmt.Sprintf("user-%d", i), 5)
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		var summary *entity.RatingSummary
		require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			var err error
			summary, err = f.ProductRepo().FindRatingSummary(ctx, "croissant")

			return err
		}))
		assert.Equal(t, writers, summary.RatingCount)
		assert.InDelta(t, 5.0, summary.AvgRating, 1e-9)
	})

	t.Run("upsert keeps createdAt", func(t *testing.T) {
		repo := &reviewRepository{coll: db.Collection(reviewsCollection)}

		first := &entity.Review{ProductID: "pan", UserID: "u1", Rating: 2}
		require.NoError(t, repo.Upsert(ctx, first))

		second := &entity.Review{ProductID: "pan", UserID: "u1", Rating: 4, Comment: "mejor"}
		require.NoError(t, repo.Upsert(ctx, second))

		assert.True(t, first.CreatedAt.Equal(second.CreatedAt))

		got, err := repo.FindByUser(ctx, "pan", "u1")
		require.NoError(t, err)
		assert.Equal(t, 4, got.Rating)

		_, err = repo.FindByUser(ctx, "pan", "nobody")
		assert.ErrorIs(t, err, repository.ErrReviewNotFound)
	})

	t.Run("separator in ids does not collide", func(t *testing.T) {
		repo := &reviewRepository{coll: db.Collection(reviewsCollection)}

		require.NoError(t, repo.Upsert(ctx, &entity.Review{ProductID: "a:b", UserID: "c", Rating: 1}))
		require.NoError(t, repo.Upsert(ctx, &entity.Review{ProductID: "a", UserID: "b:c", Rating: 5}))

		got, err := repo.FindByUser(ctx, "a:b", "c")
		require.NoError(t, err)
		assert.Equal(t, 1, got.Rating)

		got, err = repo.FindByUser(ctx, "a", "b:c")
		require.NoError(t, err)
		assert.Equal(t, 5, got.Rating)
	})

	t.Run("error rolls back", func(t *testing.T) {
		boom := fmt.Errorf("boom")
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.ProductRepo().SaveRatingSummary(ctx, "baguette", entity.EmptyRatingSummary().Add(3)); err != nil {
				return err
			}

			return boom
		})
		assert.ErrorIs(t, err, boom)

		summary, err := (&productRepository{coll: db.Collection(productsCollection)}).FindRatingSummary(ctx, "baguette")
		require.NoError(t, err)
		assert.Equal(t, 0, summary.RatingCount)
	})
}
