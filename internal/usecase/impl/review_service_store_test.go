package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"bakery/config"
	"bakery/internal/domain/entity"
	"bakery/internal/infra/persistence/memory"
	mockSvc "bakery/internal/mocks/service"
	"bakery/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// These tests run the service against the in-memory transactional store.

func newStoreBackedService(t *testing.T, policy string) usecase.ReviewUsecase {
	t.Helper()

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishReviewSubmitted(mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewReviewService(ReviewServiceParams{
		TxManager: memory.New(memory.WithMaxAttempts(64), memory.WithLogger(logger)),
		Publisher: publisher,
		Config:    &config.Config{Reviews: &config.ReviewsConfig{ResubmitPolicy: policy}},
		Logger:    logger,
	})
}

func TestReviewService_Store_IncrementalMean(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		wantAvg float64
	}{
		{"single", []int{3}, 3},
		{"five five four", []int{5, 5, 4}, 14.0 / 3.0},
		{"all stars", []int{1, 2, 3, 4, 5}, 3},
		{"mostly low", []int{1, 1, 1, 2, 5, 1}, 11.0 / 6.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newStoreBackedService(t, "replace")
			ctx := context.Background()

			for i, rating := range tt.ratings {
				_, err := srv.SubmitReview(ctx, "croissant", &usecase.SubmitReviewInput{
					UserID: fmt.Sprintf("user-%d", i),
					Rating: rating,
				})
				require.NoError(t, err)
			}

			summary, err := srv.GetRatingSummary(ctx, "croissant")
			require.NoError(t, err)
			assert.Equal(t, len(tt.ratings), summary.RatingCount)
			assert.InDelta(t, tt.wantAvg, summary.AvgRating, 1e-9)
			assert.Equal(t, summary.RatingCount, summary.BreakdownTotal())
		})
	}
}

func TestReviewService_Store_FiveFiveFourRoundsTo4Point7(t *testing.T) {
	srv := newStoreBackedService(t, "replace")
	ctx := context.Background()

	for i, rating := range []int{5, 5, 4} {
		_, err := srv.SubmitReview(ctx, "tarta", &usecase.SubmitReviewInput{UserID: fmt.Sprintf("u%d", i), Rating: rating})
		require.NoError(t, err)
	}

	summary, err := srv.GetRatingSummary(ctx, "tarta")
	require.NoError(t, err)
	assert.InDelta(t, 4.7, summary.RoundedAvg(), 1e-9)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 1, "5": 2}, summary.RatingBreakdown)
}

func TestReviewService_Store_UnknownProductIsEmpty(t *testing.T) {
	srv := newStoreBackedService(t, "replace")

	summary, err := srv.GetRatingSummary(context.Background(), "nunca-visto")
	require.NoError(t, err)
	assert.Equal(t, entity.EmptyRatingSummary(), *summary)
}

func TestReviewService_Store_ConcurrentSubmissionsOnEmptyProduct(t *testing.T) {
	srv := newStoreBackedService(t, "replace")
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, user := range []string{"ana", "luis"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := srv.SubmitReview(ctx, "empanada", &usecase.SubmitReviewInput{UserID: user, Rating: 4})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	summary, err := srv.GetRatingSummary(ctx, "empanada")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.RatingCount)
	assert.Equal(t, 2, summary.RatingBreakdown["4"])
}

func TestReviewService_Store_ManyConcurrentUsers(t *testing.T) {
	srv := newStoreBackedService(t, "replace")
	ctx := context.Background()
	const users = 40

	var wg sync.WaitGroup
	for i := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := srv.SubmitReview(ctx, "roscon", &usecase.SubmitReviewInput{
				UserID: fmt.Sprintf("user-%d", i),
				Rating: i%5 + 1,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	summary, err := srv.GetRatingSummary(ctx, "roscon")
	require.NoError(t, err)
	assert.Equal(t, users, summary.RatingCount)
	assert.InDelta(t, 3.0, summary.AvgRating, 1e-9)
	for star := 1; star <= 5; star++ {
		assert.Equal(t, users/5, summary.RatingBreakdown[entity.StarKey(star)])
	}
}

func TestReviewService_Store_ResubmissionPolicies(t *testing.T) {
	tests := []struct {
		policy    string
		wantCount int
		wantAvg   float64
	}{
		{"replace", 1, 5},
		{"accumulate", 2, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			srv := newStoreBackedService(t, tt.policy)
			ctx := context.Background()

			first, err := srv.SubmitReview(ctx, "pan", &usecase.SubmitReviewInput{UserID: "u1", Rating: 2, Comment: "duro"})
			require.NoError(t, err)
			second, err := srv.SubmitReview(ctx, "pan", &usecase.SubmitReviewInput{UserID: "u1", Rating: 5, Comment: "recién hecho"})
			require.NoError(t, err)

			assert.True(t, second.Replaced)
			assert.True(t, first.Review.CreatedAt.Equal(second.Review.CreatedAt))

			summary, err := srv.GetRatingSummary(ctx, "pan")
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, summary.RatingCount)
			assert.InDelta(t, tt.wantAvg, summary.AvgRating, 1e-9)

			// Either way the user has exactly one stored review.
			reviews, err := srv.ListReviews(ctx, "pan", 0)
			require.NoError(t, err)
			require.Len(t, reviews, 1)
			assert.Equal(t, "recién hecho", reviews[0].Comment)
		})
	}
}

func TestReviewService_Store_ReconcileMatchesIncrementalSummary(t *testing.T) {
	srv := newStoreBackedService(t, "replace")
	ctx := context.Background()

	for i, rating := range []int{5, 1, 4, 4} {
		_, err := srv.SubmitReview(ctx, "ensaimada", &usecase.SubmitReviewInput{
			UserID: fmt.Sprintf("user-%d", i),
			Rating: rating,
		})
		require.NoError(t, err)
	}
	_, err := srv.SubmitReview(ctx, "ensaimada", &usecase.SubmitReviewInput{UserID: "user-1", Rating: 3})
	require.NoError(t, err)

	result, err := srv.ReconcileSummary(ctx, "ensaimada")
	require.NoError(t, err)
	assert.False(t, result.Drifted)
	assert.Equal(t, 4, result.Summary.RatingCount)
	assert.InDelta(t, 4.0, result.Summary.AvgRating, 1e-9)
}
