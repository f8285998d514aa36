// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"bakery/config"
	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/constants"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/domain/service"
	"bakery/internal/errors"
	"bakery/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMaxCommentLength = 2000
	defaultPageSize         = 20
	defaultMaxPageSize      = 100
)

type ReviewServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager        repository.TransactionManager
	publisher        service.EventPublisher
	logger           *slog.Logger
	resubmitPolicy   string
	maxCommentLength int
	defaultPageSize  int
	maxPageSize      int
	now              func() time.Time
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	srv := &reviewService{
		txManager:        params.TxManager,
		publisher:        params.Publisher,
		logger:           params.Logger,
		resubmitPolicy:   constants.ResubmitPolicyReplace,
		maxCommentLength: defaultMaxCommentLength,
		defaultPageSize:  defaultPageSize,
		maxPageSize:      defaultMaxPageSize,
		now:              time.Now,
	}

	if cfg := params.Config.Reviews; cfg != nil {
		if cfg.ResubmitPolicy == constants.ResubmitPolicyAccumulate {
			srv.resubmitPolicy = constants.ResubmitPolicyAccumulate
		}
		if cfg.MaxCommentLength > 0 {
			srv.maxCommentLength = cfg.MaxCommentLength
		}
		if cfg.DefaultPageSize > 0 {
			srv.defaultPageSize = cfg.DefaultPageSize
		}
		if cfg.MaxPageSize > 0 {
			srv.maxPageSize = cfg.MaxPageSize
		}
	}

	return srv
}

// SubmitReview stores the review and folds its rating into the product
// summary in one transaction, then announces it.
func (srv *reviewService) SubmitReview(ctx context.Context, productID string, input *usecase.SubmitReviewInput) (*usecase.SubmitReviewResult, error) {
	productID = strings.TrimSpace(productID)
	if err := srv.validate(productID, input); err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var result *usecase.SubmitReviewResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		reviewRepo := repoFactory.ReviewRepo()

		// 1. Read everything first; document stores reject reads after writes.
		current, err := productRepo.FindRatingSummaryForUpdate(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to read rating summary")
		}

		previous, err := reviewRepo.FindByUser(ctx, productID, input.UserID)
		if err != nil && !errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to read previous review")
		}

		// 2. Compute the next summary.
		review := &entity.Review{
			ProductID:  productID,
			UserID:     input.UserID,
			Rating:     input.Rating,
			Comment:    input.Comment,
			AuthorName: input.AuthorName,
			Email:      input.Email,
			OrderID:    input.OrderID,
		}

		next := current.Add(input.Rating)
		if previous != nil {
			review.CreatedAt = previous.CreatedAt
			if srv.resubmitPolicy == constants.ResubmitPolicyReplace {
				next = current.Replace(previous.Rating, input.Rating)
			}
		}

		// 3. Write review and summary.
		if err := reviewRepo.Upsert(ctx, review); err != nil {
			return errors.Wrap(err, "failed to save review")
		}

		if err := productRepo.SaveRatingSummary(ctx, productID, next); err != nil {
			return errors.Wrap(err, "failed to save rating summary")
		}

		result = &usecase.SubmitReviewResult{
			Review:   review,
			Summary:  next,
			Replaced: previous != nil,
		}

		return nil
	})
	if err != nil {
		logger.ErrorContext(ctx, "Review submission failed",
			slog.String("product_id", productID),
			slog.String("user_id", input.UserID),
			slog.Any("error", err),
		)

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	logger.InfoContext(ctx, "Review submitted",
		slog.String("product_id", productID),
		slog.String("user_id", input.UserID),
		slog.Int("rating", input.Rating),
		slog.Bool("replaced", result.Replaced),
		slog.Int("rating_count", result.Summary.RatingCount),
	)

	srv.publish(ctx, logger, result)

	return result, nil
}

func (srv *reviewService) GetRatingSummary(ctx context.Context, productID string) (*entity.RatingSummary, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domainerrors.ErrProductRequired
	}

	var summary *entity.RatingSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindRatingSummary(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to read rating summary")
		}
		summary = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get rating summary")
	}

	return summary, nil
}

// ListReviews clamps limit to 1..maxPageSize, using the default page size
// when limit is not positive.
func (srv *reviewService) ListReviews(ctx context.Context, productID string, limit int) ([]*entity.Review, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domainerrors.ErrProductRequired
	}

	if limit <= 0 {
		limit = srv.defaultPageSize
	}
	limit = min(limit, srv.maxPageSize)

	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().ListByProduct(ctx, productID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ReconcileSummary rebuilds the summary from the stored reviews. Under the
// accumulate policy the summary also counts overwritten submissions, so the
// stored reviews cannot reproduce it and the product is left alone.
func (srv *reviewService) ReconcileSummary(ctx context.Context, productID string) (*usecase.ReconcileResult, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domainerrors.ErrProductRequired
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if srv.resubmitPolicy == constants.ResubmitPolicyAccumulate {
		summary, err := srv.GetRatingSummary(ctx, productID)
		if err != nil {
			return nil, err
		}

		return &usecase.ReconcileResult{Summary: *summary, Skipped: true}, nil
	}

	var result *usecase.ReconcileResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		reviewRepo := repoFactory.ReviewRepo()

		// Locking seeds a summary row in some stores, so a product nobody has
		// reviewed is answered from a plain read and left untouched.
		current, err := productRepo.FindRatingSummary(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to read rating summary")
		}
		if !current.HasReviews() {
			first, err := reviewRepo.ListByProduct(ctx, productID, 1)
			if err != nil {
				return errors.Wrap(err, "failed to list reviews")
			}
			if len(first) == 0 {
				result = &usecase.ReconcileResult{Summary: entity.EmptyRatingSummary()}

				return nil
			}
		}

		stored, err := productRepo.FindRatingSummaryForUpdate(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to read rating summary")
		}

		reviews, err := reviewRepo.ListByProduct(ctx, productID, 0)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}

		ratings := make([]int, 0, len(reviews))
		for _, review := range reviews {
			ratings = append(ratings, review.Rating)
		}
		rebuilt := entity.SummarizeRatings(ratings)

		result = &usecase.ReconcileResult{Summary: rebuilt}
		if rebuilt.Matches(*stored) {
			result.Summary = stored.Normalize()

			return nil
		}

		result.Drifted = true

		return errors.Wrap(productRepo.SaveRatingSummary(ctx, productID, rebuilt), "failed to save rating summary")
	})
	if err != nil {
		logger.ErrorContext(ctx, "Rating summary reconciliation failed",
			slog.String("product_id", productID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	if result.Drifted {
		logger.WarnContext(ctx, "Rating summary drift repaired",
			slog.String("product_id", productID),
			slog.Int("rating_count", result.Summary.RatingCount),
			slog.Float64("avg_rating", result.Summary.AvgRating),
		)
	}

	return result, nil
}

func (srv *reviewService) validate(productID string, input *usecase.SubmitReviewInput) error {
	if productID == "" {
		return domainerrors.ErrProductRequired
	}
	if input == nil || strings.TrimSpace(input.UserID) == "" {
		return domainerrors.ErrUnauthenticated
	}
	if !entity.ValidRating(input.Rating) {
		return domainerrors.ErrInvalidRating.WithDetails(fmt.Sprintf("valor recibido: %d", input.Rating))
	}
	if n := utf8.RuneCountInString(input.Comment); n > srv.maxCommentLength {
		return domainerrors.ErrReviewTooLong.WithDetails(fmt.Sprintf("%d caracteres, máximo %d", n, srv.maxCommentLength))
	}

	return nil
}

// publish runs after commit. A lost event does not undo the review.
func (srv *reviewService) publish(ctx context.Context, logger *slog.Logger, result *usecase.SubmitReviewResult) {
	if srv.publisher == nil {
		return
	}

	event := &service.ReviewSubmittedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		ProductID:   result.Review.ProductID,
		UserID:      result.Review.UserID,
		Rating:      result.Review.Rating,
		Replaced:    result.Replaced,
		AvgRating:   result.Summary.AvgRating,
		RatingCount: result.Summary.RatingCount,
		OccurredAt:  srv.now().UTC(),
	}

	if err := srv.publisher.PublishReviewSubmitted(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish review event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
