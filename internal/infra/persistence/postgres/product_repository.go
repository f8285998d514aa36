package postgres

import (
	"context"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/errors"
	"bakery/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindRatingSummary(ctx context.Context, productID string) (*entity.RatingSummary, error) {
	var ratingM model.ProductRatingModel

	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			empty := entity.EmptyRatingSummary()

			return &empty, nil
		}

		return nil, errors.Wrap(err, "failed to find rating summary")
	}

	return toRatingDomain(&ratingM), nil
}

// FindRatingSummaryForUpdate makes sure the row exists, then reads it with
// FOR UPDATE so concurrent submitters on the same product queue up behind
// the lock instead of overwriting each other. Callers only reach it for a
// product being written, so the seed row is never a stray.
func (repo *productRepository) FindRatingSummaryForUpdate(ctx context.Context, productID string) (*entity.RatingSummary, error) {
	seed := fromRatingDomain(productID, entity.EmptyRatingSummary())

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(seed).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to seed rating summary")
	}

	var ratingM model.ProductRatingModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ?", productID).
		First(&ratingM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock rating summary")
	}

	return toRatingDomain(&ratingM), nil
}

func (repo *productRepository) SaveRatingSummary(ctx context.Context, productID string, summary entity.RatingSummary) error {
	ratingM := fromRatingDomain(productID, summary)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"avg_rating", "rating_count", "rating_breakdown", "updated_at"}),
		}).
		Create(ratingM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save rating summary")
	}

	return nil
}

// --- Mapper Functions ---

func toRatingDomain(data *model.ProductRatingModel) *entity.RatingSummary {
	summary := entity.RatingSummary{
		AvgRating:       data.AvgRating,
		RatingCount:     data.RatingCount,
		RatingBreakdown: data.RatingBreakdown.Data(),
	}.Normalize()

	return &summary
}

func fromRatingDomain(productID string, summary entity.RatingSummary) *model.ProductRatingModel {
	normalized := summary.Normalize()

	return &model.ProductRatingModel{
		ProductID:       productID,
		AvgRating:       normalized.AvgRating,
		RatingCount:     normalized.RatingCount,
		RatingBreakdown: datatypes.NewJSONType(normalized.RatingBreakdown),
	}
}
