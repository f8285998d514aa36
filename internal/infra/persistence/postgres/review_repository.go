package postgres

import (
	"context"
	"time"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/errors"
	"bakery/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) FindByUser(ctx context.Context, productID, userID string) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by user")
	}

	return toReviewDomain(&reviewM), nil
}

// Upsert inserts the review or, when the user already reviewed the product,
// replaces its content. created_at of the existing row is preserved and
// read back through RETURNING.
func (repo *reviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)
	reviewM.UpdatedAt = time.Time{} // let GORM stamp it

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "author_name", "email", "order_id", "updated_at"}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "created_at"}, {Name: "updated_at"}}},
		).
		Create(reviewM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating.WrapMessage("rejected by rating_range constraint")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "concurrent review insert")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review")
	}

	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

func (repo *reviewRepository) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	query := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Order("user_id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by product")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ProductID:  data.ProductID,
		UserID:     data.UserID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		AuthorName: data.AuthorName,
		Email:      data.Email,
		OrderID:    data.OrderID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ProductID:  data.ProductID,
		UserID:     data.UserID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		AuthorName: data.AuthorName,
		Email:      data.Email,
		OrderID:    data.OrderID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
