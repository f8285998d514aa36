package mongo

import (
	"context"
	"time"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productDocument struct {
	ProductID       string         `bson:"_id"`
	AvgRating       float64        `bson:"avgRating"`
	RatingCount     int            `bson:"ratingCount"`
	RatingBreakdown map[string]int `bson:"ratingBreakdown"`
	UpdatedAt       time.Time      `bson:"updatedAt"`
}

type reviewKey struct {
	ProductID string `bson:"p"`
	UserID    string `bson:"u"`
}

type reviewDocument struct {
	ID         reviewKey `bson:"_id"`
	ProductID  string    `bson:"productId"`
	UserID     string    `bson:"userId"`
	Rating     int       `bson:"rating"`
	Comment    string    `bson:"comment"`
	AuthorName string    `bson:"authorName"`
	Email      string    `bson:"email,omitempty"`
	OrderID    string    `bson:"orderId,omitempty"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

// reviewID is the compound _id of a review. Field order is fixed because
// Mongo compares embedded documents field by field.
func reviewID(productID, userID string) bson.D {
	return bson.D{
		{Key: "p", Value: productID},
		{Key: "u", Value: userID},
	}
}

type productRepository struct {
	coll    *mongodriver.Collection
	session mongodriver.Session
}

func (repo *productRepository) FindRatingSummary(ctx context.Context, productID string) (*entity.RatingSummary, error) {
	var doc productDocument
	err := repo.coll.FindOne(bind(ctx, repo.session), bson.M{"_id": productID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			empty := entity.EmptyRatingSummary()

			return &empty, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read product rating")
	}

	summary := entity.RatingSummary{
		AvgRating:       doc.AvgRating,
		RatingCount:     doc.RatingCount,
		RatingBreakdown: doc.RatingBreakdown,
	}.Normalize()

	return &summary, nil
}

// FindRatingSummaryForUpdate reads from the transaction snapshot. A
// concurrent writer makes the later SaveRatingSummary fail with a write
// conflict, which aborts and re-runs the transaction.
func (repo *productRepository) FindRatingSummaryForUpdate(ctx context.Context, productID string) (*entity.RatingSummary, error) {
	return repo.FindRatingSummary(ctx, productID)
}

func (repo *productRepository) SaveRatingSummary(ctx context.Context, productID string, summary entity.RatingSummary) error {
	summary = summary.Normalize()
	update := bson.M{"$set": bson.M{
		"avgRating":       summary.AvgRating,
		"ratingCount":     summary.RatingCount,
		"ratingBreakdown": summary.RatingBreakdown,
		"updatedAt":       time.Now().UTC(),
	}}

	_, err := repo.coll.UpdateOne(bind(ctx, repo.session), bson.M{"_id": productID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save product rating")
	}

	return nil
}

type reviewRepository struct {
	coll    *mongodriver.Collection
	session mongodriver.Session
}

func (repo *reviewRepository) FindByUser(ctx context.Context, productID, userID string) (*entity.Review, error) {
	var doc reviewDocument
	err := repo.coll.FindOne(bind(ctx, repo.session), bson.M{"_id": reviewID(productID, userID)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read review")
	}

	return toReviewDomain(&doc), nil
}

// Upsert sets createdAt only on insert and reads the stored document back.
func (repo *reviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	now := time.Now().UTC()
	createdAt := review.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	update := bson.M{
		"$set": bson.M{
			"productId":  review.ProductID,
			"userId":     review.UserID,
			"rating":     review.Rating,
			"comment":    review.Comment,
			"authorName": review.AuthorName,
			"email":      review.Email,
			"orderId":    review.OrderID,
			"updatedAt":  now,
		},
		"$setOnInsert": bson.M{"createdAt": createdAt},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc reviewDocument
	err := repo.coll.FindOneAndUpdate(bind(ctx, repo.session), bson.M{"_id": reviewID(review.ProductID, review.UserID)}, update, opts).Decode(&doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review")
	}

	review.CreatedAt = doc.CreatedAt
	review.UpdatedAt = doc.UpdatedAt

	return nil
}

func (repo *reviewRepository) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.Review, error) {
	ctx = bind(ctx, repo.session)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "userId", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := repo.coll.Find(ctx, bson.M{"productId": productID}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}
	defer cursor.Close(ctx)

	var docs []reviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode reviews")
	}

	reviews := make([]*entity.Review, 0, len(docs))
	for i := range docs {
		reviews = append(reviews, toReviewDomain(&docs[i]))
	}

	return reviews, nil
}

func toReviewDomain(doc *reviewDocument) *entity.Review {
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
