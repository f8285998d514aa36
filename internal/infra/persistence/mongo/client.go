// Package mongo stores rating summaries and reviews in MongoDB. Multi-document
// transactions need a replica set (a single-node one is enough).
package mongo

import (
	"context"
	"time"

	"bakery/config"
	"bakery/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	productsCollection    = "product_ratings"
	reviewsCollection     = "product_reviews"
	defaultDatabase       = "bakery"
	defaultConnectTimeout = 10 * time.Second
)

// Connect dials the cluster and verifies it answers a primary ping.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*mongodriver.Client, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required for the mongo driver")
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.URI).SetServerSelectionTimeout(timeout)
	client, err := mongodriver.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	return client, nil
}

// DatabaseName falls back to "bakery" when unset.
func DatabaseName(cfg *config.MongoConfig) string {
	if cfg == nil || cfg.Database == "" {
		return defaultDatabase
	}

	return cfg.Database
}

// EnsureIndexes creates the listing index on reviews. Uniqueness per user
// comes from the composite _id.
func EnsureIndexes(ctx context.Context, db *mongodriver.Database) error {
	_, err := db.Collection(reviewsCollection).Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("idx_product_created"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create reviews index")
	}

	return nil
}
