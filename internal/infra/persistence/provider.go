// Package persistence picks the review store backend from configuration.
package persistence

import (
	"context"
	"log/slog"

	"bakery/config"
	"bakery/internal/domain/constants"
	"bakery/internal/domain/lifecycle"
	"bakery/internal/domain/repository"
	"bakery/internal/errors"
	"bakery/internal/infra/persistence/firestore"
	"bakery/internal/infra/persistence/memory"
	"bakery/internal/infra/persistence/mongo"
	"bakery/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// NewTransactionManager opens the configured store and registers its
// shutdown with the lifecycle.
func NewTransactionManager(params Params) (repository.TransactionManager, error) {
	cfg := params.Config.Persistence
	if cfg == nil {
		cfg = &config.PersistenceConfig{Driver: constants.PersistenceDriverMemory}
	}
	logger := params.Logger.With(slog.String("store", cfg.Driver))

	switch cfg.Driver {
	case constants.PersistenceDriverMemory, "":
		logger.Warn("Using in-memory review store; data is lost on restart")

		return memory.NewTransactionManager(cfg.MaxAttempts, logger), nil

	case constants.PersistenceDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewTransactionManager(db, cfg.MaxAttempts, logger), nil

	case constants.PersistenceDriverFirestore:
		if params.FirebaseApp == nil {
			return nil, errors.New("firestore driver requires a Firebase app")
		}
		client, err := params.FirebaseApp.Firestore(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firestore client")
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return firestore.NewTransactionManager(client, params.Config.Firestore, cfg.MaxAttempts, logger), nil

	case constants.PersistenceDriverMongo:
		client, err := mongo.Connect(params.Ctx, params.Config.Mongo)
		if err != nil {
			return nil, err
		}
		db := client.Database(mongo.DatabaseName(params.Config.Mongo))
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return mongo.EnsureIndexes(ctx, db)
			},
			OnStop: func(stopCtx context.Context) error {
				return client.Disconnect(stopCtx)
			},
		})

		return mongo.NewTransactionManager(db, cfg.MaxAttempts, logger), nil

	default:
		return nil, errors.Errorf("unknown persistence driver: %s", cfg.Driver)
	}
}

// Module provides the repository.TransactionManager
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTransactionManager),
)
