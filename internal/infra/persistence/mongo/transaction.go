package mongo

import (
	"context"
	"log/slog"

	"bakery/internal/domain/repository"
	"bakery/internal/errors"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

var errAttemptsExhausted = errors.New("mongo: transaction attempts exhausted")

type transactionManager struct {
	db          *mongodriver.Database
	maxAttempts int
	logger      *slog.Logger
}

type repositoryFactory struct {
	db      *mongodriver.Database
	session mongodriver.Session
}

func (f *repositoryFactory) ProductRepo() repository.ProductRepository {
	return &productRepository{coll: f.db.Collection(productsCollection), session: f.session}
}

func (f *repositoryFactory) ReviewRepo() repository.ReviewRepository {
	return &reviewRepository{coll: f.db.Collection(reviewsCollection), session: f.session}
}

func NewTransactionManager(db *mongodriver.Database, maxAttempts int, logger *slog.Logger) repository.TransactionManager {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	return &transactionManager{db: db, maxAttempts: maxAttempts, logger: logger}
}

// Execute runs fn inside session.WithTransaction. The driver re-runs the
// callback on TransientTransactionError (write conflicts included) with no
// attempt limit of its own, so the callback stops it after maxAttempts.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	attempts := 0
	callback := func(sessCtx mongodriver.SessionContext) (any, error) {
		attempts++
		if attempts > tm.maxAttempts {
			return nil, errAttemptsExhausted
		}
		if attempts > 1 && tm.logger != nil {
			tm.logger.WarnContext(sessCtx, "MongoDB transaction aborted, retrying", slog.Int("attempt", attempts))
		}

		return nil, fn(&repositoryFactory{db: tm.db, session: session})
	}

	if _, err := session.WithTransaction(ctx, callback); err != nil {
		if errors.Is(err, errAttemptsExhausted) {
			return errors.Wrapf(repository.ErrTransactionConflict, "gave up after %d attempts", tm.maxAttempts)
		}

		return err
	}

	return nil
}

// bind attaches the session so the operation joins the running transaction.
func bind(ctx context.Context, session mongodriver.Session) context.Context {
	if session == nil {
		return ctx
	}

	return mongodriver.NewSessionContext(ctx, session)
}
