// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"

	"bakery/internal/domain/repository"
	"bakery/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db          *gorm.DB
	maxAttempts int
	logger      *slog.Logger
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f *gormRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, maxAttempts int, logger *slog.Logger) repository.TransactionManager {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	return &gormTransactionManager{db: db, maxAttempts: maxAttempts, logger: logger}
}

// Execute runs fn in a transaction and runs it again when PostgreSQL aborts
// it for a serialization failure or deadlock.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var lastErr error

	for attempt := 1; attempt <= tm.maxAttempts; attempt++ {
		lastErr = tm.executeOnce(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !isRetryableTxError(lastErr) || ctx.Err() != nil {
			return lastErr
		}

		if tm.logger != nil {
			tm.logger.WarnContext(ctx, "Postgres transaction aborted, retrying",
				slog.Int("attempt", attempt),
				slog.Any("error", lastErr),
			)
		}
	}

	return errors.Wrapf(errors.Join(repository.ErrTransactionConflict, lastErr), "gave up after %d attempts", tm.maxAttempts)
}

func (tm *gormTransactionManager) executeOnce(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back if the callback panics, then let the panic continue.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
