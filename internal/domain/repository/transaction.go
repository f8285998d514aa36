package repository

import (
	"context"

	"bakery/internal/errors"
)

// ErrTransactionConflict is returned by a TransactionManager when the store
// kept detecting concurrent writers and its retry budget ran out.
var ErrTransactionConflict = errors.New("transaction conflict: retries exhausted")

// TransactionManager defines the interface for running a unit of work atomically.
// This allows the use case layer to handle transactions without depending on a
// specific store (GORM, Firestore, MongoDB or the in-memory store).
type TransactionManager interface {
	// Execute runs fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	// On a write conflict the store may call fn again with fresh reads, so fn
	// must not keep state between calls.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// ReviewRepo returns a ReviewRepository bound to the current transaction.
	ReviewRepo() ReviewRepository
}
