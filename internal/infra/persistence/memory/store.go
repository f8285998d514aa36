// Package memory is an in-process transactional store with optimistic
// concurrency control. Each transaction records the version of every record
// it reads; commit fails if any of them changed meanwhile, and Execute runs
// the work again from scratch.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
	"bakery/internal/errors"
)

const defaultMaxAttempts = 5

var errConflict = errors.New("memory: read set changed before commit")

type reviewKey struct {
	productID string
	userID    string
}

type versioned[T any] struct {
	value   T
	version uint64
}

// Store implements repository.TransactionManager.
type Store struct {
	mu       sync.RWMutex
	seq      uint64
	products map[string]versioned[entity.RatingSummary]
	reviews  map[reviewKey]versioned[entity.Review]

	maxAttempts int
	now         func() time.Time
	logger      *slog.Logger
}

type Option func(*Store)

// WithMaxAttempts bounds how many times a conflicting transaction is re-run.
func WithMaxAttempts(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithClock overrides the timestamp source for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		products:    make(map[string]versioned[entity.RatingSummary]),
		reviews:     make(map[reviewKey]versioned[entity.Review]),
		maxAttempts: defaultMaxAttempts,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewTransactionManager returns a fresh Store behind the repository interface.
func NewTransactionManager(maxAttempts int, logger *slog.Logger) repository.TransactionManager {
	return New(WithMaxAttempts(maxAttempts), WithLogger(logger))
}

// Execute runs fn until it commits without conflict or attempts run out.
func (s *Store) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		tx := newTransaction(s)
		if err := fn(tx); err != nil {
			return err
		}

		err := s.commit(tx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errConflict) {
			return err
		}

		if s.logger != nil {
			s.logger.DebugContext(ctx, "Memory transaction conflict, retrying", slog.Int("attempt", attempt))
		}
	}

	return errors.Wrapf(repository.ErrTransactionConflict, "gave up after %d attempts", s.maxAttempts)
}

func (s *Store) commit(tx *transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, seen := range tx.productReads {
		if s.products[id].version != seen {
			return errConflict
		}
	}
	for key, seen := range tx.reviewReads {
		if s.reviews[key].version != seen {
			return errConflict
		}
	}

	for id, summary := range tx.productWrites {
		s.seq++
		s.products[id] = versioned[entity.RatingSummary]{value: summary, version: s.seq}
	}
	for key, review := range tx.reviewWrites {
		s.seq++
		s.reviews[key] = versioned[entity.Review]{value: review, version: s.seq}
	}

	return nil
}

func (s *Store) readProduct(id string) (entity.RatingSummary, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.products[id]
	if !ok {
		return entity.RatingSummary{}, 0, false
	}

	return rec.value.Normalize(), rec.version, true
}

func (s *Store) readReview(key reviewKey) (entity.Review, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.reviews[key]

	return rec.value, rec.version, ok
}

func (s *Store) productReviews(productID string) []entity.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Review
	for key, rec := range s.reviews {
		if key.productID == productID {
			out = append(out, rec.value)
		}
	}

	return out
}
