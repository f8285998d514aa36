package usecase

import (
	"context"

	"bakery/internal/domain/entity"
)

// StoreStatusUsecase holds the storefront's current availability.
type StoreStatusUsecase interface {
	// CurrentStatus returns the last evaluated status.
	CurrentStatus(ctx context.Context) entity.StoreStatus

	// Refresh re-evaluates the schedule now and returns the new status.
	Refresh(ctx context.Context) entity.StoreStatus
}
