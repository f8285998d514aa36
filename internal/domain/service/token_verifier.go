package service

import (
	"context"

	"bakery/internal/domain/entity"
)

// TokenVerifier checks a bearer token issued by the identity provider and
// returns who it belongs to. Issuing tokens is the provider's job.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
}
