package middleware

import (
	"log/slog"
	"strings"

	"bakery/internal/delivery/api/response"
	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// AuthMiddleware checks bearer tokens with the configured identity provider.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects the request unless it carries a valid bearer token,
// then stores the caller's identity for the handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return response.HandleAppError(c, domainerrors.ErrInvalidToken.WithDetails("expected a Bearer token"))
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.VerifyToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rejected bearer token", slog.Any("error", err))

			return response.HandleAppError(c, err)
		}

		c.Set(identityKey, identity)

		return next(c)
	}
}

// GetIdentity returns the caller stored by Authenticate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)

	return identity, ok && identity != nil && identity.UserID != ""
}
