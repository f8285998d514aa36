package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	mockSvc "bakery/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, verifier *mockSvc.MockTokenVerifier, header string) (*httptest.ResponseRecorder, *entity.Identity) {
	t.Helper()

	m := NewAuthMiddleware(verifier, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/products/p/reviews", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Identity
	err := m.Authenticate(func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		seen = identity

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec, seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	verifier.EXPECT().VerifyToken(mock.Anything, "abc").Return(&entity.Identity{UserID: "u1"}, nil)

	rec, identity := runAuthenticate(t, verifier, "Bearer abc")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "u1", identity.UserID)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{"missing header", "", "UNAUTHENTICATED"},
		{"basic auth", "Basic dXNlcjpwYXNz", "INVALID_TOKEN"},
		{"empty bearer", "Bearer   ", "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, identity := runAuthenticate(t, mockSvc.NewMockTokenVerifier(t), tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.Nil(t, identity)
		})
	}
}

func TestAuthMiddleware_VerifierError(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	verifier.EXPECT().VerifyToken(mock.Anything, "forged").Return(nil, domainerrors.ErrInvalidToken)

	rec, identity := runAuthenticate(t, verifier, "Bearer forged")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	assert.Nil(t, identity)
}

func TestGetIdentity_Absent(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetIdentity(c)
	assert.False(t, ok)
}
