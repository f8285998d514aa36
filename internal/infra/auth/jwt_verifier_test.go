package auth

import (
	"context"
	"testing"
	"time"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func TestJWTVerifier_RoundTrip(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "bakery")
	require.NoError(t, err)

	want := entity.Identity{UserID: "user-42", Email: "ana@example.com", Name: "Ana"}
	token, err := SignToken(testSecret, "bakery", want, time.Hour)
	require.NoError(t, err)

	got, err := verifier.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	identity := entity.Identity{UserID: "user-42"}

	expired, err := SignToken(testSecret, "bakery", identity, -time.Minute)
	require.NoError(t, err)
	wrongSecret, err := SignToken("another_secret_entirely", "bakery", identity, time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := SignToken(testSecret, "someone-else", identity, time.Hour)
	require.NoError(t, err)
	noSubject, err := SignToken(testSecret, "bakery", entity.Identity{}, time.Hour)
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u"}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "u",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"wrong secret", wrongSecret},
		{"wrong issuer", wrongIssuer},
		{"missing subject", noSubject},
		{"missing expiry", noExpiry},
		{"unexpected algorithm", wrongAlg},
	}

	verifier, err := NewJWTVerifier(testSecret, "bakery")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.VerifyToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestJWTVerifier_AnyIssuerWhenUnset(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "")
	require.NoError(t, err)

	token, err := SignToken(testSecret, "whoever", entity.Identity{UserID: "u1"}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(context.Background(), token)
	assert.NoError(t, err)
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier("", "")
	assert.Error(t, err)
}
