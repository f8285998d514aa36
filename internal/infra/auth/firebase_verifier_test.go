package auth

import (
	"context"
	"errors"
	"testing"

	domainerrors "bakery/internal/domain/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIDTokenVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (s stubIDTokenVerifier) VerifyIDToken(context.Context, string) (*firebaseauth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier_VerifyToken(t *testing.T) {
	verifier := NewFirebaseVerifier(stubIDTokenVerifier{token: &firebaseauth.Token{
		UID:    "firebase-uid",
		Claims: map[string]any{"email": "luis@example.com", "name": "Luis"},
	}})

	identity, err := verifier.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid", identity.UserID)
	assert.Equal(t, "luis@example.com", identity.Email)
	assert.Equal(t, "Luis", identity.Name)
}

func TestFirebaseVerifier_MissingClaims(t *testing.T) {
	verifier := NewFirebaseVerifier(stubIDTokenVerifier{token: &firebaseauth.Token{UID: "anon"}})

	identity, err := verifier.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "anon", identity.UserID)
	assert.Empty(t, identity.Email)
}

func TestFirebaseVerifier_InvalidToken(t *testing.T) {
	verifier := NewFirebaseVerifier(stubIDTokenVerifier{err: errors.New("ID token has expired")})

	_, err := verifier.VerifyToken(context.Background(), "id-token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
