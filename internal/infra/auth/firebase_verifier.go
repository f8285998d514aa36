package auth

import (
	"context"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"
	"bakery/internal/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// idTokenVerifier is the slice of the Firebase Auth client we use.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseVerifier accepts Firebase ID tokens, the ones the storefront's
// sign-in flow hands to the browser.
type firebaseVerifier struct {
	client idTokenVerifier
}

func NewFirebaseVerifier(client idTokenVerifier) service.TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	verified, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	identity := &entity.Identity{UserID: verified.UID}
	if email, ok := verified.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := verified.Claims["name"].(string); ok {
		identity.Name = name
	}

	return identity, nil
}
