// Package auth verifies the bearer tokens that gate review submission.
package auth

import (
	"context"
	"time"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"
	"bakery/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the HS256 token payload. The subject is the user ID.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// jwtVerifier checks HS256 tokens signed with a shared secret, for local
// development and service-to-service calls.
type jwtVerifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTVerifier requires a non-empty secret. An empty issuer accepts any.
func NewJWTVerifier(secret, issuer string) (service.TokenVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

func (v *jwtVerifier) VerifyToken(_ context.Context, tokenString string) (*entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}
	if claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("token has no subject")
	}

	return &entity.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}

// SignToken issues an HS256 token for identity. It backs the dev token
// command and tests; production tokens come from the identity provider.
func SignToken(secret, issuer string, identity entity.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
