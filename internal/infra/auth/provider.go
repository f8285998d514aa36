package auth

import (
	"context"
	"log/slog"

	"bakery/config"
	"bakery/internal/domain/constants"
	"bakery/internal/domain/service"
	"bakery/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

type VerifierParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// NewTokenVerifier picks the verifier named by auth.provider.
func NewTokenVerifier(params VerifierParams) (service.TokenVerifier, error) {
	provider := constants.AuthProviderJWT
	issuer := ""
	if params.Config.Auth != nil {
		if params.Config.Auth.Provider != "" {
			provider = params.Config.Auth.Provider
		}
		issuer = params.Config.Auth.Issuer
	}

	switch provider {
	case constants.AuthProviderJWT:
		params.Logger.Info("Verifying bearer tokens with shared HS256 secret")

		return NewJWTVerifier(params.Config.SecretKey.Access, issuer)

	case constants.AuthProviderFirebase:
		if params.FirebaseApp == nil {
			return nil, errors.New("firebase auth requires a Firebase app")
		}
		client, err := params.FirebaseApp.Auth(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firebase Auth client")
		}
		params.Logger.Info("Verifying bearer tokens as Firebase ID tokens")

		return NewFirebaseVerifier(client), nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}
