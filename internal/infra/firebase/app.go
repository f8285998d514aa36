// Package firebase builds the Firebase app shared by the Firestore review
// store and Firebase ID token verification.
package firebase

import (
	"context"
	"log/slog"

	"bakery/config"
	"bakery/internal/domain/constants"
	"bakery/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Required reports whether any configured component talks to Firebase.
func Required(cfg *config.Config) bool {
	if cfg.Persistence != nil && cfg.Persistence.Driver == constants.PersistenceDriverFirestore {
		return true
	}

	return cfg.Auth != nil && cfg.Auth.Provider == constants.AuthProviderFirebase
}

// NewApp returns nil when neither Firestore nor Firebase Auth is selected.
func NewApp(params Params) (*firebase.App, error) {
	if !Required(params.Config) {
		return nil, nil //nolint:nilnil // absent by configuration
	}

	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required for firestore storage or firebase auth")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}
