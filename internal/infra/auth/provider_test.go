package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bakery/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenVerifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("jwt by default", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.SecretKey.Access = testSecret

		verifier, err := NewTokenVerifier(VerifierParams{Ctx: context.Background(), Config: cfg, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &jwtVerifier{}, verifier)
	})

	t.Run("jwt without secret", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{Provider: "jwt"}}

		_, err := NewTokenVerifier(VerifierParams{Ctx: context.Background(), Config: cfg, Logger: logger})
		assert.Error(t, err)
	})

	t.Run("firebase without app", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{Provider: "firebase"}}

		_, err := NewTokenVerifier(VerifierParams{Ctx: context.Background(), Config: cfg, Logger: logger})
		assert.ErrorContains(t, err, "Firebase app")
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{Provider: "saml"}}

		_, err := NewTokenVerifier(VerifierParams{Ctx: context.Background(), Config: cfg, Logger: logger})
		assert.ErrorContains(t, err, "unknown auth provider")
	})
}
