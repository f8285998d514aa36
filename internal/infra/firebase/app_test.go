package firebase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bakery/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want bool
	}{
		{
			name: "memory store with jwt",
			cfg:  &config.Config{Persistence: &config.PersistenceConfig{Driver: "memory"}, Auth: &config.AuthConfig{Provider: "jwt"}},
			want: false,
		},
		{
			name: "firestore store",
			cfg:  &config.Config{Persistence: &config.PersistenceConfig{Driver: "firestore"}},
			want: true,
		},
		{
			name: "firebase auth",
			cfg:  &config.Config{Auth: &config.AuthConfig{Provider: "firebase"}},
			want: true,
		},
		{
			name: "nothing configured",
			cfg:  &config.Config{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Required(tt.cfg))
		})
	}
}

func TestNewApp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("not required returns nil app", func(t *testing.T) {
		app, err := NewApp(Params{Ctx: context.Background(), Config: &config.Config{}, Logger: logger})
		require.NoError(t, err)
		assert.Nil(t, app)
	})

	t.Run("missing project id", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{Provider: "firebase"}}
		_, err := NewApp(Params{Ctx: context.Background(), Config: cfg, Logger: logger})
		assert.ErrorContains(t, err, "projectId")
	})
}
