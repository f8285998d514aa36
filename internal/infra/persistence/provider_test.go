package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bakery/config"
	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.Config) Params {
	t.Helper()

	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewTransactionManager_Memory(t *testing.T) {
	cfg := &config.Config{Persistence: &config.PersistenceConfig{Driver: "memory", MaxAttempts: 3}}

	tm, err := NewTransactionManager(newParams(t, cfg))
	require.NoError(t, err)

	ctx := context.Background()
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.ProductRepo().SaveRatingSummary(ctx, "tarta", entity.EmptyRatingSummary().Add(5))
	})
	require.NoError(t, err)
}

func TestNewTransactionManager_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{
			name:    "unknown driver",
			cfg:     &config.Config{Persistence: &config.PersistenceConfig{Driver: "cassandra"}},
			wantErr: "unknown persistence driver",
		},
		{
			name:    "postgres without config",
			cfg:     &config.Config{Persistence: &config.PersistenceConfig{Driver: "postgres"}},
			wantErr: "postgres configuration is missing",
		},
		{
			name:    "firestore without firebase app",
			cfg:     &config.Config{Persistence: &config.PersistenceConfig{Driver: "firestore"}},
			wantErr: "requires a Firebase app",
		},
		{
			name:    "mongo without uri",
			cfg:     &config.Config{Persistence: &config.PersistenceConfig{Driver: "mongo"}},
			wantErr: "mongo.uri",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransactionManager(newParams(t, tt.cfg))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
