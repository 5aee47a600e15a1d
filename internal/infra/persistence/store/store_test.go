package store

import (
	"io"
	"log/slog"
	"testing"

	"vidtube/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		driver  string
		wantErr string
	}{
		{name: "memory", driver: config.StoreDriverMemory},
		{name: "empty driver falls back to memory", driver: ""},
		{name: "postgres without config", driver: config.StoreDriverPostgres, wantErr: "postgres config is required"},
		{name: "mongo without config", driver: config.StoreDriverMongo, wantErr: "mongo"},
		{name: "unknown", driver: "cassandra", wantErr: "unknown store driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Store.Driver = tt.driver

			repos, err := New(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, repos.UserRepo)
			assert.NotNil(t, repos.VideoRepo)
			assert.NotNil(t, repos.SubscriptionRepo)
			assert.NotNil(t, repos.PlaylistRepo)
			assert.NotNil(t, repos.TransactionManager)
		})
	}
}
