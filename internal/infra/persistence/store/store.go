// Package store selects the credential store backend named by store.driver.
package store

import (
	"log/slog"

	"vidtube/config"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/infra/persistence/memory"
	"vidtube/internal/infra/persistence/mongodb"
	"vidtube/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories of the selected backend.
type Repositories struct {
	fx.Out

	UserRepo           repository.UserRepository
	VideoRepo          repository.VideoRepository
	SubscriptionRepo   repository.SubscriptionRepository
	PlaylistRepo       repository.PlaylistRepository
	TransactionManager repository.TransactionManager
}

// Module provides the repositories of the configured backend.
var Module = fx.Options(
	fx.Provide(New),
)

// New opens only the backend named by store.driver.
func New(params Params) (Repositories, error) {
	cfg := params.Config
	timeout := cfg.Store.Timeout

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: cfg, Logger: params.Logger})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			UserRepo:           postgres.NewUserRepository(db, timeout),
			VideoRepo:          postgres.NewVideoRepository(db, timeout),
			SubscriptionRepo:   postgres.NewSubscriptionRepository(db, timeout),
			PlaylistRepo:       postgres.NewPlaylistRepository(db, timeout),
			TransactionManager: postgres.NewTransactionManager(db, cfg),
		}, nil

	case config.StoreDriverMongo:
		db, err := mongodb.New(mongodb.Params{Lifecycle: params.Lifecycle, Config: cfg, Logger: params.Logger})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			UserRepo:           mongodb.NewUserRepository(db, timeout),
			VideoRepo:          mongodb.NewVideoRepository(db, timeout),
			SubscriptionRepo:   mongodb.NewSubscriptionRepository(db, timeout),
			PlaylistRepo:       mongodb.NewPlaylistRepository(db, timeout),
			TransactionManager: mongodb.NewTransactionManager(db, cfg),
		}, nil

	case config.StoreDriverMemory, "":
		params.Logger.Warn("Using the in-memory store, data is lost on restart")

		return FromMemory(memory.New(cfg)), nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

// FromMemory wires the repositories of an existing in-memory store.
func FromMemory(s *memory.Store) Repositories {
	return Repositories{
		UserRepo:           memory.NewUserRepository(s),
		VideoRepo:          memory.NewVideoRepository(s),
		SubscriptionRepo:   memory.NewSubscriptionRepository(s),
		PlaylistRepo:       memory.NewPlaylistRepository(s),
		TransactionManager: memory.NewTransactionManager(s),
	}
}
