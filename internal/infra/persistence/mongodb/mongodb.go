// Package mongodb implements the persistence layer on MongoDB.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"vidtube/config"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/lifecycle"
	"vidtube/internal/errors"
	"vidtube/internal/infra/persistence"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names.
const (
	usersCollection         = "users"
	videosCollection        = "videos"
	subscriptionsCollection = "subscriptions"
	playlistsCollection     = "playlists"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the configured database.
// Indexes are ensured on start, after the ping.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri is required for the mongo store driver")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database is required for the mongo store driver")
	}

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(params.Config.Store.Timeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}
			params.Logger.Info("MongoDB indexes are up to date", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		videosCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
		subscriptionsCollection: {
			{Keys: bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "channel", Value: 1}}},
		},
		playlistsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", name)
		}
	}

	return nil
}

// storeError maps a driver error to a timeout or a generic database error.
func storeError(ctx context.Context, err error, op string) error {
	if persistence.DeadlineExceeded(ctx, err) || mongo.IsTimeout(err) {
		return persistence.TimeoutError(op)
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

// store bundles what the repositories share. session is set for repositories
// handed out inside a transaction.
type store struct {
	db      *mongo.Database
	timeout time.Duration
	session mongo.Session
}

func (s store) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.session != nil {
		ctx = mongo.NewSessionContext(ctx, s.session)
	}

	return persistence.Bound(ctx, s.timeout)
}
