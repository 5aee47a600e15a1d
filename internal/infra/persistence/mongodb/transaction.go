package mongodb

import (
	"context"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactionManager struct {
	db           *mongo.Database
	timeout      time.Duration
	transactions bool
}

// mongoRepositoryFactory hands out repositories bound to one session, if any.
type mongoRepositoryFactory struct {
	store
}

func (f *mongoRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{f.store}
}

func (f *mongoRepositoryFactory) VideoRepo() repository.VideoRepository {
	return &videoRepository{f.store}
}

func (f *mongoRepositoryFactory) SubscriptionRepo() repository.SubscriptionRepository {
	return &subscriptionRepository{f.store}
}

func (f *mongoRepositoryFactory) PlaylistRepo() repository.PlaylistRepository {
	return &playlistRepository{f.store}
}

// NewTransactionManager returns a manager that uses multi-document
// transactions when mongo.transactions is enabled (replica sets only).
func NewTransactionManager(db *mongo.Database, cfg *config.Config) repository.TransactionManager {
	return &mongoTransactionManager{
		db:           db,
		timeout:      cfg.Store.Timeout,
		transactions: cfg.Mongo != nil && cfg.Mongo.Transactions,
	}
}

// Execute runs fn in a session transaction. Without transactions enabled the
// callbacks run directly and rely on unique indexes and conditional updates.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if !tm.transactions {
		return fn(&mongoRepositoryFactory{store{db: tm.db, timeout: tm.timeout}})
	}

	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(&mongoRepositoryFactory{store{db: tm.db, timeout: tm.timeout, session: session}})
	})
	if err != nil && mongo.IsTimeout(err) {
		return storeError(ctx, err, "transaction")
	}

	return err
}
