package postgres

import (
	"context"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/infra/persistence"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db      *gorm.DB
	timeout time.Duration
}

// gormRepositoryFactory creates repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx      *gorm.DB // In GORM, a transaction object is also a *gorm.DB
	timeout time.Duration
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx, f.timeout)
}

func (f *gormRepositoryFactory) VideoRepo() repository.VideoRepository {
	return NewVideoRepository(f.tx, f.timeout)
}

func (f *gormRepositoryFactory) SubscriptionRepo() repository.SubscriptionRepository {
	return NewSubscriptionRepository(f.tx, f.timeout)
}

func (f *gormRepositoryFactory) PlaylistRepo() repository.PlaylistRepository {
	return NewPlaylistRepository(f.tx, f.timeout)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	return &gormTransactionManager{db: db, timeout: cfg.Store.Timeout}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		if isTimeout(ctx, tx.Error) {
			return persistence.TimeoutError("begin transaction")
		}

		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic and re-panic so Recover middleware can respond.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx, timeout: tm.timeout}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		if isTimeout(ctx, err) {
			return persistence.TimeoutError("commit transaction")
		}

		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
