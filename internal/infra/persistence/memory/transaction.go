package memory

import (
	"context"

	"vidtube/internal/domain/repository"
)

type transactionManager struct {
	s *Store
}

type repositoryFactory struct {
	s *Store
}

func (f *repositoryFactory) UserRepo() repository.UserRepository { return NewUserRepository(f.s) }

func (f *repositoryFactory) VideoRepo() repository.VideoRepository { return NewVideoRepository(f.s) }

func (f *repositoryFactory) SubscriptionRepo() repository.SubscriptionRepository {
	return NewSubscriptionRepository(f.s)
}

func (f *repositoryFactory) PlaylistRepo() repository.PlaylistRepository {
	return NewPlaylistRepository(f.s)
}

// NewTransactionManager runs each transaction under the store's write lock,
// so other callers wait until it commits or rolls back.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{s: s}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.s.mu.Lock()
	defer tm.s.mu.Unlock()

	snapshot := tm.s.data.clone()
	view := &Store{
		data:    tm.s.data,
		timeout: tm.s.timeout,
		now:     tm.s.now,
		held:    true,
	}

	if err := fn(&repositoryFactory{s: view}); err != nil {
		tm.s.data = snapshot

		return err
	}

	return nil
}
