package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(username string) *entity.User {
	return &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		Fullname:     username,
		Avatar:       &entity.Media{Key: "avatars/" + username, URL: "http://cdn/" + username},
		PasswordHash: "hash",
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewWithTimeout(time.Second)
	users := NewUserRepository(store)

	alice := newTestUser("alice")
	require.NoError(t, users.Create(ctx, alice))
	assert.NotEqual(t, uuid.Nil, alice.ID)

	byID, err := users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byEmail, err := users.FindByUsernameOrEmail(ctx, "", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	_, err = users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = users.Create(ctx, newTestUser("alice"))
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewWithTimeout(time.Second))

	alice := newTestUser("alice")
	require.NoError(t, users.Create(ctx, alice))

	found, err := users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	found.Avatar.URL = "mutated"

	again, err := users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/alice", again.Avatar.URL)
}

func TestUserRepository_RotateRefreshTokenHash(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewWithTimeout(time.Second))

	alice := newTestUser("alice")
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.SetRefreshTokenHash(ctx, alice.ID, "h1"))

	ok, err := users.RotateRefreshTokenHash(ctx, alice.ID, "h1", "h2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = users.RotateRefreshTokenHash(ctx, alice.ID, "h1", "h3")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = users.RotateRefreshTokenHash(ctx, alice.ID, "", "h3")
	require.NoError(t, err)
	assert.False(t, ok)

	found, err := users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "h2", found.RefreshTokenHash)
}

func TestUserRepository_ConcurrentRotationHasOneWinner(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewWithTimeout(time.Second))

	alice := newTestUser("alice")
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.SetRefreshTokenHash(ctx, alice.ID, "h1"))

	const attempts = 16
	results := make(chan bool, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := users.RotateRefreshTokenHash(ctx, alice.ID, "h1", uuid.NewString()+string(rune('a'+i)))
			assert.NoError(t, err)
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for ok := range results {
		if ok {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestUserRepository_WatchHistory(t *testing.T) {
	ctx := context.Background()
	store := NewWithTimeout(time.Second)
	users := NewUserRepository(store)

	owner := newTestUser("bob")
	viewer := newTestUser("alice")
	require.NoError(t, users.Create(ctx, owner))
	require.NoError(t, users.Create(ctx, viewer))

	first := &entity.Video{Title: "first", OwnerID: owner.ID}
	second := &entity.Video{Title: "second", OwnerID: owner.ID}
	store.SeedVideo(first)
	store.SeedVideo(second)

	require.NoError(t, users.AppendWatchHistory(ctx, viewer.ID, second.ID))
	require.NoError(t, users.AppendWatchHistory(ctx, viewer.ID, first.ID))
	assert.ErrorIs(t, users.AppendWatchHistory(ctx, viewer.ID, uuid.New()), repository.ErrVideoNotFound)

	history, err := users.FindWatchHistory(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "second", history[0].Title)
	assert.Equal(t, "first", history[1].Title)
	require.NotNil(t, history[0].Owner)
	assert.Equal(t, "bob", history[0].Owner.Username)
}

func TestSubscriptionRepository(t *testing.T) {
	ctx := context.Background()
	subs := NewSubscriptionRepository(NewWithTimeout(time.Second))
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, subs.Create(ctx, &entity.Subscription{SubscriberID: alice, ChannelID: bob}))
	err := subs.Create(ctx, &entity.Subscription{SubscriberID: alice, ChannelID: bob})
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))

	exists, err := subs.Exists(ctx, alice, bob)
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := subs.CountSubscribers(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = subs.CountSubscribedTo(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, subs.Delete(ctx, alice, bob))
	assert.ErrorIs(t, subs.Delete(ctx, alice, bob), repository.ErrSubscriptionNotFound)
}

func TestPlaylistRepository(t *testing.T) {
	ctx := context.Background()
	playlists := NewPlaylistRepository(NewWithTimeout(time.Second))
	owner, video := uuid.New(), uuid.New()

	p := &entity.Playlist{Name: "favs", OwnerID: owner}
	require.NoError(t, playlists.Create(ctx, p))

	require.NoError(t, playlists.AddVideo(ctx, p.ID, video))
	require.NoError(t, playlists.AddVideo(ctx, p.ID, video))

	found, err := playlists.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{video}, found.VideoIDs)

	require.NoError(t, playlists.Update(ctx, p.ID, "renamed", "desc"))
	require.NoError(t, playlists.RemoveVideo(ctx, p.ID, video))

	list, err := playlists.FindByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "renamed", list[0].Name)
	assert.Empty(t, list[0].VideoIDs)

	require.NoError(t, playlists.Delete(ctx, p.ID))
	_, err = playlists.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrPlaylistNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewWithTimeout(time.Second)
	tm := NewTransactionManager(store)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, newTestUser("alice")); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewUserRepository(store).FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_RollbackKeepsOutsideWrites(t *testing.T) {
	ctx := context.Background()
	store := NewWithTimeout(time.Second)
	users := NewUserRepository(store)
	tm := NewTransactionManager(store)

	user := newTestUser("alice")
	require.NoError(t, users.Create(ctx, user))
	require.NoError(t, users.SetRefreshTokenHash(ctx, user.ID, "live"))

	loggedOut := make(chan error, 1)
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		go func() {
			loggedOut <- users.SetRefreshTokenHash(ctx, user.ID, "")
		}()

		// The logout waits for the transaction to finish.
		select {
		case <-loggedOut:
			t.Error("write outside the transaction ran before it finished")
		case <-time.After(20 * time.Millisecond):
		}

		if err := f.PlaylistRepo().Create(ctx, &entity.Playlist{Name: "later", Description: "d", OwnerID: user.ID}); err != nil {
			return err
		}

		return repository.ErrUserNotFound
	})
	require.ErrorIs(t, err, repository.ErrUserNotFound)
	require.NoError(t, <-loggedOut)

	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.RefreshTokenHash)

	playlists, err := NewPlaylistRepository(store).FindByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, playlists)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewWithTimeout(time.Second)
	tm := NewTransactionManager(store)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, newTestUser("bob")); err != nil {
			return err
		}
		_, err := f.UserRepo().FindByUsername(ctx, "bob")

		return err
	})
	require.NoError(t, err)

	_, err = NewUserRepository(store).FindByUsername(ctx, "bob")
	assert.NoError(t, err)
}

func TestStore_ExpiredContextIsStoreTimeout(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := NewUserRepository(NewWithTimeout(time.Second)).FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrStoreTimeout))
}
