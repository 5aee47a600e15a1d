package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type playlistMocks struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	playlistRepo *mockRepo.MockPlaylistRepository
	videoRepo    *mockRepo.MockVideoRepository
}

func newPlaylistServiceForTest(t *testing.T) (usecase.PlaylistUsecase, *playlistMocks) {
	m := &playlistMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		playlistRepo: mockRepo.NewMockPlaylistRepository(t),
		videoRepo:    mockRepo.NewMockVideoRepository(t),
	}

	srv := NewPlaylistService(PlaylistServiceParams{
		TxManager:    m.txManager,
		PlaylistRepo: m.playlistRepo,
		Logger:       newDiscardLogger(),
	})

	return srv, m
}

func (m *playlistMocks) inTx(t *testing.T) {
	expectTx(t, m.txManager, m.factory)
	m.factory.EXPECT().PlaylistRepo().Return(m.playlistRepo).Maybe()
	m.factory.EXPECT().VideoRepo().Return(m.videoRepo).Maybe()
}

func TestPlaylistService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		srv, m := newPlaylistServiceForTest(t)
		m.playlistRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Playlist) bool {
			return p.Name == "Favourites" && p.OwnerID == ownerID
		})).Return(nil)

		playlist, err := srv.Create(ctx, ownerID, usecase.PlaylistInput{Name: " Favourites ", Description: "best of"})

		require.NoError(t, err)
		assert.Equal(t, "Favourites", playlist.Name)
		assert.Empty(t, playlist.VideoIDs)
	})

	t.Run("missing description", func(t *testing.T) {
		srv, _ := newPlaylistServiceForTest(t)

		_, err := srv.Create(ctx, ownerID, usecase.PlaylistInput{Name: "Favourites"})

		assert.True(t, errors.Is(err, domainerrors.ErrBadRequest))
	})
}

func TestPlaylistService_Get_NotFound(t *testing.T) {
	srv, m := newPlaylistServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	m.playlistRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPlaylistNotFound)

	_, err := srv.Get(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPlaylistService_Update_NonOwnerForbidden(t *testing.T) {
	srv, m := newPlaylistServiceForTest(t)
	ctx := context.Background()
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: uuid.New()}

	m.inTx(t)
	m.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)

	_, err := srv.Update(ctx, uuid.New(), playlist.ID, usecase.PlaylistInput{Name: "n", Description: "d"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode())
	m.playlistRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistService_AddVideo(t *testing.T) {
	ctx := context.Background()
	ownerID, videoID := uuid.New(), uuid.New()

	t.Run("adds", func(t *testing.T) {
		srv, m := newPlaylistServiceForTest(t)
		playlist := &entity.Playlist{ID: uuid.New(), OwnerID: ownerID}
		updated := &entity.Playlist{ID: playlist.ID, OwnerID: ownerID, VideoIDs: []uuid.UUID{videoID}}

		m.inTx(t)
		m.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil).Once()
		m.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID}, nil)
		m.playlistRepo.EXPECT().AddVideo(ctx, playlist.ID, videoID).Return(nil)
		m.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(updated, nil).Once()

		got, err := srv.AddVideo(ctx, ownerID, playlist.ID, videoID)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{videoID}, got.VideoIDs)
	})

	t.Run("already present is a no-op", func(t *testing.T) {
		srv, m := newPlaylistServiceForTest(t)
		playlist := &entity.Playlist{ID: uuid.New(), OwnerID: ownerID, VideoIDs: []uuid.UUID{videoID}}

		m.inTx(t)
		m.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil).Twice()
		m.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID}, nil)

		got, err := srv.AddVideo(ctx, ownerID, playlist.ID, videoID)

		require.NoError(t, err)
		assert.Len(t, got.VideoIDs, 1)
	})

	t.Run("unknown video", func(t *testing.T) {
		srv, m := newPlaylistServiceForTest(t)
		playlist := &entity.Playlist{ID: uuid.New(), OwnerID: ownerID}

		m.inTx(t)
		m.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
		m.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

		_, err := srv.AddVideo(ctx, ownerID, playlist.ID, videoID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}

func TestPlaylistService_RemoveVideo_NotInPlaylist(t *testing.T) {
	srv, m := newPlaylistServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: ownerID}

	m.inTx(t)
	m.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)

	_, err := srv.RemoveVideo(ctx, ownerID, playlist.ID, uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPlaylistService_Delete(t *testing.T) {
	srv, m := newPlaylistServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: ownerID}

	m.inTx(t)
	m.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil).Once()
	m.playlistRepo.EXPECT().Delete(ctx, playlist.ID).Return(nil)
	m.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(nil, repository.ErrPlaylistNotFound).Once()

	assert.NoError(t, srv.Delete(ctx, ownerID, playlist.ID))
}
