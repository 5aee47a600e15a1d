package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var (
	errPlaylistNotFound  = domainerrors.ErrNotFound.WithMessage("Playlist not found")
	errVideoNotFound     = domainerrors.ErrNotFound.WithMessage("Video not found")
	errPlaylistForbidden = domainerrors.ErrForbidden.WithMessage("Only the owner can modify this playlist")
)

// playlistService implements the PlaylistUsecase interface.
type playlistService struct {
	txManager    repository.TransactionManager
	playlistRepo repository.PlaylistRepository
	logger       *slog.Logger
}

// PlaylistServiceParams holds dependencies for PlaylistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PlaylistRepo repository.PlaylistRepository
	Logger       *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		txManager:    params.TxManager,
		playlistRepo: params.PlaylistRepo,
		logger:       params.Logger,
	}
}

func (srv *playlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new empty playlist owned by ownerID.
func (srv *playlistService) Create(ctx context.Context, ownerID uuid.UUID, input usecase.PlaylistInput) (*entity.Playlist, error) {
	name, description, err := validatePlaylistInput(input)
	if err != nil {
		return nil, errors.Wrap(err, "create playlist failed")
	}

	playlist := &entity.Playlist{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		VideoIDs:    []uuid.UUID{},
	}
	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to create playlist")
	}
	srv.log(ctx).Debug("Playlist created", slog.Any("playlist_id", playlist.ID), slog.Any("user_id", ownerID))

	return playlist, nil
}

// Get returns a playlist by ID.
func (srv *playlistService) Get(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error) {
	return srv.find(ctx, srv.playlistRepo, playlistID)
}

// ListByUser returns the playlists owned by userID, oldest first.
func (srv *playlistService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Playlist, error) {
	playlists, err := srv.playlistRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}

	return playlists, nil
}

// Update replaces the name and description.
func (srv *playlistService) Update(ctx context.Context, userID, playlistID uuid.UUID, input usecase.PlaylistInput) (*entity.Playlist, error) {
	name, description, err := validatePlaylistInput(input)
	if err != nil {
		return nil, errors.Wrap(err, "update playlist failed")
	}

	return srv.mutate(ctx, userID, playlistID, "update playlist", func(ctx context.Context, repoFactory repository.RepositoryFactory, _ *entity.Playlist) error {
		return repoFactory.PlaylistRepo().Update(ctx, playlistID, name, description)
	})
}

// Delete removes the playlist.
func (srv *playlistService) Delete(ctx context.Context, userID, playlistID uuid.UUID) error {
	_, err := srv.mutate(ctx, userID, playlistID, "delete playlist", func(ctx context.Context, repoFactory repository.RepositoryFactory, _ *entity.Playlist) error {
		return repoFactory.PlaylistRepo().Delete(ctx, playlistID)
	})

	return err
}

// AddVideo appends videoID. Adding a video twice keeps a single entry.
func (srv *playlistService) AddVideo(ctx context.Context, userID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	return srv.mutate(ctx, userID, playlistID, "add video to playlist", func(ctx context.Context, repoFactory repository.RepositoryFactory, playlist *entity.Playlist) error {
		if _, err := repoFactory.VideoRepo().FindByID(ctx, videoID); err != nil {
			if errors.Is(err, repository.ErrVideoNotFound) {
				return errVideoNotFound
			}

			return err
		}
		if playlist.HasVideo(videoID) {
			return nil
		}

		return repoFactory.PlaylistRepo().AddVideo(ctx, playlistID, videoID)
	})
}

// RemoveVideo removes videoID from the playlist.
func (srv *playlistService) RemoveVideo(ctx context.Context, userID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	return srv.mutate(ctx, userID, playlistID, "remove video from playlist", func(ctx context.Context, repoFactory repository.RepositoryFactory, playlist *entity.Playlist) error {
		if !playlist.HasVideo(videoID) {
			return errVideoNotFound.WithDetails("video is not in the playlist")
		}

		return repoFactory.PlaylistRepo().RemoveVideo(ctx, playlistID, videoID)
	})
}

// mutate loads the playlist, checks ownership and applies fn in one transaction.
// It returns the playlist as stored afterwards, or nil when it was deleted.
func (srv *playlistService) mutate(
	ctx context.Context,
	userID, playlistID uuid.UUID,
	op string,
	fn func(ctx context.Context, repoFactory repository.RepositoryFactory, playlist *entity.Playlist) error,
) (*entity.Playlist, error) {
	var result *entity.Playlist
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		playlistRepo := repoFactory.PlaylistRepo()

		playlist, err := srv.find(ctx, playlistRepo, playlistID)
		if err != nil {
			return err
		}
		if !playlist.OwnedBy(userID) {
			return errors.Wrap(errPlaylistForbidden, "playlist belongs to another user")
		}

		if err := fn(ctx, repoFactory, playlist); err != nil {
			if errors.Is(err, repository.ErrPlaylistNotFound) {
				return errors.Wrap(errPlaylistNotFound, "playlist disappeared")
			}

			return err
		}

		result, err = playlistRepo.FindByID(ctx, playlistID)
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			result = nil

			return nil
		}

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Playlist mutation failed", slog.String("op", op), slog.Any("playlist_id", playlistID), slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, op+" failed")
	}

	return result, nil
}

func (srv *playlistService) find(ctx context.Context, playlistRepo repository.PlaylistRepository, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, errors.Wrap(errPlaylistNotFound, "playlist lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find playlist")
	}

	return playlist, nil
}

func validatePlaylistInput(input usecase.PlaylistInput) (string, string, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	if name == "" || description == "" {
		return "", "", domainerrors.ErrBadRequest.WithMessage("Name and description are required")
	}

	return name, description, nil
}
