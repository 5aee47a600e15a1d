package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaylistInput carries the editable fields of a playlist.
type PlaylistInput struct {
	Name        string
	Description string
}

// PlaylistUsecase defines playlist management. Only the owner may mutate a playlist.
type PlaylistUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input PlaylistInput) (*entity.Playlist, error)
	Get(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Playlist, error)
	Update(ctx context.Context, userID, playlistID uuid.UUID, input PlaylistInput) (*entity.Playlist, error)
	Delete(ctx context.Context, userID, playlistID uuid.UUID) error
	AddVideo(ctx context.Context, userID, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, userID, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
}
