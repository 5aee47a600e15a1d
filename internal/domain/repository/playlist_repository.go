package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlaylistNotFound is returned when a playlist does not exist.
var ErrPlaylistNotFound = errors.New("playlist not found")

// PlaylistRepository defines playlist persistence.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AddVideo appends videoID unless already present.
	AddVideo(ctx context.Context, id, videoID uuid.UUID) error

	// RemoveVideo removes videoID if present.
	RemoveVideo(ctx context.Context, id, videoID uuid.UUID) error
}
