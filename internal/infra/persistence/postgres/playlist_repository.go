package postgres

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playlistRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB, timeout time.Duration) repository.PlaylistRepository {
	return &playlistRepository{db: db, timeout: timeout}
}

func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	if playlist.ID == uuid.Nil {
		playlist.ID = uuid.New()
	}
	playlistM := &model.PlaylistModel{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		OwnerID:     playlist.OwnerID,
	}

	if err := repo.db.WithContext(ctx).Omit("Videos").Create(playlistM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return storeError(ctx, err, "failed to create playlist")
	}
	playlist.CreatedAt = playlistM.CreatedAt
	playlist.UpdatedAt = playlistM.UpdatedAt

	return nil
}

func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	var playlistM model.PlaylistModel
	if err := repo.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id = ?", id).
		First(&playlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, storeError(ctx, err, "failed to find playlist")
	}

	return toPlaylistDomain(&playlistM), nil
}

func (repo *playlistRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	var playlistMs []model.PlaylistModel
	if err := repo.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&playlistMs).Error; err != nil {
		return nil, storeError(ctx, err, "failed to list playlists")
	}

	playlists := make([]*entity.Playlist, 0, len(playlistMs))
	for i := range playlistMs {
		playlists = append(playlists, toPlaylistDomain(&playlistMs[i]))
	}

	return playlists, nil
}

func (repo *playlistRepository) Update(ctx context.Context, id uuid.UUID, name, description string) error {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "description": description, "updated_at": time.Now()})
	if result.Error != nil {
		return storeError(ctx, result.Error, "failed to update playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PlaylistModel{})
	if result.Error != nil {
		return storeError(ctx, result.Error, "failed to delete playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// AddVideo inserts the pair, ignoring an existing one.
func (repo *playlistRepository) AddVideo(ctx context.Context, id, videoID uuid.UUID) error {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	entry := &model.PlaylistVideoModel{PlaylistID: id, VideoID: videoID}
	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return storeError(ctx, err, "failed to add video to playlist")
	}

	return nil
}

func (repo *playlistRepository) RemoveVideo(ctx context.Context, id, videoID uuid.UUID) error {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	if err := repo.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", id, videoID).
		Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return storeError(ctx, err, "failed to remove video from playlist")
	}

	return nil
}

func toPlaylistDomain(data *model.PlaylistModel) *entity.Playlist {
	videoIDs := make([]uuid.UUID, 0, len(data.Videos))
	for _, v := range data.Videos {
		videoIDs = append(videoIDs, v.VideoID)
	}

	return &entity.Playlist{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		VideoIDs:    videoIDs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
