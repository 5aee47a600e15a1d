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
)

type videoRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB, timeout time.Duration) repository.VideoRepository {
	return &videoRepository{db: db, timeout: timeout}
}

// FindByID retrieves a video with its owner.
func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	var videoM model.VideoModel
	if err := repo.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, storeError(ctx, err, "failed to find video by id")
	}

	return toVideoDomain(&videoM), nil
}

func toVideoDomain(data *model.VideoModel) *entity.Video {
	video := &entity.Video{
		ID:          data.ID,
		VideoFile:   data.VideoFile,
		Thumbnail:   data.Thumbnail,
		Title:       data.Title,
		Description: data.Description,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Owner != nil {
		video.Owner = toUserDomain(data.Owner).Summary()
	}

	return video
}
