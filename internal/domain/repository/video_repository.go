package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a video does not exist.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository reads videos published by the upload pipeline.
type VideoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)
}
