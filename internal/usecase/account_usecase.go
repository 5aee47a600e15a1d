package usecase

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// The media files are staged by the caller; the usecase always discards them.
type RegisterInput struct {
	Fullname   string
	Email      string
	Username   string
	Password   string
	Avatar     *service.StagedFile
	CoverImage *service.StagedFile
}

// UpdateAccountInput defines the editable account details.
type UpdateAccountInput struct {
	Fullname string
	Email    string
}

// AccountUsecase defines the account and profile operations of the signed-in user.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, input UpdateAccountInput) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, file *service.StagedFile) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, file *service.StagedFile) (*entity.User, error)
	GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error)
	AddToWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error
}
