// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the credential store operations on users.
// Implementations return domainerrors.ErrUserAlreadyExists on unique violations
// and domainerrors.ErrStoreTimeout when the store deadline passes.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by exact (normalized) username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByUsernameOrEmail returns the first user matching either non-empty handle.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new user. The ID and timestamps are assigned when empty.
	Create(ctx context.Context, user *entity.User) error

	// UpdateAccount replaces the fullname and email.
	UpdateAccount(ctx context.Context, id uuid.UUID, fullname, email string) error

	// UpdateAvatar replaces the avatar reference.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar *entity.Media) error

	// UpdateCoverImage replaces the cover image reference.
	UpdateCoverImage(ctx context.Context, id uuid.UUID, cover *entity.Media) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error

	// SetRefreshTokenHash overwrites the stored refresh token hash. An empty hash clears the session.
	SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash string) error

	// RotateRefreshTokenHash replaces expected with next in one conditional write.
	// It reports false when the stored hash no longer equals expected.
	RotateRefreshTokenHash(ctx context.Context, id uuid.UUID, expected, next string) (bool, error)

	// AppendWatchHistory appends a video to the user's watch history.
	AppendWatchHistory(ctx context.Context, id, videoID uuid.UUID) error

	// FindWatchHistory returns watched videos in watch order with their owners populated.
	FindWatchHistory(ctx context.Context, id uuid.UUID) ([]*entity.Video, error)
}
