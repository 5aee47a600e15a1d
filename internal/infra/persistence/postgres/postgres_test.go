package postgres

import (
	"context"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/infra/persistence/model"
	"vidtube/internal/infra/persistence/postgres/migrations"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(nil))

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}

func TestStoreError(t *testing.T) {
	err := storeError(context.Background(), errors.Wrap(context.DeadlineExceeded, "select"), "find user")
	assert.True(t, errors.Is(err, domainerrors.ErrStoreTimeout))

	err = storeError(context.Background(), errors.New("connection reset"), "find user")
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestUserMapping_RoundTrip(t *testing.T) {
	now := time.Now()
	user := &entity.User{
		ID:               uuid.New(),
		Username:         "alice",
		Email:            "alice@example.com",
		Fullname:         "Alice",
		Avatar:           &entity.Media{Key: "avatars/a.png", URL: "http://cdn/avatars/a.png"},
		PasswordHash:     "hash",
		RefreshTokenHash: "rt",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	got := toUserDomain(fromUserDomain(user))

	assert.Equal(t, user, got)
	assert.Nil(t, got.CoverImage)
}

func TestVideoMapping_PopulatesOwner(t *testing.T) {
	ownerID := uuid.New()
	videoM := &model.VideoModel{
		ID:      uuid.New(),
		Title:   "intro",
		OwnerID: ownerID,
		Owner:   &model.UserModel{ID: ownerID, Username: "bob", Fullname: "Bob", AvatarURL: "http://cdn/b.png"},
	}

	video := toVideoDomain(videoM)

	require.NotNil(t, video.Owner)
	assert.Equal(t, "bob", video.Owner.Username)
	assert.Equal(t, "http://cdn/b.png", video.Owner.Avatar)
}

func TestPlaylistMapping_PreservesOrder(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	playlist := toPlaylistDomain(&model.PlaylistModel{
		ID:     uuid.New(),
		Name:   "favs",
		Videos: []model.PlaylistVideoModel{{ID: 1, VideoID: first}, {ID: 2, VideoID: second}},
	})

	assert.Equal(t, []uuid.UUID{first, second}, playlist.VideoIDs)
}

func TestMigrations_Embedded(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	content, err := migrations.FS.ReadFile(entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- +goose Up")
	assert.Contains(t, string(content), "refresh_token_hash")
}
