package mongodb

import (
	"context"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUserDoc_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &entity.User{
		ID:               uuid.New(),
		Username:         "alice",
		Email:            "alice@example.com",
		Fullname:         "Alice",
		Avatar:           &entity.Media{Key: "avatars/a.png", URL: "http://cdn/avatars/a.png"},
		WatchHistory:     []uuid.UUID{uuid.New(), uuid.New()},
		PasswordHash:     "hash",
		RefreshTokenHash: "rt",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	raw, err := bson.Marshal(fromUserDomain(user))
	require.NoError(t, err)

	var doc userDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, user, doc.toDomain())
}

func TestUserDoc_OmitsMissingCover(t *testing.T) {
	raw, err := bson.Marshal(fromUserDomain(&entity.User{ID: uuid.New()}))
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	_, hasCover := fields["coverImage"]
	assert.False(t, hasCover)
}

func TestVideoDoc_RoundTrip(t *testing.T) {
	video := &entity.Video{ID: uuid.New(), Title: "intro", OwnerID: uuid.New(), Duration: 12.5, IsPublished: true}

	got := fromVideoDomain(video).toDomain()

	assert.Equal(t, video.ID, got.ID)
	assert.Equal(t, video.OwnerID, got.OwnerID)
	assert.Equal(t, video.Duration, got.Duration)
}

func TestParseID_Foreign(t *testing.T) {
	assert.Equal(t, uuid.Nil, parseID("64b7f0c2e4b0a1a2b3c4d5e6"))
}

func TestStoreError_Timeout(t *testing.T) {
	err := storeError(context.Background(), context.DeadlineExceeded, "find user")

	assert.True(t, errors.Is(err, domainerrors.ErrStoreTimeout))
}
