package mongodb

import (
	"time"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// IDs are stored as canonical UUID strings so they round-trip with the SQL store.

type mediaDoc struct {
	Key string `bson:"key"`
	URL string `bson:"url"`
}

type userDoc struct {
	ID               string    `bson:"_id"`
	Username         string    `bson:"username"`
	Email            string    `bson:"email"`
	Fullname         string    `bson:"fullname"`
	Avatar           *mediaDoc `bson:"avatar,omitempty"`
	CoverImage       *mediaDoc `bson:"coverImage,omitempty"`
	WatchHistory     []string  `bson:"watchHistory"`
	Password         string    `bson:"password"`
	RefreshTokenHash string    `bson:"refreshTokenHash"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

type videoDoc struct {
	ID          string    `bson:"_id"`
	VideoFile   string    `bson:"videoFile"`
	Thumbnail   string    `bson:"thumbnail"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Duration    float64   `bson:"duration"`
	Views       int64     `bson:"views"`
	IsPublished bool      `bson:"isPublished"`
	Owner       string    `bson:"owner"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

type subscriptionDoc struct {
	ID         string    `bson:"_id"`
	Subscriber string    `bson:"subscriber"`
	Channel    string    `bson:"channel"`
	CreatedAt  time.Time `bson:"createdAt"`
}

type playlistDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Owner       string    `bson:"owner"`
	Videos      []string  `bson:"videos"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func toMediaDoc(m *entity.Media) *mediaDoc {
	if m == nil {
		return nil
	}

	return &mediaDoc{Key: m.Key, URL: m.URL}
}

func (d *mediaDoc) toDomain() *entity.Media {
	if d == nil {
		return nil
	}

	return &entity.Media{Key: d.Key, URL: d.URL}
}

func fromUserDomain(u *entity.User) *userDoc {
	return &userDoc{
		ID:               u.ID.String(),
		Username:         u.Username,
		Email:            u.Email,
		Fullname:         u.Fullname,
		Avatar:           toMediaDoc(u.Avatar),
		CoverImage:       toMediaDoc(u.CoverImage),
		WatchHistory:     idStrings(u.WatchHistory),
		Password:         u.PasswordHash,
		RefreshTokenHash: u.RefreshTokenHash,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (d *userDoc) toDomain() *entity.User {
	return &entity.User{
		ID:               parseID(d.ID),
		Username:         d.Username,
		Email:            d.Email,
		Fullname:         d.Fullname,
		Avatar:           d.Avatar.toDomain(),
		CoverImage:       d.CoverImage.toDomain(),
		WatchHistory:     parseIDs(d.WatchHistory),
		PasswordHash:     d.Password,
		RefreshTokenHash: d.RefreshTokenHash,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (d *videoDoc) toDomain() *entity.Video {
	return &entity.Video{
		ID:          parseID(d.ID),
		VideoFile:   d.VideoFile,
		Thumbnail:   d.Thumbnail,
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		Views:       d.Views,
		IsPublished: d.IsPublished,
		OwnerID:     parseID(d.Owner),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromVideoDomain(v *entity.Video) *videoDoc {
	return &videoDoc{
		ID:          v.ID.String(),
		VideoFile:   v.VideoFile,
		Thumbnail:   v.Thumbnail,
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		Owner:       v.OwnerID.String(),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (d *playlistDoc) toDomain() *entity.Playlist {
	return &entity.Playlist{
		ID:          parseID(d.ID),
		Name:        d.Name,
		Description: d.Description,
		OwnerID:     parseID(d.Owner),
		VideoIDs:    parseIDs(d.Videos),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

func parseIDs(ids []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, parseID(id))
	}

	return out
}

// parseID yields uuid.Nil for foreign documents with non-UUID ids.
func parseID(id string) uuid.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}

	return parsed
}
