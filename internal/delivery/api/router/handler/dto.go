package handler

import (
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"

	"github.com/google/uuid"
)

// UserResponse is the public projection of a user. Password and token hashes never leave the service.
type UserResponse struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	Fullname     string      `json:"fullname"`
	Avatar       string      `json:"avatar"`
	CoverImage   string      `json:"coverImage"`
	WatchHistory []uuid.UUID `json:"watchHistory"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// OwnerResponse is the user summary embedded in videos.
type OwnerResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Fullname string    `json:"fullname"`
	Avatar   string    `json:"avatar"`
}

// VideoResponse is a video as listed in the watch history.
type VideoResponse struct {
	ID          uuid.UUID      `json:"id"`
	VideoFile   string         `json:"videoFile"`
	Thumbnail   string         `json:"thumbnail"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Duration    float64        `json:"duration"`
	Views       int64          `json:"views"`
	IsPublished bool           `json:"isPublished"`
	Owner       *OwnerResponse `json:"owner,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ChannelResponse is a public channel page.
type ChannelResponse struct {
	ID                        uuid.UUID `json:"id"`
	Username                  string    `json:"username"`
	Fullname                  string    `json:"fullname"`
	Email                     string    `json:"email"`
	Avatar                    string    `json:"avatar"`
	CoverImage                string    `json:"coverImage"`
	SubscribersCount          int64     `json:"subscribersCount"`
	ChannelsSubscribedToCount int64     `json:"channelsSubscribedToCount"`
	IsSubscribed              bool      `json:"isSubscribed"`
}

// PlaylistResponse is a playlist with its ordered video IDs.
type PlaylistResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Owner       uuid.UUID   `json:"owner"`
	Videos      []uuid.UUID `json:"videos"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// TokensResponse carries a freshly issued token pair.
type TokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}

// SubscriptionResponse reports the subscription state after a change.
type SubscriptionResponse struct {
	ChannelID  uuid.UUID `json:"channelId"`
	Subscribed bool      `json:"subscribed"`
}

func newUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	history := u.WatchHistory
	if history == nil {
		history = []uuid.UUID{}
	}

	return &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Fullname:     u.Fullname,
		Avatar:       u.Avatar.URLOrEmpty(),
		CoverImage:   u.CoverImage.URLOrEmpty(),
		WatchHistory: history,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func newVideoResponses(videos []*entity.Video) []*VideoResponse {
	out := make([]*VideoResponse, 0, len(videos))
	for _, v := range videos {
		item := &VideoResponse{
			ID:          v.ID,
			VideoFile:   v.VideoFile,
			Thumbnail:   v.Thumbnail,
			Title:       v.Title,
			Description: v.Description,
			Duration:    v.Duration,
			Views:       v.Views,
			IsPublished: v.IsPublished,
			CreatedAt:   v.CreatedAt,
		}
		if v.Owner != nil {
			item.Owner = &OwnerResponse{
				ID:       v.Owner.ID,
				Username: v.Owner.Username,
				Fullname: v.Owner.Fullname,
				Avatar:   v.Owner.Avatar,
			}
		}
		out = append(out, item)
	}

	return out
}

func newChannelResponse(p *entity.ChannelProfile) *ChannelResponse {
	return &ChannelResponse{
		ID:                        p.ID,
		Username:                  p.Username,
		Fullname:                  p.Fullname,
		Email:                     p.Email,
		Avatar:                    p.Avatar,
		CoverImage:                p.CoverImage,
		SubscribersCount:          p.SubscribersCount,
		ChannelsSubscribedToCount: p.ChannelsSubscribedToCount,
		IsSubscribed:              p.IsSubscribed,
	}
}

func newPlaylistResponse(p *entity.Playlist) *PlaylistResponse {
	if p == nil {
		return nil
	}

	videos := p.VideoIDs
	if videos == nil {
		videos = []uuid.UUID{}
	}

	return &PlaylistResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Owner:       p.OwnerID,
		Videos:      videos,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newPlaylistResponses(playlists []*entity.Playlist) []*PlaylistResponse {
	out := make([]*PlaylistResponse, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, newPlaylistResponse(p))
	}

	return out
}

func newTokensResponse(pair *service.TokenPair) *TokensResponse {
	return &TokensResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
