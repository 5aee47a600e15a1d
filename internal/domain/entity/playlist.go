package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Playlist is an ordered, duplicate-free list of videos curated by its owner.
type Playlist struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
	VideoIDs    []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether userID may modify the playlist.
func (p *Playlist) OwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// HasVideo reports whether the playlist already contains videoID.
func (p *Playlist) HasVideo(videoID uuid.UUID) bool {
	return slices.Contains(p.VideoIDs, videoID)
}
