package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is a published upload. Videos are managed by the upload pipeline and
// are read-only to this service.
type Video struct {
	ID          uuid.UUID
	VideoFile   string
	Thumbnail   string
	Title       string
	Description string
	Duration    float64 // Seconds.
	Views       int64
	IsPublished bool
	OwnerID     uuid.UUID
	Owner       *UserSummary // Populated when loaded through watch history.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
