package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription records that one user follows another user's channel.
type Subscription struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the subscription.
	SubscriberID uuid.UUID // The user who subscribed.
	ChannelID    uuid.UUID // The user whose channel is followed.
	CreatedAt    time.Time
}

// ChannelProfile is a user's public channel page enriched with subscription counts.
type ChannelProfile struct {
	ID                        uuid.UUID
	Username                  string
	Fullname                  string
	Email                     string
	Avatar                    string
	CoverImage                string
	SubscribersCount          int64
	ChannelsSubscribedToCount int64
	IsSubscribed              bool // Whether the viewer follows this channel.
}
