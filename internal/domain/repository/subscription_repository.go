package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when no subscription links the two users.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the interface for channel subscription data operations
type SubscriptionRepository interface {
	// Create persists a subscription; a duplicate pair yields domainerrors.ErrConflict.
	Create(ctx context.Context, sub *entity.Subscription) error

	// Delete removes the subscription of subscriberID to channelID.
	Delete(ctx context.Context, subscriberID, channelID uuid.UUID) error

	// Exists reports whether subscriberID follows channelID.
	Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// CountSubscribers counts the followers of a channel.
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)

	// CountSubscribedTo counts the channels a user follows.
	CountSubscribedTo(ctx context.Context, subscriberID uuid.UUID) (int64, error)
}
