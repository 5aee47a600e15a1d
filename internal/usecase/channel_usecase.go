package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ChannelUsecase defines the interface for channel pages and subscription use cases
type ChannelUsecase interface {
	// GetChannelProfile returns the channel of username as seen by viewerID
	GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error)

	// ToggleSubscription subscribes or unsubscribes and reports the new state
	ToggleSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// SubscribeByQRCode subscribes to the channel encoded in a scanned QR payload
	SubscribeByQRCode(ctx context.Context, subscriberID uuid.UUID, qrData string) (uuid.UUID, error)

	// GetChannelQRCode renders the share QR code of a channel as PNG
	GetChannelQRCode(ctx context.Context, username string) ([]byte, error)
}
