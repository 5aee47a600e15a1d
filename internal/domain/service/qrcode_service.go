package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for channel share QR codes
type QRCodeService interface {
	// GenerateChannelQR renders a PNG that links to the channel.
	GenerateChannelQR(channelID uuid.UUID, username string) ([]byte, error)

	// ParseChannelQR parses scanned QR payload and returns the channel ID
	ParseChannelQR(qrData string) (uuid.UUID, error)
}
