package qrcode

import (
	"encoding/json"
	"strings"

	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	qrTypeChannel = "channel"
	defaultSize   = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code payload
type QRCodeData struct {
	ChannelID string `json:"channel_id"`
	Username  string `json:"username"`
	URL       string `json:"url,omitempty"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance. baseURL, when set,
// is joined with the username to give scanners a browsable link.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateChannelQR generates a PNG QR code pointing at a channel
func (s *qrcodeService) GenerateChannelQR(channelID uuid.UUID, username string) ([]byte, error) {
	data := QRCodeData{
		ChannelID: channelID.String(),
		Username:  username,
		Type:      qrTypeChannel,
	}
	if s.baseURL != "" {
		data.URL = strings.TrimSuffix(s.baseURL, "/") + "/" + username
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseChannelQR parses QR code data and returns the channel ID
func (s *qrcodeService) ParseChannelQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != qrTypeChannel {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	channelID, err := uuid.Parse(data.ChannelID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse channel ID")
	}

	return channelID, nil
}
