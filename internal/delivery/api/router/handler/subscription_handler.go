package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/api/response"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	ChannelUC usecase.ChannelUsecase
	Logger    *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	channelUC usecase.ChannelUsecase
	logger    *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		channelUC: params.ChannelUC,
		logger:    params.Logger,
	}
}

// ProcessQRRequest represents the request body for subscribing through a scanned QR code
type ProcessQRRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// ToggleSubscription subscribes to or unsubscribes from channelId
func (h *SubscriptionHandler) ToggleSubscription(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	channelID, err := uuidParam(c, "channelId")
	if err != nil {
		return err
	}

	subscribed, err := h.channelUC.ToggleSubscription(c.Request().Context(), userID, channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &SubscriptionResponse{ChannelID: channelID, Subscribed: subscribed})
}

// ProcessQRSubscription subscribes to the channel encoded in a scanned QR payload
func (h *SubscriptionHandler) ProcessQRSubscription(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ProcessQRRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrBadRequest.WithMessage("Invalid QR subscription input"), err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	channelID, err := h.channelUC.SubscribeByQRCode(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &SubscriptionResponse{ChannelID: channelID, Subscribed: true})
}
