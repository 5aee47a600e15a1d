package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/constants"
	"vidtube/internal/domain/service"

	"github.com/google/uuid"
)

// publishAccountEvent is best-effort: failures are logged and never returned.
func publishAccountEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType string,
	userID uuid.UUID,
	attributes map[string]string,
) {
	if publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID.String(),
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}

	if err := publisher.PublishAccountEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish account event",
			slog.String(constants.AttrEventType, eventType),
			slog.String(constants.AttrUserID, userID.String()),
			slog.Any("error", err),
		)
	}
}
