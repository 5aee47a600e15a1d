package service

import (
	"context"
	"time"
)

// Account event types.
const (
	EventUserRegistered      = "user.registered"
	EventUserLoggedIn        = "user.logged_in"
	EventUserLoggedOut       = "user.logged_out"
	EventTokenRefreshed      = "user.token_refreshed"
	EventPasswordChanged     = "user.password_changed"
	EventAccountUpdated      = "user.account_updated"
	EventChannelSubscribed   = "channel.subscribed"
	EventChannelUnsubscribed = "channel.unsubscribed"
)

// AccountEvent describes a change in a user's account or session state.
type AccountEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    string            `json:"event_id"`
	Type       string            `json:"type"`
	UserID     string            `json:"user_id"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for downstream consumers
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
