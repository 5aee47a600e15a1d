package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var (
	errChannelNotFound = domainerrors.ErrNotFound.WithMessage("Channel does not exist")
	errSelfSubscribe   = domainerrors.ErrBadRequest.WithMessage("You cannot subscribe to your own channel")
)

// channelService implements the ChannelUsecase interface.
type channelService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	qrService        service.QRCodeService
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// ChannelServiceParams holds dependencies for ChannelService, injected by Fx.
type ChannelServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	SubscriptionRepo repository.SubscriptionRepository
	QRService        service.QRCodeService
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewChannelService creates a new channel service
func NewChannelService(params ChannelServiceParams) usecase.ChannelUsecase {
	return &channelService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		subscriptionRepo: params.SubscriptionRepo,
		qrService:        params.QRService,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *channelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetChannelProfile returns the public channel with its subscription counts
func (s *channelService) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error) {
	username = entity.NormalizeHandle(username)
	if username == "" {
		return nil, errors.Wrap(domainerrors.ErrBadRequest.WithMessage("username is missing"), "get channel failed")
	}

	channel, err := s.findChannelByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.subscriptionRepo.CountSubscribers(ctx, channel.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}

	subscribedTo, err := s.subscriptionRepo.CountSubscribedTo(ctx, channel.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscriptions")
	}

	isSubscribed := false
	if viewerID != uuid.Nil {
		isSubscribed, err = s.subscriptionRepo.Exists(ctx, viewerID, channel.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check subscription")
		}
	}

	return &entity.ChannelProfile{
		ID:                        channel.ID,
		Username:                  channel.Username,
		Fullname:                  channel.Fullname,
		Email:                     channel.Email,
		Avatar:                    channel.Avatar.URLOrEmpty(),
		CoverImage:                channel.CoverImage.URLOrEmpty(),
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
	}, nil
}

// ToggleSubscription flips the subscription of subscriberID to channelID
func (s *channelService) ToggleSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	if subscriberID == channelID {
		return false, errors.Wrap(errSelfSubscribe, "toggle subscription failed")
	}

	var subscribed bool
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := s.ensureChannel(ctx, repoFactory.UserRepo(), channelID); err != nil {
			return err
		}

		subRepo := repoFactory.SubscriptionRepo()
		exists, err := subRepo.Exists(ctx, subscriberID, channelID)
		if err != nil {
			return errors.Wrap(err, "failed to check subscription")
		}

		if exists {
			if err := subRepo.Delete(ctx, subscriberID, channelID); err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
				return errors.Wrap(err, "failed to unsubscribe")
			}
			subscribed = false

			return nil
		}

		if err := subRepo.Create(ctx, &entity.Subscription{SubscriberID: subscriberID, ChannelID: channelID}); err != nil {
			return errors.Wrap(err, "failed to subscribe")
		}
		subscribed = true

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Failed to toggle subscription", slog.Any("user_id", subscriberID), slog.Any("channel_id", channelID), slog.Any("error", err))

		return false, errors.Wrap(err, "toggle subscription failed")
	}

	eventType := service.EventChannelUnsubscribed
	if subscribed {
		eventType = service.EventChannelSubscribed
	}
	publishAccountEvent(ctx, s.publisher, s.log(ctx), eventType, subscriberID, map[string]string{"channel_id": channelID.String()})

	return subscribed, nil
}

// SubscribeByQRCode subscribes to the scanned channel. An existing subscription is kept.
func (s *channelService) SubscribeByQRCode(ctx context.Context, subscriberID uuid.UUID, qrData string) (uuid.UUID, error) {
	channelID, err := s.qrService.ParseChannelQR(qrData)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrBadRequest.WithMessage("Invalid channel QR code"), err.Error())
	}
	if subscriberID == channelID {
		return uuid.Nil, errors.Wrap(errSelfSubscribe, "subscribe by QR code failed")
	}

	created := false
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := s.ensureChannel(ctx, repoFactory.UserRepo(), channelID); err != nil {
			return err
		}

		subRepo := repoFactory.SubscriptionRepo()
		exists, err := subRepo.Exists(ctx, subscriberID, channelID)
		if err != nil {
			return errors.Wrap(err, "failed to check subscription")
		}
		if exists {
			return nil
		}

		if err := subRepo.Create(ctx, &entity.Subscription{SubscriberID: subscriberID, ChannelID: channelID}); err != nil {
			if errors.Is(err, domainerrors.ErrConflict) {
				return nil
			}

			return errors.Wrap(err, "failed to subscribe")
		}
		created = true

		return nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "subscribe by QR code failed")
	}

	if created {
		publishAccountEvent(ctx, s.publisher, s.log(ctx), service.EventChannelSubscribed, subscriberID, map[string]string{
			"channel_id": channelID.String(),
			"source":     "qrcode",
		})
	}

	return channelID, nil
}

// GetChannelQRCode renders the share QR code of the channel
func (s *channelService) GetChannelQRCode(ctx context.Context, username string) ([]byte, error) {
	channel, err := s.findChannelByUsername(ctx, entity.NormalizeHandle(username))
	if err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateChannelQR(channel.ID, channel.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate channel QR code")
	}

	return png, nil
}

func (s *channelService) findChannelByUsername(ctx context.Context, username string) (*entity.User, error) {
	channel, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(errChannelNotFound, "get channel failed")
		}

		return nil, errors.Wrap(err, "failed to find channel")
	}

	return channel, nil
}

func (s *channelService) ensureChannel(ctx context.Context, userRepo repository.UserRepository, channelID uuid.UUID) error {
	if _, err := userRepo.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(errChannelNotFound, "channel lookup failed")
		}

		return errors.Wrap(err, "failed to find channel")
	}

	return nil
}
