package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockService "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type channelMocks struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	subRepo   *mockRepo.MockSubscriptionRepository
	qr        *mockService.MockQRCodeService
	publisher *mockService.MockEventPublisher
}

func newChannelServiceForTest(t *testing.T) (usecase.ChannelUsecase, *channelMocks) {
	m := &channelMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		subRepo:   mockRepo.NewMockSubscriptionRepository(t),
		qr:        mockService.NewMockQRCodeService(t),
		publisher: mockService.NewMockEventPublisher(t),
	}

	srv := NewChannelService(ChannelServiceParams{
		TxManager:        m.txManager,
		UserRepo:         m.userRepo,
		SubscriptionRepo: m.subRepo,
		QRService:        m.qr,
		Publisher:        m.publisher,
		Logger:           newDiscardLogger(),
	})

	return srv, m
}

func (m *channelMocks) inTx(t *testing.T) {
	expectTx(t, m.txManager, m.factory)
	m.factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()
	m.factory.EXPECT().SubscriptionRepo().Return(m.subRepo).Maybe()
}

func TestChannelService_GetChannelProfile(t *testing.T) {
	srv, m := newChannelServiceForTest(t)
	ctx := context.Background()
	viewerID := uuid.New()
	channel := &entity.User{
		ID:       uuid.New(),
		Username: "bob",
		Fullname: "Bob",
		Avatar:   &entity.Media{URL: "http://cdn/avatars/bob.png"},
	}

	m.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(channel, nil)
	m.subRepo.EXPECT().CountSubscribers(ctx, channel.ID).Return(int64(3), nil)
	m.subRepo.EXPECT().CountSubscribedTo(ctx, channel.ID).Return(int64(1), nil)
	m.subRepo.EXPECT().Exists(ctx, viewerID, channel.ID).Return(true, nil)

	profile, err := srv.GetChannelProfile(ctx, " Bob", viewerID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), profile.SubscribersCount)
	assert.Equal(t, int64(1), profile.ChannelsSubscribedToCount)
	assert.True(t, profile.IsSubscribed)
	assert.Equal(t, "http://cdn/avatars/bob.png", profile.Avatar)
	assert.Empty(t, profile.CoverImage)
}

func TestChannelService_GetChannelProfile_NotFound(t *testing.T) {
	srv, m := newChannelServiceForTest(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := srv.GetChannelProfile(ctx, "ghost", uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestChannelService_ToggleSubscription(t *testing.T) {
	ctx := context.Background()
	subscriberID, channelID := uuid.New(), uuid.New()

	t.Run("subscribes", func(t *testing.T) {
		srv, m := newChannelServiceForTest(t)
		m.inTx(t)
		m.userRepo.EXPECT().FindByID(ctx, channelID).Return(&entity.User{ID: channelID}, nil)
		m.subRepo.EXPECT().Exists(ctx, subscriberID, channelID).Return(false, nil)
		m.subRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.Subscription) bool {
			return s.SubscriberID == subscriberID && s.ChannelID == channelID
		})).Return(nil)
		m.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
			return e.Type == service.EventChannelSubscribed && e.Attributes["channel_id"] == channelID.String()
		})).Return(nil)

		subscribed, err := srv.ToggleSubscription(ctx, subscriberID, channelID)

		require.NoError(t, err)
		assert.True(t, subscribed)
	})

	t.Run("unsubscribes", func(t *testing.T) {
		srv, m := newChannelServiceForTest(t)
		m.inTx(t)
		m.userRepo.EXPECT().FindByID(ctx, channelID).Return(&entity.User{ID: channelID}, nil)
		m.subRepo.EXPECT().Exists(ctx, subscriberID, channelID).Return(true, nil)
		m.subRepo.EXPECT().Delete(ctx, subscriberID, channelID).Return(nil)
		m.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil)

		subscribed, err := srv.ToggleSubscription(ctx, subscriberID, channelID)

		require.NoError(t, err)
		assert.False(t, subscribed)
	})

	t.Run("unknown channel", func(t *testing.T) {
		srv, m := newChannelServiceForTest(t)
		m.inTx(t)
		m.userRepo.EXPECT().FindByID(ctx, channelID).Return(nil, repository.ErrUserNotFound)

		_, err := srv.ToggleSubscription(ctx, subscriberID, channelID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("self", func(t *testing.T) {
		srv, _ := newChannelServiceForTest(t)

		_, err := srv.ToggleSubscription(ctx, subscriberID, subscriberID)

		assert.True(t, errors.Is(err, domainerrors.ErrBadRequest))
	})
}

func TestChannelService_SubscribeByQRCode(t *testing.T) {
	ctx := context.Background()
	subscriberID, channelID := uuid.New(), uuid.New()

	t.Run("subscribes once", func(t *testing.T) {
		srv, m := newChannelServiceForTest(t)
		m.qr.EXPECT().ParseChannelQR("payload").Return(channelID, nil)
		m.inTx(t)
		m.userRepo.EXPECT().FindByID(ctx, channelID).Return(&entity.User{ID: channelID}, nil)
		m.subRepo.EXPECT().Exists(ctx, subscriberID, channelID).Return(false, nil)
		m.subRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		m.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
			return e.Attributes["source"] == "qrcode"
		})).Return(nil)

		got, err := srv.SubscribeByQRCode(ctx, subscriberID, "payload")

		require.NoError(t, err)
		assert.Equal(t, channelID, got)
	})

	t.Run("already subscribed is kept", func(t *testing.T) {
		srv, m := newChannelServiceForTest(t)
		m.qr.EXPECT().ParseChannelQR("payload").Return(channelID, nil)
		m.inTx(t)
		m.userRepo.EXPECT().FindByID(ctx, channelID).Return(&entity.User{ID: channelID}, nil)
		m.subRepo.EXPECT().Exists(ctx, subscriberID, channelID).Return(true, nil)

		got, err := srv.SubscribeByQRCode(ctx, subscriberID, "payload")

		require.NoError(t, err)
		assert.Equal(t, channelID, got)
	})

	t.Run("unreadable payload", func(t *testing.T) {
		srv, m := newChannelServiceForTest(t)
		m.qr.EXPECT().ParseChannelQR("junk").Return(uuid.Nil, errors.New("invalid QR code type: video"))

		_, err := srv.SubscribeByQRCode(ctx, subscriberID, "junk")

		assert.True(t, errors.Is(err, domainerrors.ErrBadRequest))
	})
}

func TestChannelService_GetChannelQRCode(t *testing.T) {
	srv, m := newChannelServiceForTest(t)
	ctx := context.Background()
	channel := &entity.User{ID: uuid.New(), Username: "bob"}

	m.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(channel, nil)
	m.qr.EXPECT().GenerateChannelQR(channel.ID, "bob").Return([]byte("png"), nil)

	png, err := srv.GetChannelQRCode(ctx, "BOB")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
