package postgres

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB, timeout time.Duration) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db, timeout: timeout}
}

// Create persists a new subscription relationship.
func (repo *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	subM := &model.SubscriptionModel{
		ID:           sub.ID,
		SubscriberID: sub.SubscriberID,
		ChannelID:    sub.ChannelID,
		CreatedAt:    sub.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("already subscribed to channel")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return storeError(ctx, err, "failed to create subscription")
	}
	sub.CreatedAt = subM.CreatedAt

	return nil
}

// Delete removes the subscription of subscriberID to channelID.
func (repo *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.SubscriptionModel{})
	if result.Error != nil {
		return storeError(ctx, result.Error, "failed to delete subscription")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// Exists reports whether subscriberID follows channelID.
func (repo *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error; err != nil {
		return false, storeError(ctx, err, "failed to check subscription")
	}

	return count > 0, nil
}

// CountSubscribers counts the followers of a channel.
func (repo *subscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	return repo.count(ctx, "channel_id = ?", channelID)
}

// CountSubscribedTo counts the channels a user follows.
func (repo *subscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID uuid.UUID) (int64, error) {
	return repo.count(ctx, "subscriber_id = ?", subscriberID)
}

func (repo *subscriptionRepository) count(ctx context.Context, where string, id uuid.UUID) (int64, error) {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SubscriptionModel{}).Where(where, id).Count(&count).Error; err != nil {
		return 0, storeError(ctx, err, "failed to count subscriptions")
	}

	return count, nil
}
