package mongodb

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type subscriptionRepository struct {
	store
}

// NewSubscriptionRepository returns a SubscriptionRepository over the subscriptions collection.
func NewSubscriptionRepository(db *mongo.Database, timeout time.Duration) repository.SubscriptionRepository {
	return &subscriptionRepository{store{db: db, timeout: timeout}}
}

func (repo *subscriptionRepository) subscriptions() *mongo.Collection {
	return repo.db.Collection(subscriptionsCollection)
}

func (repo *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	_, err := repo.subscriptions().InsertOne(ctx, &subscriptionDoc{
		ID:         sub.ID.String(),
		Subscriber: sub.SubscriberID.String(),
		Channel:    sub.ChannelID.String(),
		CreatedAt:  sub.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrConflict.WrapMessage("already subscribed to channel")
		}

		return storeError(ctx, err, "failed to create subscription")
	}

	return nil
}

func (repo *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	result, err := repo.subscriptions().DeleteOne(ctx, pairFilter(subscriberID, channelID))
	if err != nil {
		return storeError(ctx, err, "failed to delete subscription")
	}
	if result.DeletedCount == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

func (repo *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	count, err := repo.subscriptions().CountDocuments(ctx, pairFilter(subscriberID, channelID))
	if err != nil {
		return false, storeError(ctx, err, "failed to check subscription")
	}

	return count > 0, nil
}

func (repo *subscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	return repo.count(ctx, bson.M{"channel": channelID.String()})
}

func (repo *subscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID uuid.UUID) (int64, error) {
	return repo.count(ctx, bson.M{"subscriber": subscriberID.String()})
}

func (repo *subscriptionRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	count, err := repo.subscriptions().CountDocuments(ctx, filter)
	if err != nil {
		return 0, storeError(ctx, err, "failed to count subscriptions")
	}

	return count, nil
}

func pairFilter(subscriberID, channelID uuid.UUID) bson.M {
	return bson.M{"subscriber": subscriberID.String(), "channel": channelID.String()}
}
