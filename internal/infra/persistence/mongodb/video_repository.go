package mongodb

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type videoRepository struct {
	store
}

// NewVideoRepository returns a VideoRepository over the videos collection.
func NewVideoRepository(db *mongo.Database, timeout time.Duration) repository.VideoRepository {
	return &videoRepository{store{db: db, timeout: timeout}}
}

func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	var doc videoDoc
	if err := repo.db.Collection(videosCollection).FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, storeError(ctx, err, "failed to find video by id")
	}

	return doc.toDomain(), nil
}
