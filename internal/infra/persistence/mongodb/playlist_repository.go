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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type playlistRepository struct {
	store
}

// NewPlaylistRepository returns a PlaylistRepository over the playlists collection.
func NewPlaylistRepository(db *mongo.Database, timeout time.Duration) repository.PlaylistRepository {
	return &playlistRepository{store{db: db, timeout: timeout}}
}

func (repo *playlistRepository) playlists() *mongo.Collection {
	return repo.db.Collection(playlistsCollection)
}

func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	if playlist.ID == uuid.Nil {
		playlist.ID = uuid.New()
	}
	now := time.Now().UTC()
	playlist.CreatedAt, playlist.UpdatedAt = now, now

	_, err := repo.playlists().InsertOne(ctx, &playlistDoc{
		ID:          playlist.ID.String(),
		Name:        playlist.Name,
		Description: playlist.Description,
		Owner:       playlist.OwnerID.String(),
		Videos:      idStrings(playlist.VideoIDs),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return storeError(ctx, err, "failed to create playlist")
	}

	return nil
}

func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	var doc playlistDoc
	if err := repo.playlists().FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, storeError(ctx, err, "failed to find playlist")
	}

	return doc.toDomain(), nil
}

func (repo *playlistRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	cursor, err := repo.playlists().Find(ctx,
		bson.M{"owner": ownerID.String()},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, storeError(ctx, err, "failed to list playlists")
	}
	defer cursor.Close(ctx)

	var docs []playlistDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeError(ctx, err, "failed to decode playlists")
	}

	playlists := make([]*entity.Playlist, 0, len(docs))
	for i := range docs {
		playlists = append(playlists, docs[i].toDomain())
	}

	return playlists, nil
}

func (repo *playlistRepository) Update(ctx context.Context, id uuid.UUID, name, description string) error {
	return repo.update(ctx, id, bson.M{"$set": bson.M{"name": name, "description": description}}, "failed to update playlist")
}

func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	result, err := repo.playlists().DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return storeError(ctx, err, "failed to delete playlist")
	}
	if result.DeletedCount == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// AddVideo relies on $addToSet for idempotency.
func (repo *playlistRepository) AddVideo(ctx context.Context, id, videoID uuid.UUID) error {
	return repo.update(ctx, id, bson.M{"$addToSet": bson.M{"videos": videoID.String()}}, "failed to add video to playlist")
}

func (repo *playlistRepository) RemoveVideo(ctx context.Context, id, videoID uuid.UUID) error {
	return repo.update(ctx, id, bson.M{"$pull": bson.M{"videos": videoID.String()}}, "failed to remove video from playlist")
}

func (repo *playlistRepository) update(ctx context.Context, id uuid.UUID, update bson.M, op string) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	set, _ := update["$set"].(bson.M)
	if set == nil {
		set = bson.M{}
		update["$set"] = set
	}
	set["updatedAt"] = time.Now().UTC()

	result, err := repo.playlists().UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		return storeError(ctx, err, op)
	}
	if result.MatchedCount == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}
