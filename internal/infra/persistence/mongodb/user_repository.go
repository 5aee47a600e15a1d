package mongodb

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	store
}

// NewUserRepository returns a UserRepository over the users collection.
func NewUserRepository(db *mongo.Database, timeout time.Duration) repository.UserRepository {
	return &userRepository{store{db: db, timeout: timeout}}
}

func (repo *userRepository) users() *mongo.Collection {
	return repo.db.Collection(usersCollection)
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()}, "failed to find user by id")
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"username": username}, "failed to find user by username")
}

func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	var or bson.A
	if username != "" {
		or = append(or, bson.M{"username": username})
	}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if len(or) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"$or": or}, "failed to find user by username or email")
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, op string) (*entity.User, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	var doc userDoc
	err := repo.users().FindOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(ctx, err, op)
	}

	return doc.toDomain(), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if _, err := repo.users().InsertOne(ctx, fromUserDomain(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}

		return storeError(ctx, err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) UpdateAccount(ctx context.Context, id uuid.UUID, fullname, email string) error {
	err := repo.set(ctx, id, bson.M{"fullname": fullname, "email": email}, "failed to update account")
	if mongo.IsDuplicateKeyError(err) {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already in use")
	}

	return err
}

func (repo *userRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar *entity.Media) error {
	return repo.set(ctx, id, bson.M{"avatar": toMediaDoc(avatar)}, "failed to update avatar")
}

func (repo *userRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, cover *entity.Media) error {
	return repo.set(ctx, id, bson.M{"coverImage": toMediaDoc(cover)}, "failed to update cover image")
}

func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return repo.set(ctx, id, bson.M{"password": hash}, "failed to update password")
}

func (repo *userRepository) SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash string) error {
	return repo.set(ctx, id, bson.M{"refreshTokenHash": hash}, "failed to store refresh token")
}

// RotateRefreshTokenHash is a single conditional update, so two concurrent
// rotations of the same token cannot both match.
func (repo *userRepository) RotateRefreshTokenHash(ctx context.Context, id uuid.UUID, expected, next string) (bool, error) {
	if expected == "" {
		return false, nil
	}

	ctx, cancel := repo.bound(ctx)
	defer cancel()

	result, err := repo.users().UpdateOne(ctx,
		bson.M{"_id": id.String(), "refreshTokenHash": expected},
		bson.M{"$set": bson.M{"refreshTokenHash": next, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return false, storeError(ctx, err, "failed to rotate refresh token")
	}

	return result.MatchedCount == 1, nil
}

func (repo *userRepository) AppendWatchHistory(ctx context.Context, id, videoID uuid.UUID) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	result, err := repo.users().UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{
			"$push": bson.M{"watchHistory": videoID.String()},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return storeError(ctx, err, "failed to append watch history")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

type watchedVideo struct {
	Video videoDoc `bson:"video"`
	Owner *userDoc `bson:"owner"`
}

// FindWatchHistory joins watched ids with their videos and owners in watch order.
func (repo *userRepository) FindWatchHistory(ctx context.Context, id uuid.UUID) ([]*entity.Video, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id.String()}}},
		{{Key: "$project", Value: bson.M{"watchHistory": 1}}},
		{{Key: "$unwind", Value: bson.M{"path": "$watchHistory", "includeArrayIndex": "position"}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         videosCollection,
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "video",
		}}},
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "video.owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"username": 1, "fullname": 1, "avatar": 1}},
			},
		}}},
		{{Key: "$sort", Value: bson.M{"position": 1}}},
		{{Key: "$project", Value: bson.M{"video": 1, "owner": bson.M{"$first": "$owner"}}}},
	}

	cursor, err := repo.users().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeError(ctx, err, "failed to load watch history")
	}
	defer cursor.Close(ctx)

	var rows []watchedVideo
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, storeError(ctx, err, "failed to decode watch history")
	}

	videos := make([]*entity.Video, 0, len(rows))
	for i := range rows {
		video := rows[i].Video.toDomain()
		if rows[i].Owner != nil {
			video.Owner = rows[i].Owner.toDomain().Summary()
		}
		videos = append(videos, video)
	}

	return videos, nil
}

func (repo *userRepository) set(ctx context.Context, id uuid.UUID, fields bson.M, op string) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	fields["updatedAt"] = time.Now().UTC()
	result, err := repo.users().UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}

		return storeError(ctx, err, op)
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
