// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewUserRepository is the constructor for userRepository.
// Every call is bounded by timeout.
func NewUserRepository(db *gorm.DB, timeout time.Duration) repository.UserRepository {
	return &userRepository{db: db, timeout: timeout}
}

// primary pins credential reads to the write node so a just-rotated
// refresh token hash is never read from a lagging replica.
func (repo *userRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	var userM model.UserModel
	if err := repo.primary(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(ctx, err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a user by normalized username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(ctx, err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// FindByUsernameOrEmail matches on whichever handles are non-empty.
func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	if username == "" && email == "" {
		return nil, repository.ErrUserNotFound
	}

	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	query := repo.primary(ctx)
	switch {
	case username != "" && email != "":
		query = query.Where("username = ? OR email = ?", username, email)
	case username != "":
		query = query.Where("username = ?", username)
	default:
		query = query.Where("email = ?", email)
	}

	var userM model.UserModel
	if err := query.Order("created_at").First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(ctx, err, "failed to find user by username or email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return storeError(ctx, err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateAccount replaces the fullname and email.
func (repo *userRepository) UpdateAccount(ctx context.Context, id uuid.UUID, fullname, email string) error {
	err := repo.update(ctx, id, map[string]any{"fullname": fullname, "email": email}, "failed to update account")
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already in use")
	}

	return err
}

// UpdateAvatar replaces the avatar reference.
func (repo *userRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar *entity.Media) error {
	return repo.update(ctx, id, map[string]any{
		"avatar_key": mediaKey(avatar),
		"avatar_url": avatar.URLOrEmpty(),
	}, "failed to update avatar")
}

// UpdateCoverImage replaces the cover image reference.
func (repo *userRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, cover *entity.Media) error {
	return repo.update(ctx, id, map[string]any{
		"cover_image_key": mediaKey(cover),
		"cover_image_url": cover.URLOrEmpty(),
	}, "failed to update cover image")
}

// UpdatePasswordHash replaces the stored password hash.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return repo.update(ctx, id, map[string]any{"password_hash": hash}, "failed to update password")
}

// SetRefreshTokenHash overwrites the stored refresh token hash.
func (repo *userRepository) SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash string) error {
	return repo.update(ctx, id, map[string]any{"refresh_token_hash": hash}, "failed to store refresh token")
}

// RotateRefreshTokenHash swaps the hash only while it still equals expected.
func (repo *userRepository) RotateRefreshTokenHash(ctx context.Context, id uuid.UUID, expected, next string) (bool, error) {
	if expected == "" {
		return false, nil
	}

	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND refresh_token_hash = ?", id, expected).
		Updates(map[string]any{"refresh_token_hash": next, "updated_at": time.Now()})
	if result.Error != nil {
		return false, storeError(ctx, result.Error, "failed to rotate refresh token")
	}

	return result.RowsAffected == 1, nil
}

// AppendWatchHistory records that the user watched videoID.
func (repo *userRepository) AppendWatchHistory(ctx context.Context, id, videoID uuid.UUID) error {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	entry := &model.WatchHistoryModel{UserID: id, VideoID: videoID, WatchedAt: time.Now()}
	if err := repo.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return storeError(ctx, err, "failed to append watch history")
	}

	return nil
}

// FindWatchHistory returns watched videos in watch order with their owners.
func (repo *userRepository) FindWatchHistory(ctx context.Context, id uuid.UUID) ([]*entity.Video, error) {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	var videoIDs []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.WatchHistoryModel{}).
		Where("user_id = ?", id).
		Order("id").
		Pluck("video_id", &videoIDs).Error; err != nil {
		return nil, storeError(ctx, err, "failed to load watch history")
	}
	if len(videoIDs) == 0 {
		return []*entity.Video{}, nil
	}

	var videoMs []model.VideoModel
	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("id IN ?", videoIDs).
		Find(&videoMs).Error; err != nil {
		return nil, storeError(ctx, err, "failed to load watched videos")
	}

	byID := make(map[uuid.UUID]*entity.Video, len(videoMs))
	for i := range videoMs {
		byID[videoMs[i].ID] = toVideoDomain(&videoMs[i])
	}

	videos := make([]*entity.Video, 0, len(videoIDs))
	for _, videoID := range videoIDs {
		if v, ok := byID[videoID]; ok {
			videos = append(videos, v)
		}
	}

	return videos, nil
}

func (repo *userRepository) update(ctx context.Context, id uuid.UUID, fields map[string]any, op string) error {
	ctx, cancel := persistence.Bound(ctx, repo.timeout)
	defer cancel()

	fields["updated_at"] = time.Now()
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return result.Error
		}

		return storeError(ctx, result.Error, op)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		Username:         data.Username,
		Email:            data.Email,
		Fullname:         data.Fullname,
		Avatar:           toMedia(data.AvatarKey, data.AvatarURL),
		CoverImage:       toMedia(data.CoverImageKey, data.CoverImageURL),
		PasswordHash:     data.PasswordHash,
		RefreshTokenHash: data.RefreshTokenHash,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:               data.ID,
		Username:         data.Username,
		Email:            data.Email,
		Fullname:         data.Fullname,
		AvatarKey:        mediaKey(data.Avatar),
		AvatarURL:        data.Avatar.URLOrEmpty(),
		CoverImageKey:    mediaKey(data.CoverImage),
		CoverImageURL:    data.CoverImage.URLOrEmpty(),
		PasswordHash:     data.PasswordHash,
		RefreshTokenHash: data.RefreshTokenHash,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toMedia(key, url string) *entity.Media {
	if key == "" && url == "" {
		return nil
	}

	return &entity.Media{Key: key, URL: url}
}

func mediaKey(m *entity.Media) string {
	if m == nil {
		return ""
	}

	return m.Key
}
