package impl

import (
	"context"
	"log/slog"
	"strings"

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

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo  repository.UserRepository
	videoRepo repository.VideoRepository
	hasher    service.PasswordHasher
	stager    service.MediaStager
	storage   service.MediaStorage
	publisher service.EventPublisher
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	VideoRepo repository.VideoRepository
	Hasher    service.PasswordHasher
	Stager    service.MediaStager
	Storage   service.MediaStorage
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:  params.UserRepo,
		videoRepo: params.VideoRepo,
		hasher:    params.Hasher,
		stager:    params.Stager,
		storage:   params.Storage,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account. Uploaded media is removed again if a later
// step fails, and both staged files are always discarded.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (user *entity.User, err error) {
	defer srv.discard(ctx, input.Avatar, input.CoverImage)

	fullname := strings.TrimSpace(input.Fullname)
	email := entity.NormalizeHandle(input.Email)
	username := entity.NormalizeHandle(input.Username)
	if fullname == "" || email == "" || username == "" || strings.TrimSpace(input.Password) == "" {
		return nil, errors.Wrap(domainerrors.ErrBadRequest.WithMessage("All fields are required"), "registration failed")
	}
	srv.log(ctx).Info("Starting registration", slog.String("username", username), slog.String("email", email))

	_, err = srv.userRepo.FindByUsernameOrEmail(ctx, username, email)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	if input.Avatar == nil {
		return nil, errors.Wrap(domainerrors.ErrMediaRequired.WithMessage("Avatar file is required"), "registration failed")
	}

	if err = srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "registration failed")
	}

	var uploaded []*entity.Media
	defer func() {
		if err != nil {
			srv.deleteMedia(ctx, uploaded...)
		}
	}()

	avatar, err := srv.storage.Upload(ctx, service.MediaFolderAvatars, input.Avatar)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload avatar")
	}
	uploaded = append(uploaded, avatar)

	var cover *entity.Media
	if input.CoverImage != nil {
		cover, err = srv.storage.Upload(ctx, service.MediaFolderCovers, input.CoverImage)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload cover image")
		}
		uploaded = append(uploaded, cover)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user = &entity.User{
		Username:     username,
		Email:        email,
		Fullname:     fullname,
		Avatar:       avatar,
		CoverImage:   cover,
		PasswordHash: hash,
	}
	if err = srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), service.EventUserRegistered, user.ID, nil)
	srv.log(ctx).Info("Registration completed", slog.Any("user_id", user.ID))

	return user, nil
}

// GetCurrentUser returns the account of userID.
func (srv *accountService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.findUser(ctx, userID)
}

// UpdateAccount replaces the display name and email.
func (srv *accountService) UpdateAccount(ctx context.Context, userID uuid.UUID, input usecase.UpdateAccountInput) (*entity.User, error) {
	fullname := strings.TrimSpace(input.Fullname)
	email := entity.NormalizeHandle(input.Email)
	if fullname == "" || email == "" {
		return nil, errors.Wrap(domainerrors.ErrBadRequest.WithMessage("All fields are required"), "update account failed")
	}

	if err := srv.userRepo.UpdateAccount(ctx, userID, fullname, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "update account failed")
		}

		return nil, errors.Wrap(err, "failed to update account")
	}

	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), service.EventAccountUpdated, userID, map[string]string{"field": "account"})

	return srv.findUser(ctx, userID)
}

// UpdateAvatar uploads the new avatar and then deletes the previous object.
func (srv *accountService) UpdateAvatar(ctx context.Context, userID uuid.UUID, file *service.StagedFile) (*entity.User, error) {
	return srv.replaceMedia(ctx, userID, file, service.MediaFolderAvatars, mediaSlot{
		name:    "avatar",
		missing: "Avatar file is missing",
		current: func(u *entity.User) *entity.Media { return u.Avatar },
		persist: srv.userRepo.UpdateAvatar,
	})
}

// UpdateCoverImage uploads the new cover image and then deletes the previous object.
func (srv *accountService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, file *service.StagedFile) (*entity.User, error) {
	return srv.replaceMedia(ctx, userID, file, service.MediaFolderCovers, mediaSlot{
		name:    "cover image",
		missing: "Cover image file is missing",
		current: func(u *entity.User) *entity.Media { return u.CoverImage },
		persist: srv.userRepo.UpdateCoverImage,
	})
}

// GetWatchHistory returns the watched videos in watch order.
func (srv *accountService) GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error) {
	videos, err := srv.userRepo.FindWatchHistory(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to get watch history")
		}

		return nil, errors.Wrap(err, "failed to get watch history")
	}

	return videos, nil
}

// AddToWatchHistory records a view. Watching a video again appends it again.
func (srv *accountService) AddToWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound.WithMessage("Video not found"), "failed to add to watch history")
		}

		return errors.Wrap(err, "failed to find video")
	}

	if err := srv.userRepo.AppendWatchHistory(ctx, userID, videoID); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(domainerrors.ErrUserNotFound, "failed to add to watch history")
		case errors.Is(err, repository.ErrVideoNotFound):
			return errors.Wrap(domainerrors.ErrNotFound.WithMessage("Video not found"), "failed to add to watch history")
		}

		return errors.Wrap(err, "failed to add to watch history")
	}

	return nil
}

type mediaSlot struct {
	name    string
	missing string
	current func(*entity.User) *entity.Media
	persist func(ctx context.Context, id uuid.UUID, media *entity.Media) error
}

func (srv *accountService) replaceMedia(
	ctx context.Context,
	userID uuid.UUID,
	file *service.StagedFile,
	folder string,
	slot mediaSlot,
) (*entity.User, error) {
	defer srv.discard(ctx, file)

	if file == nil {
		return nil, errors.Wrapf(domainerrors.ErrMediaRequired.WithMessage(slot.missing), "update %s failed", slot.name)
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	previous := slot.current(user)

	media, err := srv.storage.Upload(ctx, folder, file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upload %s", slot.name)
	}

	if err := slot.persist(ctx, userID, media); err != nil {
		srv.deleteMedia(ctx, media)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "update %s failed", slot.name)
		}

		return nil, errors.Wrapf(err, "failed to update %s", slot.name)
	}

	if previous != nil {
		srv.deleteMedia(ctx, previous)
	}

	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), service.EventAccountUpdated, userID, map[string]string{"field": folder})

	return srv.findUser(ctx, userID)
}

func (srv *accountService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to find user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// deleteMedia removes stored objects, logging failures.
func (srv *accountService) deleteMedia(ctx context.Context, media ...*entity.Media) {
	for _, m := range media {
		if m == nil || m.Key == "" {
			continue
		}
		if err := srv.storage.Delete(context.WithoutCancel(ctx), m.Key); err != nil {
			srv.log(ctx).Warn("Failed to delete media", slog.String("key", m.Key), slog.Any("error", err))
		}
	}
}

// discard removes each staged file by its own path.
func (srv *accountService) discard(ctx context.Context, files ...*service.StagedFile) {
	for _, file := range files {
		if file == nil {
			continue
		}
		if err := srv.stager.Discard(file); err != nil {
			srv.log(ctx).Warn("Failed to discard staged file", slog.String("field", file.Field), slog.String("path", file.Path), slog.Any("error", err))
		}
	}
}
