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

type accountMocks struct {
	userRepo  *mockRepo.MockUserRepository
	videoRepo *mockRepo.MockVideoRepository
	hasher    *mockService.MockPasswordHasher
	stager    *mockService.MockMediaStager
	storage   *mockService.MockMediaStorage
	publisher *mockService.MockEventPublisher
}

func newAccountServiceForTest(t *testing.T) (usecase.AccountUsecase, *accountMocks) {
	m := &accountMocks{
		userRepo:  mockRepo.NewMockUserRepository(t),
		videoRepo: mockRepo.NewMockVideoRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		stager:    mockService.NewMockMediaStager(t),
		storage:   mockService.NewMockMediaStorage(t),
		publisher: mockService.NewMockEventPublisher(t),
	}

	srv := NewAccountService(AccountServiceParams{
		UserRepo:  m.userRepo,
		VideoRepo: m.videoRepo,
		Hasher:    m.hasher,
		Stager:    m.stager,
		Storage:   m.storage,
		Publisher: m.publisher,
		Logger:    newDiscardLogger(),
	})

	return srv, m
}

func stagedFiles() (*service.StagedFile, *service.StagedFile) {
	avatar := &service.StagedFile{Field: "avatar", Path: "/tmp/staging/avatar-1.png", OriginalName: "me.png"}
	cover := &service.StagedFile{Field: "coverImage", Path: "/tmp/staging/coverImage-1.jpg", OriginalName: "banner.jpg"}

	return avatar, cover
}

func registerInput(avatar, cover *service.StagedFile) usecase.RegisterInput {
	return usecase.RegisterInput{
		Fullname:   " Alice Liddell ",
		Email:      "Alice@X.com",
		Username:   "Alice",
		Password:   "secret1",
		Avatar:     avatar,
		CoverImage: cover,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	avatar, cover := stagedFiles()
	avatarMedia := &entity.Media{Key: "avatars/a.png", URL: "http://cdn/avatars/a.png"}
	coverMedia := &entity.Media{Key: "covers/c.jpg", URL: "http://cdn/covers/c.jpg"}

	m.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice@x.com").Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	m.storage.EXPECT().Upload(ctx, service.MediaFolderAvatars, avatar).Return(avatarMedia, nil)
	m.storage.EXPECT().Upload(ctx, service.MediaFolderCovers, cover).Return(coverMedia, nil)
	m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	m.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = uuid.New()

			return nil
		})
	m.stager.EXPECT().Discard(avatar).Return(nil).Once()
	m.stager.EXPECT().Discard(cover).Return(nil).Once()
	m.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil)

	user, err := srv.Register(ctx, registerInput(avatar, cover))

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.Equal(t, "Alice Liddell", user.Fullname)
	assert.Equal(t, avatarMedia, user.Avatar)
	assert.Equal(t, coverMedia, user.CoverImage)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestAccountService_Register_DuplicateChecksBeforeUpload(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	avatar, cover := stagedFiles()

	m.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice@x.com").Return(&entity.User{}, nil)
	m.stager.EXPECT().Discard(avatar).Return(nil).Once()
	m.stager.EXPECT().Discard(cover).Return(nil).Once()

	_, err := srv.Register(ctx, registerInput(avatar, cover))

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	m.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	avatar, _ := stagedFiles()
	m.stager.EXPECT().Discard(avatar).Return(nil).Once()

	input := registerInput(avatar, nil)
	input.Username = "   "

	_, err := srv.Register(context.Background(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrBadRequest))
}

func TestAccountService_Register_MissingAvatar(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	_, cover := stagedFiles()

	m.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice@x.com").Return(nil, repository.ErrUserNotFound)
	m.stager.EXPECT().Discard(cover).Return(nil).Once()

	_, err := srv.Register(ctx, registerInput(nil, cover))

	assert.True(t, errors.Is(err, domainerrors.ErrMediaRequired))
}

func TestAccountService_Register_CoverUploadFailureCleansUp(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	avatar, cover := stagedFiles()
	avatarMedia := &entity.Media{Key: "avatars/a.png"}

	m.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice@x.com").Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	m.storage.EXPECT().Upload(ctx, service.MediaFolderAvatars, avatar).Return(avatarMedia, nil)
	m.storage.EXPECT().Upload(ctx, service.MediaFolderCovers, cover).Return(nil, domainerrors.ErrMediaUploadFailed)
	m.storage.EXPECT().Delete(mock.Anything, "avatars/a.png").Return(nil).Once()
	// Each staged file is discarded by its own path.
	m.stager.EXPECT().Discard(mock.MatchedBy(func(f *service.StagedFile) bool {
		return f.Field == "avatar" && f.Path == avatar.Path
	})).Return(nil).Once()
	m.stager.EXPECT().Discard(mock.MatchedBy(func(f *service.StagedFile) bool {
		return f.Field == "coverImage" && f.Path == cover.Path
	})).Return(nil).Once()

	_, err := srv.Register(ctx, registerInput(avatar, cover))

	assert.True(t, errors.Is(err, domainerrors.ErrMediaUploadFailed))
}

func TestAccountService_Register_CreateConflictDeletesUploads(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	avatar, _ := stagedFiles()

	m.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice@x.com").Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	m.storage.EXPECT().Upload(ctx, service.MediaFolderAvatars, avatar).Return(&entity.Media{Key: "avatars/a.png"}, nil)
	m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists"))
	m.storage.EXPECT().Delete(mock.Anything, "avatars/a.png").Return(errors.New("bucket offline"))
	m.stager.EXPECT().Discard(avatar).Return(nil)

	_, err := srv.Register(ctx, registerInput(avatar, nil))

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_UpdateAccount(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		srv, m := newAccountServiceForTest(t)
		m.userRepo.EXPECT().UpdateAccount(ctx, userID, "New Name", "new@x.com").Return(nil)
		m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Fullname: "New Name", Email: "new@x.com"}, nil)
		m.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil)

		user, err := srv.UpdateAccount(ctx, userID, usecase.UpdateAccountInput{Fullname: "New Name", Email: " NEW@x.com"})

		require.NoError(t, err)
		assert.Equal(t, "new@x.com", user.Email)
	})

	t.Run("missing fields", func(t *testing.T) {
		srv, _ := newAccountServiceForTest(t)

		_, err := srv.UpdateAccount(ctx, userID, usecase.UpdateAccountInput{Fullname: "Name"})

		assert.True(t, errors.Is(err, domainerrors.ErrBadRequest))
	})

	t.Run("email clash", func(t *testing.T) {
		srv, m := newAccountServiceForTest(t)
		m.userRepo.EXPECT().UpdateAccount(ctx, userID, "Name", "taken@x.com").Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already in use"))

		_, err := srv.UpdateAccount(ctx, userID, usecase.UpdateAccountInput{Fullname: "Name", Email: "taken@x.com"})

		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})
}

func TestAccountService_UpdateAvatar_ReplacesPreviousObject(t *testing.T) {
	srv, m := newAccountServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	avatar, _ := stagedFiles()
	oldMedia := &entity.Media{Key: "avatars/old.png"}
	newMedia := &entity.Media{Key: "avatars/new.png"}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Avatar: oldMedia}, nil).Once()
	m.storage.EXPECT().Upload(ctx, service.MediaFolderAvatars, avatar).Return(newMedia, nil)
	m.userRepo.EXPECT().UpdateAvatar(ctx, userID, newMedia).Return(nil)
	m.storage.EXPECT().Delete(mock.Anything, "avatars/old.png").Return(nil)
	m.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Avatar: newMedia}, nil).Once()
	m.stager.EXPECT().Discard(avatar).Return(nil)

	user, err := srv.UpdateAvatar(ctx, userID, avatar)

	require.NoError(t, err)
	assert.Equal(t, newMedia, user.Avatar)
}

func TestAccountService_UpdateCoverImage_MissingFile(t *testing.T) {
	srv, _ := newAccountServiceForTest(t)

	_, err := srv.UpdateCoverImage(context.Background(), uuid.New(), nil)

	assert.True(t, errors.Is(err, domainerrors.ErrMediaRequired))
}

func TestAccountService_WatchHistory(t *testing.T) {
	ctx := context.Background()
	userID, videoID := uuid.New(), uuid.New()

	t.Run("append", func(t *testing.T) {
		srv, m := newAccountServiceForTest(t)
		m.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID}, nil)
		m.userRepo.EXPECT().AppendWatchHistory(ctx, userID, videoID).Return(nil)

		assert.NoError(t, srv.AddToWatchHistory(ctx, userID, videoID))
	})

	t.Run("unknown video", func(t *testing.T) {
		srv, m := newAccountServiceForTest(t)
		m.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

		err := srv.AddToWatchHistory(ctx, userID, videoID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("list", func(t *testing.T) {
		srv, m := newAccountServiceForTest(t)
		videos := []*entity.Video{{ID: videoID, Owner: &entity.UserSummary{Username: "bob"}}}
		m.userRepo.EXPECT().FindWatchHistory(ctx, userID).Return(videos, nil)

		got, err := srv.GetWatchHistory(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, videos, got)
	})
}
