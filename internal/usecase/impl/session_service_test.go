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

type sessionMocks struct {
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockService.MockPasswordHasher
	tokens    *mockService.MockTokenService
	publisher *mockService.MockEventPublisher
}

func newSessionServiceForTest(t *testing.T) (usecase.SessionUsecase, *sessionMocks) {
	m := &sessionMocks{
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		tokens:    mockService.NewMockTokenService(t),
		publisher: mockService.NewMockEventPublisher(t),
	}

	srv := NewSessionService(SessionServiceParams{
		UserRepo:     m.userRepo,
		Hasher:       m.hasher,
		TokenService: m.tokens,
		Publisher:    m.publisher,
		Logger:       newDiscardLogger(),
	})

	return srv, m
}

func expectEvent(m *sessionMocks, eventType string) {
	m.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool { return e.Type == eventType })).
		Return(nil).
		Once()
}

func TestSessionService_Login_Success(t *testing.T) {
	srv, m := newSessionServiceForTest(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed"}
	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	m.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "").Return(user, nil)
	m.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	m.tokens.EXPECT().GenerateTokens(user.ID).Return(pair, nil)
	m.tokens.EXPECT().HashToken("refresh").Return("refresh-hash")
	m.userRepo.EXPECT().SetRefreshTokenHash(ctx, user.ID, "refresh-hash").Return(nil)
	expectEvent(m, service.EventUserLoggedIn)

	out, err := srv.Login(ctx, usecase.LoginInput{Username: "  Alice ", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, pair, out.Tokens)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, "refresh-hash", out.User.RefreshTokenHash)
}

func TestSessionService_Login_Failures(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

	tests := []struct {
		name    string
		input   usecase.LoginInput
		setup   func(m *sessionMocks)
		wantErr error
	}{
		{
			name:    "missing identifier",
			input:   usecase.LoginInput{Password: "secret1"},
			setup:   func(*sessionMocks) {},
			wantErr: domainerrors.ErrBadRequest,
		},
		{
			name:  "unknown user",
			input: usecase.LoginInput{Email: "nobody@example.com", Password: "secret1"},
			setup: func(m *sessionMocks) {
				m.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "", "nobody@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
		{
			name:  "wrong password",
			input: usecase.LoginInput{Username: "alice", Password: "wrong"},
			setup: func(m *sessionMocks) {
				m.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "").Return(user, nil)
				m.hasher.EXPECT().Check("wrong", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:  "store timeout",
			input: usecase.LoginInput{Username: "alice", Password: "secret1"},
			setup: func(m *sessionMocks) {
				m.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "").Return(nil, errors.Wrap(domainerrors.ErrStoreTimeout, "find user timed out"))
			},
			wantErr: domainerrors.ErrStoreTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newSessionServiceForTest(t)
			tt.setup(m)

			out, err := srv.Login(ctx, tt.input)

			assert.Nil(t, out)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestSessionService_Refresh_Success(t *testing.T) {
	srv, m := newSessionServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, RefreshTokenHash: "old-hash"}
	pair := &service.TokenPair{AccessToken: "access2", RefreshToken: "refresh2"}

	m.tokens.EXPECT().ValidateRefreshToken("refresh1").Return(&service.Claims{UserID: userID}, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.tokens.EXPECT().HashToken("refresh1").Return("old-hash")
	m.tokens.EXPECT().GenerateTokens(userID).Return(pair, nil)
	m.tokens.EXPECT().HashToken("refresh2").Return("new-hash")
	m.userRepo.EXPECT().RotateRefreshTokenHash(ctx, userID, "old-hash", "new-hash").Return(true, nil)
	expectEvent(m, service.EventTokenRefreshed)

	got, err := srv.Refresh(ctx, "refresh1")

	require.NoError(t, err)
	assert.Equal(t, pair, got)
}

func TestSessionService_Refresh_Failures(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name    string
		token   string
		setup   func(m *sessionMocks)
		wantErr error
	}{
		{
			name:    "missing token",
			token:   "",
			setup:   func(*sessionMocks) {},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "invalid token",
			token: "garbage",
			setup: func(m *sessionMocks) {
				m.tokens.EXPECT().ValidateRefreshToken("garbage").Return(nil, domainerrors.ErrTokenInvalid)
			},
			wantErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:  "subject does not resolve",
			token: "orphan",
			setup: func(m *sessionMocks) {
				m.tokens.EXPECT().ValidateRefreshToken("orphan").Return(&service.Claims{UserID: userID}, nil)
				m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:  "token already used",
			token: "used",
			setup: func(m *sessionMocks) {
				m.tokens.EXPECT().ValidateRefreshToken("used").Return(&service.Claims{UserID: userID}, nil)
				m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, RefreshTokenHash: "current"}, nil)
				m.tokens.EXPECT().HashToken("used").Return("stale")
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name:  "signed out",
			token: "after-logout",
			setup: func(m *sessionMocks) {
				m.tokens.EXPECT().ValidateRefreshToken("after-logout").Return(&service.Claims{UserID: userID}, nil)
				m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
				m.tokens.EXPECT().HashToken("after-logout").Return("")
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name:  "concurrent rotation wins",
			token: "racing",
			setup: func(m *sessionMocks) {
				m.tokens.EXPECT().ValidateRefreshToken("racing").Return(&service.Claims{UserID: userID}, nil)
				m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, RefreshTokenHash: "h"}, nil)
				m.tokens.EXPECT().HashToken("racing").Return("h")
				m.tokens.EXPECT().GenerateTokens(userID).Return(&service.TokenPair{RefreshToken: "next"}, nil)
				m.tokens.EXPECT().HashToken("next").Return("next-hash")
				m.userRepo.EXPECT().RotateRefreshTokenHash(ctx, userID, "h", "next-hash").Return(false, nil)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newSessionServiceForTest(t)
			tt.setup(m)

			pair, err := srv.Refresh(ctx, tt.token)

			assert.Nil(t, pair)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 401, appErr.HTTPCode())
		})
	}
}

func TestSessionService_Logout(t *testing.T) {
	srv, m := newSessionServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().SetRefreshTokenHash(ctx, userID, "").Return(nil).Twice()
	m.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(errors.New("broker down")).Twice()

	require.NoError(t, srv.Logout(ctx, userID))
	require.NoError(t, srv.Logout(ctx, userID))
}

func TestSessionService_Logout_UnknownUserIsNoop(t *testing.T) {
	srv, m := newSessionServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().SetRefreshTokenHash(ctx, userID, "").Return(repository.ErrUserNotFound)

	assert.NoError(t, srv.Logout(ctx, userID))
}

func TestSessionService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old-hash", RefreshTokenHash: "session"}

	t.Run("success keeps the session", func(t *testing.T) {
		srv, m := newSessionServiceForTest(t)
		m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		m.hasher.EXPECT().Check("old", "old-hash").Return(true)
		m.hasher.EXPECT().ValidatePasswordStrength("new-secret").Return(nil)
		m.hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
		m.userRepo.EXPECT().UpdatePasswordHash(ctx, userID, "new-hash").Return(nil)
		expectEvent(m, service.EventPasswordChanged)

		err := srv.ChangePassword(ctx, userID, usecase.ChangePasswordInput{OldPassword: "old", NewPassword: "new-secret"})

		require.NoError(t, err)
		m.userRepo.AssertNotCalled(t, "SetRefreshTokenHash", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wrong old password", func(t *testing.T) {
		srv, m := newSessionServiceForTest(t)
		m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		m.hasher.EXPECT().Check("bad", "old-hash").Return(false)

		err := srv.ChangePassword(ctx, userID, usecase.ChangePasswordInput{OldPassword: "bad", NewPassword: "new-secret"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidOldPassword))
		m.userRepo.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("weak new password", func(t *testing.T) {
		srv, m := newSessionServiceForTest(t)
		m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		m.hasher.EXPECT().Check("old", "old-hash").Return(true)
		m.hasher.EXPECT().ValidatePasswordStrength("abc").Return(domainerrors.ErrPasswordStrength)

		err := srv.ChangePassword(ctx, userID, usecase.ChangePasswordInput{OldPassword: "old", NewPassword: "abc"})

		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	})
}
