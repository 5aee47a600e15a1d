// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

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

// sessionService implements the SessionUsecase interface.
// A user holds at most one live refresh token, stored as its hash.
type sessionService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and starts a new session, replacing any previous one.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := entity.NormalizeHandle(input.Username)
	email := entity.NormalizeHandle(input.Email)
	if username == "" && email == "" {
		return nil, errors.Wrap(domainerrors.ErrBadRequest.WithMessage("username or email is required"), "login failed")
	}
	srv.log(ctx).Debug("Starting user login", slog.String("username", username), slog.String("email", email))

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("email", email), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	// bcrypt runs outside any store call.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Any("user_id", user.ID), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	pair, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	hash := srv.tokenService.HashToken(pair.RefreshToken)
	if err := srv.userRepo.SetRefreshTokenHash(ctx, user.ID, hash); err != nil {
		srv.log(ctx).Error("Failed to store refresh token", slog.Any("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store refresh token")
	}
	user.RefreshTokenHash = hash

	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), service.EventUserLoggedIn, user.ID, nil)
	srv.log(ctx).Info("User logged in successfully", slog.Any("user_id", user.ID))

	return &usecase.LoginOutput{User: user, Tokens: pair}, nil
}

// Refresh rotates the session: the presented token must equal the stored one,
// and the swap to the new hash is a single compare-and-swap.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	if refreshToken == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "refresh token is missing")
	}

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh with invalid token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid.WithMessage("Invalid refresh token"), err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid.WithMessage("Invalid refresh token"), "token subject does not exist")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	presented := srv.tokenService.HashToken(refreshToken)
	if !user.HasSession() || user.RefreshTokenHash != presented {
		srv.log(ctx).Warn("Refresh token is expired or used", slog.Any("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token does not match the stored one")
	}

	pair, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	rotated, err := srv.userRepo.RotateRefreshTokenHash(ctx, user.ID, presented, srv.tokenService.HashToken(pair.RefreshToken))
	if err != nil {
		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}
	if !rotated {
		// A concurrent refresh or logout won the swap.
		srv.log(ctx).Warn("Refresh token rotation lost the race", slog.Any("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token was rotated concurrently")
	}

	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), service.EventTokenRefreshed, user.ID, nil)
	srv.log(ctx).Debug("Refresh token rotated", slog.Any("user_id", user.ID))

	return pair, nil
}

// Logout clears the stored refresh token. Logging out twice is not an error.
func (srv *sessionService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to log out", slog.Any("user_id", userID))

	if err := srv.userRepo.SetRefreshTokenHash(ctx, userID, ""); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to clear refresh token", slog.Any("user_id", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear refresh token")
	}

	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), service.EventUserLoggedOut, userID, nil)
	srv.log(ctx).Info("Successfully logged out", slog.Any("user_id", userID))

	return nil
}

// ChangePassword replaces the password hash. The current refresh token stays valid.
func (srv *sessionService) ChangePassword(ctx context.Context, userID uuid.UUID, input usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "failed to change password")
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Change password with wrong old password", slog.Any("user_id", userID))

		return errors.Wrap(domainerrors.ErrInvalidOldPassword, "failed to change password")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "new password rejected")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), service.EventPasswordChanged, userID, nil)
	srv.log(ctx).Info("Password changed", slog.Any("user_id", userID))

	return nil
}
