// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/constants"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	AccountUC usecase.AccountUsecase
	ChannelUC usecase.ChannelUsecase
	Stager    service.MediaStager
	Config    *config.Config
	Logger    *slog.Logger
}

// UserHandler holds dependencies for user, session and channel handlers.
type UserHandler struct {
	sessionUC usecase.SessionUsecase
	accountUC usecase.AccountUsecase
	channelUC usecase.ChannelUsecase
	stager    service.MediaStager
	cookies   sessionCookies
	logger    *slog.Logger
	now       func() time.Time
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		sessionUC: params.SessionUC,
		accountUC: params.AccountUC,
		channelUC: params.ChannelUC,
		stager:    params.Stager,
		cookies:   sessionCookies{secure: params.Config.IsProduction()},
		logger:    params.Logger,
		now:       time.Now,
	}
}

// RegisterRequest is the text part of the multipart registration form.
type RegisterRequest struct {
	Fullname string `form:"fullname"`
	Email    string `form:"email"`
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginRequest identifies the user by email or username.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries the refresh token when no cookie is sent.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest replaces the caller's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UpdateAccountRequest replaces the display name and email.
type UpdateAccountRequest struct {
	Fullname string `json:"fullname" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

// Register handles the multipart registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrBadRequest.WithMessage("Invalid registration input"), err.Error())
	}

	avatar, err := stageFormFile(c, h.stager, h.log(c), "avatar")
	if err != nil {
		return err
	}
	coverImage, err := stageFormFile(c, h.stager, h.log(c), "coverImage")
	if err != nil {
		discardStaged(h.stager, h.log(c), avatar)

		return err
	}

	user, err := h.accountUC.Register(c.Request().Context(), usecase.RegisterInput{
		Fullname:   req.Fullname,
		Email:      req.Email,
		Username:   req.Username,
		Password:   req.Password,
		Avatar:     avatar,
		CoverImage: coverImage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrBadRequest.WithMessage("Invalid login input"), err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, output.Tokens, h.now())

	return response.Success(c, http.StatusOK, &LoginResponse{
		User:         newUserResponse(output.User),
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	})
}

// Logout clears the stored session and the cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.clear(c)

	return response.Message(c, http.StatusOK, "User logged out")
}

// RefreshToken rotates the session. The token is read from the cookie first, then the body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(constants.RefreshTokenCookie); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req RefreshTokenRequest
		if err := c.Bind(&req); err != nil {
			return errors.Wrap(domainerrors.ErrBadRequest.WithMessage("Invalid refresh token input"), err.Error())
		}
		token = req.RefreshToken
	}

	pair, err := h.sessionUC.Refresh(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, pair, h.now())

	return response.Success(c, http.StatusOK, newTokensResponse(pair))
}

// ChangePassword replaces the caller's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrBadRequest.WithMessage("Invalid password input"), err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.sessionUC.ChangePassword(c.Request().Context(), userID, usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password changed successfully")
}

// GetCurrentUser returns the caller's account.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.accountUC.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateAccount replaces the caller's fullname and email.
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrBadRequest.WithMessage("Invalid account input"), err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.accountUC.UpdateAccount(c.Request().Context(), userID, usecase.UpdateAccountInput{
		Fullname: req.Fullname,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateAvatar replaces the caller's avatar from the "avatar" multipart field.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.replaceImage(c, "avatar", h.accountUC.UpdateAvatar)
}

// UpdateCoverImage replaces the caller's cover from the "coverImage" multipart field.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.replaceImage(c, "coverImage", h.accountUC.UpdateCoverImage)
}

// GetChannelProfile returns a channel page with the caller's subscription state.
func (h *UserHandler) GetChannelProfile(c echo.Context) error {
	viewerID, _ := deliverycontext.GetUserID(c)

	profile, err := h.channelUC.GetChannelProfile(c.Request().Context(), c.Param("username"), viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newChannelResponse(profile))
}

// GetChannelQRCode renders the channel share QR code as PNG.
func (h *UserHandler) GetChannelQRCode(c echo.Context) error {
	png, err := h.channelUC.GetChannelQRCode(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=channel-qr.png")

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetWatchHistory lists the videos the caller watched, oldest first.
func (h *UserHandler) GetWatchHistory(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	videos, err := h.accountUC.GetWatchHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVideoResponses(videos))
}

// AddToWatchHistory records a view of videoId.
func (h *UserHandler) AddToWatchHistory(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	videoID, err := uuidParam(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.accountUC.AddToWatchHistory(c.Request().Context(), userID, videoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Added to watch history")
}

func (h *UserHandler) replaceImage(
	c echo.Context,
	field string,
	replace func(ctx context.Context, userID uuid.UUID, file *service.StagedFile) (*entity.User, error),
) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	file, err := stageFormFile(c, h.stager, h.log(c), field)
	if err != nil {
		return err
	}

	user, err := replace(c.Request().Context(), userID, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
