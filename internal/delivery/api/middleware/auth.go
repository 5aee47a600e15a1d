// Package middleware holds the echo middleware of the public API.
package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/constants"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies access tokens without touching the store.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate reads the access token from the accessToken cookie or the
// Authorization header and stores the caller's ID on the context. A cookie
// that fails validation does not shadow a valid header token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		candidates := accessTokensFrom(c)
		if len(candidates) == 0 {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		var (
			claims *service.Claims
			token  string
			err    error
		)
		for _, token = range candidates {
			if claims, err = m.tokenSvc.ValidateAccessToken(token); err == nil {
				break
			}
		}
		if err != nil {
			return errors.Wrap(domainerrors.ErrTokenInvalid.WithMessage("Invalid access token"), err.Error())
		}

		deliverycontext.SetUserID(c, claims.UserID)
		deliverycontext.SetAccessToken(c, token)

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		ctx = deliverycontext.WithLoggerAttrs(ctx, slog.String(constants.AttrUserID, claims.UserID.String()))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the ID stored by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

// accessTokensFrom lists the presented tokens, cookie first.
func accessTokensFrom(c echo.Context) []string {
	tokens := make([]string, 0, 2)
	if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil && cookie.Value != "" {
		tokens = append(tokens, cookie.Value)
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
		if token = strings.TrimSpace(token); token != "" && !slices.Contains(tokens, token) {
			tokens = append(tokens, token)
		}
	}

	return tokens
}
