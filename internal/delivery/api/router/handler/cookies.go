package handler

import (
	"net/http"
	"time"

	"vidtube/internal/domain/constants"
	"vidtube/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// sessionCookies writes the token pair as httpOnly cookies.
type sessionCookies struct {
	secure bool
}

func (s sessionCookies) set(c echo.Context, pair *service.TokenPair, now time.Time) {
	c.SetCookie(s.cookie(constants.AccessTokenCookie, pair.AccessToken, pair.AccessExpiresAt.Sub(now)))
	c.SetCookie(s.cookie(constants.RefreshTokenCookie, pair.RefreshToken, pair.RefreshExpiresAt.Sub(now)))
}

func (s sessionCookies) clear(c echo.Context) {
	for _, name := range []string{constants.AccessTokenCookie, constants.RefreshTokenCookie} {
		cookie := s.cookie(name, "", 0)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		c.SetCookie(cookie)
	}
}

func (s sessionCookies) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
