package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{name: "client id reused", header: "abc-123_x.y", reused: true},
		{name: "no client id", header: ""},
		{name: "id with spaces", header: "abc 123"},
		{name: "id too long", header: strings.Repeat("a", maxClientRequestIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			mw := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			assert.Equal(t, seen, rec.Header().Get(echo.HeaderXRequestID))
			assert.Contains(t, logs.String(), `"request_id":"`+seen+`"`)
			if tt.reused {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
			}
		})
	}
}

func TestLoggerMiddleware_LevelFollowsErrorStatus(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil), httptest.NewRecorder())
	handlerErr := errors.WithStack(domainerrors.ErrInvalidCredentials)

	err := NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
		return handlerErr
	})(c)

	assert.Equal(t, handlerErr, err)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"status":401`)
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var logs bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)), &config.Config{})

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))

	assert.Empty(t, logs.String())
}
