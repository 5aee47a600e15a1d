package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, env string, err error) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	m.HandleHTTPError(err, c)

	var body response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handleError(t, "development", errors.Wrap(domainerrors.ErrUserAlreadyExists, "register failed"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, body.IsSuccess)
	assert.Equal(t, http.StatusConflict, body.StatusCode)
	assert.Equal(t, "Conflict", body.Status)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), body.Code)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.Message(), body.Message)
	assert.Equal(t, "req-1", body.RequestID)
	assert.Contains(t, body.Stack, "register failed")
	assert.False(t, body.Retryable)
}

func TestErrorMiddleware_StoreTimeoutIsRetryable(t *testing.T) {
	rec, body := handleError(t, "development", errors.WithStack(domainerrors.ErrStoreTimeout))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.True(t, body.Retryable)
}

func TestErrorMiddleware_ProductionHidesInternals(t *testing.T) {
	rec, body := handleError(t, config.EnvProduction, errors.New("dial tcp 10.0.0.1:5432: refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error, please try again later", body.Message)
	assert.Empty(t, body.Stack)
	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, "development", echo.NewHTTPError(http.StatusNotFound, "route not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "route not found", body.Message)
	assert.Equal(t, "HTTP_ERROR", body.Code)
}
