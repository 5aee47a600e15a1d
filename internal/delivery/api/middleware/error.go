package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/delivery/api/validator"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, info := m.describe(err)
	if status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.Int("status", status),
		)
	}

	if !m.production {
		info.Stack = fmt.Sprintf("%+v", err)
		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			info.Errors = validationErr.Fields
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}
	_ = response.Error(c, status, info)
}

func (m *ErrorMiddleware) describe(err error) (int, response.ErrorInfo) {
	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		info := response.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
		}
		var retryable domainerrors.Retryable
		if errors.As(err, &retryable) {
			info.Retryable = retryable.Retryable()
		}

		return appErr.HTTPCode(), info
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return httpErr.Code, response.ErrorInfo{Code: "HTTP_ERROR", Message: message}
	}

	// Do not expose internal error details to the client
	return http.StatusInternalServerError, response.ErrorInfo{
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Message: "Internal server error, please try again later",
	}
}
