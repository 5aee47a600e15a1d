// Package response renders the JSON envelope shared by every API route.
package response

import (
	"net/http"

	deliverycontext "vidtube/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	IsSuccess  bool   `json:"isSuccess"`
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Data       any    `json:"data"`

	// Error-only fields
	Message   string `json:"message,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
	Stack     string `json:"stack,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorInfo holds what an error response reports besides its status.
type ErrorInfo struct {
	Code      string
	Message   string
	Retryable bool
	Stack     string // Only outside production
	Errors    any    // Validation details, only outside production
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		IsSuccess:  statusCode < http.StatusBadRequest,
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Data:       data,
	})
}

// Message returns a successful response whose data is {"message": message}
func Message(c echo.Context, statusCode int, message string) error {
	return Success(c, statusCode, map[string]string{"message": message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, info ErrorInfo) error {
	return c.JSON(statusCode, Envelope{
		IsSuccess:  false,
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Message:    info.Message,
		Code:       info.Code,
		RequestID:  deliverycontext.GetRequestID(c),
		Retryable:  info.Retryable,
		Stack:      info.Stack,
		Errors:     info.Errors,
	})
}
