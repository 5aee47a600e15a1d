package handler

import (
	"net/http"
	"strings"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Storage service.MediaStorage
}

// MediaHandler streams stored avatars and cover images.
type MediaHandler struct {
	storage service.MediaStorage
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{storage: params.Storage}
}

// Serve streams the object addressed by the wildcard path.
func (h *MediaHandler) Serve(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return errors.WithStack(domainerrors.ErrNotFound.WithMessage("Media not found"))
	}

	reader, info, err := h.storage.Open(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}
	defer reader.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderXContentTypeOptions, "nosniff")

	// Objects stored before image detection may carry any type
	contentType := info.ContentType
	if !isImageType(contentType) {
		contentType = echo.MIMEOctetStream
		header.Set(echo.HeaderContentDisposition, "attachment")
	}
	header.Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, reader)
}
