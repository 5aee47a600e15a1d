package handler

import (
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"
	"vidtube/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// imageTypes are the formats accepted for avatars and cover images. SVG is
// left out because it can carry script.
var imageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// stageFormFile copies the multipart image of field into the staging area.
// The content type is detected from the bytes, not taken from the client.
// It returns nil without error when the field is absent.
func stageFormFile(c echo.Context, stager service.MediaStager, logger *slog.Logger, field string) (*service.StagedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, errors.Wrap(domainerrors.ErrBadRequest.WithMessage("Invalid multipart upload"), err.Error())
	}

	src, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}
	defer src.Close()

	contentType, err := detectImageType(src)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrBadRequest.WithMessage(field+" must be a PNG, JPEG, GIF or WebP image"), "%s: %v", field, err)
	}

	staged, err := stager.Stage(field, header.Filename, contentType, src)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}

	logger.Debug("Staged upload",
		slog.String("field", field),
		slog.String("size", util.FormatBytes(staged.Size)),
	)

	return staged, nil
}

// detectImageType sniffs src and rewinds it for the copy that follows.
func detectImageType(src io.ReadSeeker) (string, error) {
	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", errors.WithStack(err)
	}
	if !isImageType(detected.String()) {
		return "", errors.Errorf("unsupported content type %q", detected.String())
	}

	return detected.String(), nil
}

// isImageType reports whether contentType, ignoring parameters, is an accepted image format.
func isImageType(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")

	return slices.Contains(imageTypes, strings.TrimSpace(strings.ToLower(mediaType)))
}

// discardStaged removes files that never reached a usecase.
func discardStaged(stager service.MediaStager, logger *slog.Logger, files ...*service.StagedFile) {
	for _, file := range files {
		if file == nil {
			continue
		}
		if err := stager.Discard(file); err != nil {
			logger.Warn("Failed to discard staged file", slog.String("path", file.Path), slog.Any("error", err))
		}
	}
}
