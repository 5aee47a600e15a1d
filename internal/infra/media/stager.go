// Package media stages multipart uploads on local disk and moves them into object storage.
package media

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"vidtube/config"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/google/uuid"
)

const defaultStagingDir = "vidtube-staging"

type localStager struct {
	dir string
}

// NewMediaStager returns a stager writing into media.stagingDir, or the OS temp dir when unset.
func NewMediaStager(cfg *config.Config) service.MediaStager {
	dir := filepath.Join(os.TempDir(), defaultStagingDir)
	if cfg.Media != nil && cfg.Media.StagingDir != "" {
		dir = cfg.Media.StagingDir
	}

	return NewLocalStager(dir)
}

// NewLocalStager creates a stager rooted at dir.
func NewLocalStager(dir string) service.MediaStager {
	return &localStager{dir: dir}
}

// Stage writes r to a uniquely named file under the staging dir.
func (s *localStager) Stage(field, originalName, contentType string, r io.Reader) (*service.StagedFile, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}

	f, err := os.CreateTemp(s.dir, field+"-*"+extension(originalName))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		_ = os.Remove(f.Name())

		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}

	return &service.StagedFile{
		Field:        field,
		Path:         f.Name(),
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         size,
	}, nil
}

// Discard removes the staged copy.
func (s *localStager) Discard(file *service.StagedFile) error {
	if file == nil || file.Path == "" {
		return nil
	}
	if err := os.Remove(file.Path); err != nil && !os.IsNotExist(err) {
		return errors.WithStack(err)
	}

	return nil
}

// objectKey builds a collision-free key such as avatars/<uuid>.png.
func objectKey(prefix, folder, originalName string) string {
	parts := make([]string, 0, 3)
	if p := strings.Trim(prefix, "/"); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, folder, uuid.NewString()+extension(originalName))

	return strings.Join(parts, "/")
}

// publicURL joins the configured base with the key.
func publicURL(base, key string) string {
	if base == "" {
		return key
	}

	return strings.TrimSuffix(base, "/") + "/" + key
}

func extension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	for _, r := range ext[min(1, len(ext)):] {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return ""
		}
	}

	return ext
}
