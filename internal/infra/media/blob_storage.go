package media

import (
	"context"
	"io"
	"os"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// blobStorage stores media in any gocloud bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage wraps an opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.MediaStorage {
	return &blobStorage{bucket: bucket, publicBaseURL: publicBaseURL}
}

func (s *blobStorage) Upload(ctx context.Context, folder string, file *service.StagedFile) (*entity.Media, error) {
	src, err := os.Open(file.Path)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}
	defer src.Close()

	key := objectKey("", folder, file.OriginalName)
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: file.ContentType})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}

	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()

		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}

	return &entity.Media{Key: key, URL: publicURL(s.publicBaseURL, key)}, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.WithStack(err)
	}

	return nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, *service.ObjectInfo, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, errors.Wrapf(domainerrors.ErrNotFound, "media %s not found", key)
		}

		return nil, nil, errors.WithStack(err)
	}

	return r, &service.ObjectInfo{ContentType: r.ContentType(), Size: r.Size()}, nil
}
