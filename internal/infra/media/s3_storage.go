package media

import (
	"context"
	"io"
	"os"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3Storage stores media in Amazon S3 or an S3-compatible service.
type s3Storage struct {
	client        *s3.Client
	uploader      *manager.Uploader
	bucket        string
	keyPrefix     string
	publicBaseURL string
}

// NewS3Storage creates an S3 media store over client.
func NewS3Storage(client *s3.Client, bucket, keyPrefix, publicBaseURL string) service.MediaStorage {
	return &s3Storage{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        bucket,
		keyPrefix:     keyPrefix,
		publicBaseURL: publicBaseURL,
	}
}

func (s *s3Storage) Upload(ctx context.Context, folder string, file *service.StagedFile) (*entity.Media, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}
	defer f.Close()

	key := objectKey(s.keyPrefix, folder, file.OriginalName)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   f,
		ACL:    types.ObjectCannedACLPrivate,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrMediaUploadFailed, "upload %s: %s", key, err.Error())
	}

	return &entity.Media{Key: key, URL: publicURL(s.publicBaseURL, key)}, nil
}

// Delete succeeds for missing keys since S3 DeleteObject is idempotent.
func (s *s3Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	return errors.WithStack(err)
}

func (s *s3Storage) Open(ctx context.Context, key string) (io.ReadCloser, *service.ObjectInfo, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, nil, errors.Wrapf(domainerrors.ErrNotFound, "media %s not found", key)
		}

		return nil, nil, errors.WithStack(err)
	}

	return out.Body, &service.ObjectInfo{
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}
