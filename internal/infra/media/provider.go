package media

import (
	"context"
	"log/slog"

	"vidtube/config"
	"vidtube/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

const defaultBucketURL = "mem://"

// StorageParams holds dependencies for MediaStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage opens the backend selected by media.driver.
func NewMediaStorage(params StorageParams) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil {
		cfg = &config.MediaConfig{Driver: config.MediaDriverBlob}
	}

	switch cfg.Driver {
	case "", config.MediaDriverBlob:
		bucketURL := cfg.BucketURL
		if bucketURL == "" {
			bucketURL = defaultBucketURL
		}

		bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
		}

		params.Logger.Info("Using blob media storage", slog.String("bucket_url", bucketURL))
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return errors.WithStack(bucket.Close())
			},
		})

		return NewBlobStorage(bucket, cfg.PublicBaseURL), nil

	case config.MediaDriverS3:
		if cfg.S3.Bucket == "" {
			return nil, errors.New("s3 bucket is required for s3 media driver")
		}

		client, err := newS3Client(params.Ctx, cfg.S3)
		if err != nil {
			return nil, err
		}

		params.Logger.Info("Using S3 media storage",
			slog.String("bucket", cfg.S3.Bucket),
			slog.String("region", cfg.S3.Region),
		)

		return NewS3Storage(client, cfg.S3.Bucket, cfg.S3.KeyPrefix, cfg.PublicBaseURL), nil

	default:
		return nil, errors.Errorf("unknown media driver: %s", cfg.Driver)
	}
}

func newS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	var loadOpts []func(*awscfg.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awscfg.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Module provides the media FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewMediaStager,
		NewMediaStorage,
	),
)
