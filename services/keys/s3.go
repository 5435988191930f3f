package keys

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
)

// maxKeyObjectSize bounds how much of the key object is read.
const maxKeyObjectSize = 4096

// S3Client is the part of the S3 API the key loader needs.
type S3Client interface {
	GetObject(ctx context.Context, input *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewS3ClientFromURL builds an S3 client from the default AWS credential chain. The region may be
// given with a region query parameter.
func NewS3ClientFromURL(ctx context.Context, s3URL *url.URL) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error

	if region := s3URL.Query().Get("region"); region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to load aws config", err)
	}

	return s3.NewFromConfig(cfg), nil
}

// NewS3Loader returns a loader that fetches the hex secret stored at s3://bucket/key on every call.
func NewS3Loader(logger ulogger.Logger, client S3Client, s3URL *url.URL) (Loader, error) {
	if s3URL == nil || s3URL.Scheme != "s3" {
		return nil, errors.NewConfigurationError("escrow key url must be an s3:// url")
	}

	bucket := s3URL.Host
	objectKey := strings.TrimPrefix(s3URL.Path, "/")

	if bucket == "" || objectKey == "" {
		return nil, errors.NewConfigurationError("escrow key url %s needs a bucket and a key", s3URL.Redacted())
	}

	return func(ctx context.Context) (*btcec.PrivateKey, error) {
		result, err := client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(objectKey),
		})
		if err != nil {
			if strings.Contains(err.Error(), "NoSuchKey") {
				return nil, errors.NewNotFoundError("escrow key object %s/%s not found", bucket, objectKey, err)
			}

			return nil, errors.NewServiceUnavailableError("failed to fetch escrow key from s3", err)
		}

		defer func() {
			_ = result.Body.Close()
		}()

		b, err := io.ReadAll(io.LimitReader(result.Body, maxKeyObjectSize))
		if err != nil {
			return nil, errors.NewServiceUnavailableError("failed to read escrow key from s3", err)
		}

		logger.Debugf("[Keys] fetched escrow key from s3://%s/%s", bucket, objectKey)

		return ParsePrivateKey(string(b))
	}, nil
}
