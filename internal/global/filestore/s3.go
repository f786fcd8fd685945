package filestore

import (
	"context"
	"io"
	"path"
	"strings"

	appconfig "sahabat3t-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store uploads files to an S3-compatible bucket.
type S3Store struct {
	Bucket   string
	Prefix   string
	BaseURL  string
	s3Client *s3.Client
	uploader *manager.Uploader
}

// NewS3 builds a store from service configuration. Returns nil when no bucket
// is configured, which selects the local backend.
func NewS3(ctx context.Context, cfg appconfig.S3) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Store{
		Bucket:   cfg.Bucket,
		Prefix:   cfg.Prefix,
		BaseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		s3Client: client,
		uploader: manager.NewUploader(client),
	}, nil
}

// objectKey joins the configured prefix with a unique filename.
func (s *S3Store) objectKey(filename string) string {
	key := path.Join(strings.Trim(s.Prefix, "/"), filename)
	return strings.TrimLeft(key, "/")
}

// Put streams body into the bucket and returns the object's public URL.
func (s *S3Store) Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := s.objectKey(filename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.BaseURL + "/" + key, nil
}
