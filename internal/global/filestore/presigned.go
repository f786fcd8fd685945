package filestore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignedUploadRequest describes the file a client wants to upload directly.
type PresignedUploadRequest struct {
	Filename    string
	ContentType string
	ExpiresIn   int64 // seconds, defaults to 15 minutes
}

// PresignedUploadResponse carries everything the client needs for a direct PUT.
type PresignedUploadResponse struct {
	UploadURL string            `json:"upload_url"`
	FileKey   string            `json:"file_key"`
	FileURL   string            `json:"file_url"`
	ExpiresAt time.Time         `json:"expires_at"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
}

// PresignUpload generates a presigned PUT URL so the frontend can upload to
// the bucket without routing the file through this service.
func (s *S3Store) PresignUpload(ctx context.Context, req PresignedUploadRequest) (*PresignedUploadResponse, error) {
	if req.Filename == "" {
		return nil, fmt.Errorf("filename must not be empty")
	}
	if req.ExpiresIn <= 0 {
		req.ExpiresIn = 900
	}

	key := s.objectKey(UniqueName(req.Filename))

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	presignClient := s3.NewPresignClient(s.s3Client)

	presignedReq, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(req.ExpiresIn) * time.Second
	})
	if err != nil {
		return nil, err
	}

	return &PresignedUploadResponse{
		UploadURL: presignedReq.URL,
		FileKey:   key,
		FileURL:   s.BaseURL + "/" + key,
		ExpiresAt: time.Now().Add(time.Duration(req.ExpiresIn) * time.Second),
		Method:    presignedReq.Method,
		Headers: map[string]string{
			"Content-Type": contentType,
		},
	}, nil
}
