// Package storage holds the S3 client used for event poster uploads.
package storage

import (
	"context"
	"fmt"
	"io"

	"campus-events-api/core/config"
	"campus-events-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type s3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(cfg config.AWSConfig) (Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET is not configured")
	}

	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	})

	return &s3Uploader{client: client, bucket: cfg.Bucket, region: cfg.Region}, nil
}

// Upload stores the object and returns its public URL.
func (u *s3Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("Storage:Upload:PutObject:Error:", err, "key", key)
		return "", err
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	logger.Info("Storage:Upload:Success", "key", key, "url", url)
	return url, nil
}
