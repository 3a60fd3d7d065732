package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/saransh1220/artistly/internal/modules/media/domain"
)

// S3Config holds configuration for S3/MinIO storage
type S3Config struct {
	BucketName     string
	Region         string
	Endpoint       string // internal endpoint, e.g. minio:9000
	PublicEndpoint string // endpoint written into returned URLs
	AccessKey      string
	SecretKey      string
	UseSSL         bool
}

// S3Storage stores media objects in a bucket on AWS S3 or MinIO
type S3Storage struct {
	client *s3.Client
	config S3Config
}

func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.Endpoint != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(withScheme(cfg.Endpoint, cfg.UseSSL))
			o.UsePathStyle = true // MinIO
		}
	})

	return &S3Storage{client: client, config: cfg}, nil
}

func (s *S3Storage) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}
	return s.publicURL(key), nil
}

func (s *S3Storage) DeleteFile(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from s3: %w", err)
	}
	return nil
}

func (s *S3Storage) GetKeyFromURL(fileURL string) (string, error) {
	for _, endpoint := range []string{s.config.PublicEndpoint, s.config.Endpoint} {
		if endpoint == "" {
			continue
		}
		prefix := fmt.Sprintf("%s/%s/", withScheme(endpoint, s.config.UseSSL), s.config.BucketName)
		if key, ok := strings.CutPrefix(fileURL, prefix); ok {
			return key, nil
		}
	}
	if s.config.Endpoint == "" {
		if key, ok := strings.CutPrefix(fileURL, s.awsPrefix()); ok {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrForeignURL, fileURL)
}

func (s *S3Storage) publicURL(key string) string {
	switch {
	case s.config.PublicEndpoint != "":
		return fmt.Sprintf("%s/%s/%s", withScheme(s.config.PublicEndpoint, s.config.UseSSL), s.config.BucketName, key)
	case s.config.Endpoint != "":
		return fmt.Sprintf("%s/%s/%s", withScheme(s.config.Endpoint, s.config.UseSSL), s.config.BucketName, key)
	}
	return s.awsPrefix() + key
}

// awsPrefix is https://bucket.s3.region.amazonaws.com/
func (s *S3Storage) awsPrefix() string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.config.BucketName, s.config.Region)
}

func withScheme(endpoint string, useSSL bool) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}
