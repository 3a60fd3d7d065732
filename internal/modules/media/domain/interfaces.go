package domain

import (
	"context"
	"io"
)

// FileStorage is where processed media ends up: a local directory, S3 or MinIO.
type FileStorage interface {
	// UploadFile stores file under key and returns its public URL
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)

	DeleteFile(ctx context.Context, key string) error

	// GetKeyFromURL extracts the storage key from a public URL
	GetKeyFromURL(url string) (string, error)
}
