package application

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/saransh1220/artistly/internal/modules/media/domain"
	"go.uber.org/zap"
)

const (
	profileSize    = 400
	profileQuality = 80
)

// ImageService normalises uploaded pictures before they reach storage
type ImageService struct {
	storage domain.FileStorage
	logger  *zap.Logger
	newID   func() string
}

func NewImageService(storage domain.FileStorage, logger *zap.Logger) *ImageService {
	return &ImageService{
		storage: storage,
		logger:  logger.With(zap.String("component", "media")),
		newID:   uuid.NewString,
	}
}

// StoreProfileImage crops src to a 400x400 JPEG and stores it under
// artists/<artistID>/<uuid>.jpg, returning the public URL.
func (s *ImageService) StoreProfileImage(ctx context.Context, artistID string, src io.Reader) (string, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}

	dst := imaging.Fill(img, profileSize, profileSize, imaging.Center, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, dst, imaging.JPEG, imaging.JPEGQuality(profileQuality)); err != nil {
		return "", fmt.Errorf("encode profile image: %w", err)
	}

	key := fmt.Sprintf("artists/%s/%s.jpg", artistID, s.newID())
	url, err := s.storage.UploadFile(ctx, key, buf, "image/jpeg")
	if err != nil {
		return "", err
	}
	s.logger.Info("profile image stored", zap.String("artist_id", artistID), zap.String("key", key))
	return url, nil
}

// RemoveImage deletes a previously stored image. URLs from elsewhere are ignored.
func (s *ImageService) RemoveImage(ctx context.Context, url string) error {
	key, err := s.storage.GetKeyFromURL(url)
	if err != nil {
		return nil
	}
	return s.storage.DeleteFile(ctx, key)
}
