package media

import (
	"context"
	"fmt"

	"github.com/saransh1220/artistly/internal/modules/media/application"
	"github.com/saransh1220/artistly/internal/modules/media/domain"
	"github.com/saransh1220/artistly/internal/modules/media/infrastructure/local"
	"github.com/saransh1220/artistly/internal/modules/media/infrastructure/s3"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/config"
	"go.uber.org/zap"
)

// Module owns profile image processing and the storage behind it
type Module struct {
	service *application.ImageService
	storage domain.FileStorage
	// localDir is set when uploads are kept on disk and served by the gateway
	localDir string
}

func NewModule(ctx context.Context, cfg config.FileStorageConfig, logger *zap.Logger) (*Module, error) {
	m := &Module{}

	if cfg.UseS3 {
		storage, err := s3.NewS3Storage(ctx, s3.S3Config{
			BucketName:     cfg.S3BucketName,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			UseSSL:         cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		m.storage = storage
	} else {
		storage, err := local.NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		m.storage = storage
		m.localDir = storage.BasePath()
	}

	m.service = application.NewImageService(m.storage, logger)
	return m, nil
}

func (m *Module) Service() *application.ImageService {
	return m.service
}

// LocalDir is the on-disk upload directory, empty when uploads go to S3.
func (m *Module) LocalDir() string {
	return m.localDir
}
