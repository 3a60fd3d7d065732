package artist

import (
	"context"

	"github.com/saransh1220/artistly/internal/modules/artist/application"
	"github.com/saransh1220/artistly/internal/modules/artist/domain"
	artist_http "github.com/saransh1220/artistly/internal/modules/artist/interfaces/http"
	busdomain "github.com/saransh1220/artistly/internal/modules/changebus/domain"
	storageapp "github.com/saransh1220/artistly/internal/modules/storage/application"
	storagedomain "github.com/saransh1220/artistly/internal/modules/storage/domain"
	"go.uber.org/zap"
)

// Module wires the artist catalog and onboarding flow
type Module struct {
	repo    *storageapp.Repository[domain.Artist]
	service *application.Service
	handler *artist_http.ArtistHandler
}

func NewModule(ctx context.Context, store storagedomain.Store, bus busdomain.Notifier, images application.ImageStore, logger *zap.Logger) *Module {
	repo := storageapp.NewRepository[domain.Artist](ctx, store, bus, storagedomain.KeyArtists, logger)
	service := application.NewService(repo, images, logger)

	return &Module{
		repo:    repo,
		service: service,
		handler: artist_http.NewArtistHandler(service, logger),
	}
}

func (m *Module) Service() *application.Service {
	return m.service
}

func (m *Module) HTTPHandler() *artist_http.ArtistHandler {
	return m.handler
}

// Close stops the repository from following change events.
func (m *Module) Close() {
	m.repo.Close()
}
