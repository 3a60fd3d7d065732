package dashboard

import (
	"context"

	artist "github.com/saransh1220/artistly/internal/modules/artist/domain"
	booking "github.com/saransh1220/artistly/internal/modules/booking/domain"
	busdomain "github.com/saransh1220/artistly/internal/modules/changebus/domain"
	"github.com/saransh1220/artistly/internal/modules/dashboard/application"
	dashboard_http "github.com/saransh1220/artistly/internal/modules/dashboard/interfaces/http"
	storageapp "github.com/saransh1220/artistly/internal/modules/storage/application"
	storagedomain "github.com/saransh1220/artistly/internal/modules/storage/domain"
	"go.uber.org/zap"
)

// Module mounts its own artist and booking views for the role dashboards
type Module struct {
	artists  *storageapp.Repository[artist.Artist]
	bookings *storageapp.Repository[booking.Booking]
	service  *application.Service
	handler  *dashboard_http.DashboardHandler
}

func NewModule(ctx context.Context, store storagedomain.Store, bus busdomain.Notifier, logger *zap.Logger) *Module {
	artists := storageapp.NewRepository[artist.Artist](ctx, store, bus, storagedomain.KeyArtists, logger)
	bookings := storageapp.NewRepository[booking.Booking](ctx, store, bus, storagedomain.KeyBookings, logger)
	service := application.NewService(artists, bookings)

	return &Module{
		artists:  artists,
		bookings: bookings,
		service:  service,
		handler:  dashboard_http.NewDashboardHandler(service),
	}
}

func (m *Module) Service() *application.Service {
	return m.service
}

func (m *Module) HTTPHandler() *dashboard_http.DashboardHandler {
	return m.handler
}

func (m *Module) Close() {
	m.artists.Close()
	m.bookings.Close()
}
