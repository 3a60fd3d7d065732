package booking

import (
	"context"

	artist "github.com/saransh1220/artistly/internal/modules/artist/domain"
	"github.com/saransh1220/artistly/internal/modules/booking/application"
	"github.com/saransh1220/artistly/internal/modules/booking/domain"
	booking_http "github.com/saransh1220/artistly/internal/modules/booking/interfaces/http"
	busdomain "github.com/saransh1220/artistly/internal/modules/changebus/domain"
	storageapp "github.com/saransh1220/artistly/internal/modules/storage/application"
	storagedomain "github.com/saransh1220/artistly/internal/modules/storage/domain"
	"go.uber.org/zap"
)

// Module wires booking requests over its own bookings and artists views
type Module struct {
	bookings *storageapp.Repository[domain.Booking]
	artists  *storageapp.Repository[artist.Artist]
	service  *application.Service
	handler  *booking_http.BookingHandler
}

func NewModule(ctx context.Context, store storagedomain.Store, bus busdomain.Notifier, logger *zap.Logger) *Module {
	bookings := storageapp.NewRepository[domain.Booking](ctx, store, bus, storagedomain.KeyBookings, logger)
	artists := storageapp.NewRepository[artist.Artist](ctx, store, bus, storagedomain.KeyArtists, logger)
	service := application.NewService(bookings, artists, logger)

	return &Module{
		bookings: bookings,
		artists:  artists,
		service:  service,
		handler:  booking_http.NewBookingHandler(service, logger),
	}
}

func (m *Module) Service() *application.Service {
	return m.service
}

func (m *Module) HTTPHandler() *booking_http.BookingHandler {
	return m.handler
}

func (m *Module) Close() {
	m.bookings.Close()
	m.artists.Close()
}
