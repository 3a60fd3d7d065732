package application

import (
	artist "github.com/saransh1220/artistly/internal/modules/artist/domain"
	booking "github.com/saransh1220/artistly/internal/modules/booking/domain"
	"github.com/saransh1220/artistly/internal/modules/dashboard/domain"
	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
	storageapp "github.com/saransh1220/artistly/internal/modules/storage/application"
)

// Service derives the role dashboards from its own artist and booking views.
type Service struct {
	artists  *storageapp.Repository[artist.Artist]
	bookings *storageapp.Repository[booking.Booking]
}

func NewService(artists *storageapp.Repository[artist.Artist], bookings *storageapp.Repository[booking.Booking]) *Service {
	return &Service{artists: artists, bookings: bookings}
}

// Admin is the admin and manager overview over every record.
func (s *Service) Admin(viewer identity.Session) (domain.AdminDashboard, error) {
	if err := identity.Authorize(viewer, identity.ActionViewAllRecords); err != nil {
		return domain.AdminDashboard{}, err
	}
	artists := s.artists.List()
	bookings := s.bookings.List()
	return domain.AdminDashboard{
		Artists:     domain.CountArtists(artists),
		Bookings:    domain.CountBookings(bookings),
		Revenue:     domain.ConfirmedRevenue(bookings),
		AllArtists:  artists,
		AllBookings: bookings,
	}, nil
}

func (s *Service) Artist(viewer identity.Session) (domain.ArtistDashboard, error) {
	if viewer.Role != identity.RoleArtist {
		return domain.ArtistDashboard{}, identity.ErrForbidden
	}
	var d domain.ArtistDashboard
	if profile, ok := artist.ByEmail(s.artists.List(), viewer.Email); ok {
		d.Profile = &profile
	}
	d.Bookings = make([]booking.Booking, 0)
	for _, b := range s.bookings.List() {
		if b.BelongsToArtist(viewer) {
			d.Bookings = append(d.Bookings, b)
		}
	}
	d.Counts = domain.CountBookings(d.Bookings)
	d.Revenue = domain.ConfirmedRevenue(d.Bookings)
	return d, nil
}

// User lists the bookings placed under the viewer's email.
func (s *Service) User(viewer identity.Session) domain.UserDashboard {
	d := domain.UserDashboard{Bookings: make([]booking.Booking, 0)}
	for _, b := range s.bookings.List() {
		if b.BelongsToClient(viewer) {
			d.Bookings = append(d.Bookings, b)
		}
	}
	d.Counts = domain.CountBookings(d.Bookings)
	d.Spend = domain.ConfirmedRevenue(d.Bookings)
	return d
}
