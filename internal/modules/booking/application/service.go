package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	artist "github.com/saransh1220/artistly/internal/modules/artist/domain"
	"github.com/saransh1220/artistly/internal/modules/booking/domain"
	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
	storageapp "github.com/saransh1220/artistly/internal/modules/storage/application"
	"go.uber.org/zap"
)

// Service handles booking requests and their confirmation flow.
type Service struct {
	bookings *storageapp.Repository[domain.Booking]
	artists  *storageapp.Repository[artist.Artist]
	logger   *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewService(bookings *storageapp.Repository[domain.Booking], artists *storageapp.Repository[artist.Artist], logger *zap.Logger) *Service {
	return &Service{
		bookings: bookings,
		artists:  artists,
		logger:   logger.With(zap.String("component", "booking")),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Request books an approved artist. The artist's current quote is copied onto the booking.
func (s *Service) Request(ctx context.Context, artistID string, form domain.Form) (domain.Booking, error) {
	if err := form.Validate(); err != nil {
		return domain.Booking{}, err
	}
	a, ok := s.artists.Get(artistID)
	if !ok || a.Status != artist.StatusApproved {
		return domain.Booking{}, artist.ErrArtistNotFound
	}

	b := form.NewBooking(s.newID(), a.ID, a.Name, a.QuotedFee(), s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"))
	if err := s.bookings.Add(ctx, b); err != nil {
		return domain.Booking{}, fmt.Errorf("store booking: %w", err)
	}
	s.logger.Info("booking requested",
		zap.String("booking_id", b.ID),
		zap.String("artist_id", a.ID),
		zap.String("event_type", b.EventType),
	)
	return b, nil
}

func (s *Service) Confirm(ctx context.Context, viewer identity.Session, id string) (domain.Booking, error) {
	return s.transition(ctx, viewer, id, domain.StatusConfirmed)
}

func (s *Service) Cancel(ctx context.Context, viewer identity.Session, id string) (domain.Booking, error) {
	return s.transition(ctx, viewer, id, domain.StatusCancelled)
}

func (s *Service) transition(ctx context.Context, viewer identity.Session, id string, to domain.Status) (domain.Booking, error) {
	current, ok := s.bookings.Get(id)
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	if err := current.Authorize(viewer, to); err != nil {
		return domain.Booking{}, err
	}

	// the cached check fails fast; the persisted record decides
	found, err := s.bookings.Update(ctx, id, func(b *domain.Booking) error {
		if err := b.Authorize(viewer, to); err != nil {
			return err
		}
		return b.Transition(to)
	})
	if err != nil {
		return domain.Booking{}, err
	}
	if !found {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	updated, _ := s.bookings.Get(id)
	s.logger.Info("booking status changed",
		zap.String("booking_id", id),
		zap.String("status", string(to)),
		zap.String("by", viewer.ID),
	)
	return updated, nil
}

// Get returns a booking visible to viewer.
func (s *Service) Get(viewer identity.Session, id string) (domain.Booking, error) {
	b, ok := s.bookings.Get(id)
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	if viewer.Role.Can(identity.ActionViewAllRecords) || b.BelongsToClient(viewer) ||
		(viewer.Role == identity.RoleArtist && b.BelongsToArtist(viewer)) {
		return b, nil
	}
	return domain.Booking{}, domain.ErrBookingNotFound
}

// List returns every booking. Admins and managers only.
func (s *Service) List(viewer identity.Session) ([]domain.Booking, error) {
	if err := identity.Authorize(viewer, identity.ActionViewAllRecords); err != nil {
		return nil, err
	}
	return s.bookings.List(), nil
}

// ListForClient returns the bookings placed under email.
func (s *Service) ListForClient(email string) []domain.Booking {
	return s.filter(func(b domain.Booking) bool { return b.ClientEmail == email })
}

// ListForArtist returns the bookings addressed to the artist behind viewer.
func (s *Service) ListForArtist(viewer identity.Session) []domain.Booking {
	return s.filter(func(b domain.Booking) bool { return b.BelongsToArtist(viewer) })
}

func (s *Service) filter(keep func(domain.Booking) bool) []domain.Booking {
	out := make([]domain.Booking, 0)
	for _, b := range s.bookings.List() {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
