package domain

import identity "github.com/saransh1220/artistly/internal/modules/identity/domain"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking is a client's request to hire an artist for one event.
// Fee is the artist's quoted label at booking time and is never recomputed.
type Booking struct {
	ID              string `json:"id"`
	ArtistID        string `json:"artistId"`
	ArtistName      string `json:"artistName"`
	ClientName      string `json:"clientName"`
	ClientEmail     string `json:"clientEmail"`
	ClientPhone     string `json:"clientPhone"`
	EventDate       string `json:"eventDate"`
	EventTime       string `json:"eventTime"`
	EventType       string `json:"eventType"`
	EventLocation   string `json:"eventLocation"`
	GuestCount      string `json:"guestCount,omitempty"`
	Duration        string `json:"duration,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	Fee             string `json:"fee"`
	Status          Status `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

func (b Booking) RecordID() string {
	return b.ID
}

// Transition moves a pending booking to confirmed or cancelled.
func (b *Booking) Transition(to Status) error {
	if b.Status != StatusPending || (to != StatusConfirmed && to != StatusCancelled) {
		return ErrInvalidTransition
	}
	b.Status = to
	return nil
}

// BelongsToArtist matches by display name or by account id.
func (b Booking) BelongsToArtist(s identity.Session) bool {
	return b.ArtistName == s.Name || b.ArtistID == s.ID
}

func (b Booking) BelongsToClient(s identity.Session) bool {
	return b.ClientEmail == s.Email
}

// Authorize decides whether s may move this booking to status to.
func (b Booking) Authorize(s identity.Session, to Status) error {
	switch {
	case s.Role.Can(identity.ActionManageAllBookings):
		return nil
	case s.Role.Can(identity.ActionManageOwnBookings) && b.BelongsToArtist(s):
		return nil
	case s.Role.Can(identity.ActionCancelOwnBookings) && to == StatusCancelled && b.BelongsToClient(s):
		return nil
	}
	return identity.ErrForbidden
}
