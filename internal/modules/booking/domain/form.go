package domain

import (
	"slices"

	"github.com/saransh1220/artistly/internal/shared/utils"
)

var EventTypes = []string{"wedding", "birthday", "corporate", "festival", "concert", "private", "other"}

// Form is what a client fills in to request a booking.
type Form struct {
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
}

func (f Form) Validate() error {
	missing := utils.MissingFields(
		"clientName", f.ClientName,
		"clientEmail", f.ClientEmail,
		"clientPhone", f.ClientPhone,
		"eventDate", f.EventDate,
		"eventTime", f.EventTime,
		"eventType", f.EventType,
		"eventLocation", f.EventLocation,
	)
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if !slices.Contains(EventTypes, f.EventType) {
		return invalidEventType(f.EventType)
	}
	return nil
}

// NewBooking builds a pending booking for the given artist.
func (f Form) NewBooking(id, artistID, artistName, fee, createdAt string) Booking {
	return Booking{
		ID:              id,
		ArtistID:        artistID,
		ArtistName:      artistName,
		ClientName:      f.ClientName,
		ClientEmail:     f.ClientEmail,
		ClientPhone:     f.ClientPhone,
		EventDate:       f.EventDate,
		EventTime:       f.EventTime,
		EventType:       f.EventType,
		EventLocation:   f.EventLocation,
		GuestCount:      f.GuestCount,
		Duration:        f.Duration,
		SpecialRequests: f.SpecialRequests,
		Fee:             fee,
		Status:          StatusPending,
		CreatedAt:       createdAt,
	}
}
