package domain

import (
	artist "github.com/saransh1220/artistly/internal/modules/artist/domain"
	booking "github.com/saransh1220/artistly/internal/modules/booking/domain"
	"github.com/saransh1220/artistly/internal/shared/utils"
)

type ArtistCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type BookingCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

// CountArtists partitions artists by review status.
func CountArtists(artists []artist.Artist) ArtistCounts {
	c := ArtistCounts{Total: len(artists)}
	for _, a := range artists {
		switch a.Status {
		case artist.StatusPending:
			c.Pending++
		case artist.StatusApproved:
			c.Approved++
		case artist.StatusRejected:
			c.Rejected++
		}
	}
	return c
}

// CountBookings partitions bookings by status.
func CountBookings(bookings []booking.Booking) BookingCounts {
	c := BookingCounts{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case booking.StatusPending:
			c.Pending++
		case booking.StatusConfirmed:
			c.Confirmed++
		case booking.StatusCancelled:
			c.Cancelled++
		}
	}
	return c
}

// ConfirmedRevenue sums the parsed fee of every confirmed booking.
// Labels that do not start with a number contribute 0.
func ConfirmedRevenue(bookings []booking.Booking) int {
	total := 0
	for _, b := range bookings {
		if b.Status == booking.StatusConfirmed {
			total += utils.ParseFee(b.Fee)
		}
	}
	return total
}

// AdminDashboard is the admin and manager overview.
type AdminDashboard struct {
	Artists     ArtistCounts      `json:"artists"`
	Bookings    BookingCounts     `json:"bookings"`
	Revenue     int               `json:"revenue"`
	AllArtists  []artist.Artist   `json:"artistList"`
	AllBookings []booking.Booking `json:"bookingList"`
}

// ArtistDashboard is what a performer sees. Profile is nil until an artist
// record with the session's email exists.
type ArtistDashboard struct {
	Profile  *artist.Artist    `json:"profile"`
	Bookings []booking.Booking `json:"bookings"`
	Counts   BookingCounts     `json:"counts"`
	Revenue  int               `json:"revenue"`
}

type UserDashboard struct {
	Bookings []booking.Booking `json:"bookings"`
	Counts   BookingCounts     `json:"counts"`
	Spend    int               `json:"spend"`
}
