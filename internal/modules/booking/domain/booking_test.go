package domain

import (
	"errors"
	"testing"

	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
	"github.com/stretchr/testify/assert"
)

func validForm() Form {
	return Form{
		ClientName:    "Rahul",
		ClientEmail:   "rahul@email.com",
		ClientPhone:   "+91 98765 00000",
		EventDate:     "2026-12-01",
		EventTime:     "19:00",
		EventType:     "wedding",
		EventLocation: "Mumbai",
	}
}

func TestForm_Validate(t *testing.T) {
	assert.NoError(t, validForm().Validate())

	f := validForm()
	f.ClientPhone = " "
	f.EventLocation = ""
	err := f.Validate()
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"clientPhone", "eventLocation"}, verr.Fields)
	assert.ErrorIs(t, err, ErrValidation)

	f = validForm()
	f.EventType = "funeral"
	assert.ErrorIs(t, f.Validate(), ErrInvalidEventType)
}

func TestForm_NewBooking(t *testing.T) {
	f := validForm()
	f.GuestCount = "200"
	b := f.NewBooking("b1", "1", "Priya Sharma", "₹25,000 - ₹50,000", "2026-10-18T10:00:00.000Z")

	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, "₹25,000 - ₹50,000", b.Fee)
	assert.Equal(t, "200", b.GuestCount)
	assert.Equal(t, "b1", b.RecordID())
}

func TestBooking_Transition(t *testing.T) {
	b := Booking{Status: StatusPending}
	assert.NoError(t, b.Transition(StatusConfirmed))
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.ErrorIs(t, b.Transition(StatusCancelled), ErrInvalidTransition)

	b = Booking{Status: StatusPending}
	assert.ErrorIs(t, b.Transition(StatusPending), ErrInvalidTransition)
}

func TestBooking_Authorize(t *testing.T) {
	b := Booking{ArtistID: "1", ArtistName: "Priya Sharma", ClientEmail: "rahul@email.com"}

	tests := []struct {
		name    string
		session identity.Session
		to      Status
		allowed bool
	}{
		{"admin confirms", identity.Session{Role: identity.RoleAdmin}, StatusConfirmed, true},
		{"manager cancels", identity.Session{Role: identity.RoleManager}, StatusCancelled, true},
		{"artist by name", identity.Session{ID: "x", Name: "Priya Sharma", Role: identity.RoleArtist}, StatusConfirmed, true},
		{"artist by id", identity.Session{ID: "1", Name: "Other", Role: identity.RoleArtist}, StatusCancelled, true},
		{"other artist", identity.Session{ID: "2", Name: "Rajesh", Role: identity.RoleArtist}, StatusConfirmed, false},
		{"client cancels", identity.Session{Email: "rahul@email.com", Role: identity.RoleUser}, StatusCancelled, true},
		{"client confirms", identity.Session{Email: "rahul@email.com", Role: identity.RoleUser}, StatusConfirmed, false},
		{"stranger cancels", identity.Session{Email: "x@email.com", Role: identity.RoleUser}, StatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.Authorize(tt.session, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, identity.ErrForbidden)
			}
		})
	}
}
