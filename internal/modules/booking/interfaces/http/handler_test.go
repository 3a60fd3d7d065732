package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saransh1220/artistly/internal/gateway/middleware"
	artist "github.com/saransh1220/artistly/internal/modules/artist/domain"
	"github.com/saransh1220/artistly/internal/modules/booking/domain"
	booking_http "github.com/saransh1220/artistly/internal/modules/booking/interfaces/http"
	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Request(ctx context.Context, artistID string, form domain.Form) (domain.Booking, error) {
	args := m.Called(ctx, artistID, form)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockBookingService) Confirm(ctx context.Context, viewer identity.Session, id string) (domain.Booking, error) {
	args := m.Called(ctx, viewer, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, viewer identity.Session, id string) (domain.Booking, error) {
	args := m.Called(ctx, viewer, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockBookingService) Get(viewer identity.Session, id string) (domain.Booking, error) {
	args := m.Called(viewer, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockBookingService) List(viewer identity.Session) ([]domain.Booking, error) {
	args := m.Called(viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListForClient(email string) []domain.Booking {
	return m.Called(email).Get(0).([]domain.Booking)
}

func (m *MockBookingService) ListForArtist(viewer identity.Session) []domain.Booking {
	return m.Called(viewer).Get(0).([]domain.Booking)
}

var (
	manager = identity.Session{ID: "2", Name: "Manager", Email: "manager@artistly.com", Role: identity.RoleManager}
	priya   = identity.Session{ID: "3", Name: "Priya Sharma", Email: "priya.sharma@email.com", Role: identity.RoleArtist}
	rahul   = identity.Session{ID: "4", Name: "Rahul", Email: "rahul@email.com", Role: identity.RoleUser}
)

func withSession(r *http.Request, s identity.Session) *http.Request {
	return r.WithContext(middleware.WithSession(r.Context(), s))
}

func TestCreate(t *testing.T) {
	svc := new(MockBookingService)
	h := booking_http.NewBookingHandler(svc, zap.NewNop())

	form := domain.Form{ClientName: "Rahul", ClientEmail: "rahul@email.com", EventType: "wedding"}
	svc.On("Request", mock.Anything, "1", form).Return(domain.Booking{ID: "b1", Status: domain.StatusPending}, nil)
	svc.On("Request", mock.Anything, "404", form).Return(domain.Booking{}, artist.ErrArtistNotFound)

	body := func(artistID string) *bytes.Reader {
		raw, err := json.Marshal(map[string]string{
			"artistId": artistID, "clientName": "Rahul", "clientEmail": "rahul@email.com", "eventType": "wedding",
		})
		require.NoError(t, err)
		return bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/bookings", body("1")))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)

	w = httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/bookings", body("404")))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/bookings", body("")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestCreate_ValidationError(t *testing.T) {
	svc := new(MockBookingService)
	h := booking_http.NewBookingHandler(svc, zap.NewNop())
	svc.On("Request", mock.Anything, "1", mock.Anything).
		Return(domain.Booking{}, &domain.ValidationError{Fields: []string{"eventDate"}})

	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(`{"artistId":"1"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill all required fields")
	assert.Contains(t, w.Body.String(), "eventDate")
}

func TestConfirmCancel(t *testing.T) {
	svc := new(MockBookingService)
	h := booking_http.NewBookingHandler(svc, zap.NewNop())

	svc.On("Confirm", mock.Anything, priya, "b1").Return(domain.Booking{ID: "b1", Status: domain.StatusConfirmed}, nil)
	svc.On("Confirm", mock.Anything, rahul, "b1").Return(domain.Booking{}, identity.ErrForbidden)
	svc.On("Cancel", mock.Anything, rahul, "b1").Return(domain.Booking{}, domain.ErrInvalidTransition)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		session *identity.Session
		want    int
	}{
		{"artist confirms", h.Confirm, &priya, http.StatusOK},
		{"user confirms", h.Confirm, &rahul, http.StatusForbidden},
		{"cancel after confirm", h.Cancel, &rahul, http.StatusConflict},
		{"anonymous", h.Confirm, nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/bookings/b1", nil)
			if tt.session != nil {
				req = withSession(req, *tt.session)
			}
			req.SetPathValue("id", "b1")
			w := httptest.NewRecorder()
			tt.handler(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestList_ScopedByRole(t *testing.T) {
	svc := new(MockBookingService)
	h := booking_http.NewBookingHandler(svc, zap.NewNop())

	svc.On("List", manager).Return([]domain.Booking{{ID: "b1"}, {ID: "b2"}, {ID: "b3"}}, nil)
	svc.On("ListForArtist", priya).Return([]domain.Booking{{ID: "b1"}})
	svc.On("ListForClient", rahul.Email).Return([]domain.Booking{{ID: "b1"}, {ID: "b2"}})

	for session, total := range map[identity.Session]int{manager: 3, priya: 1, rahul: 2} {
		w := httptest.NewRecorder()
		h.List(w, withSession(httptest.NewRequest(http.MethodGet, "/bookings", nil), session))
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, total, body.Total, session.Name)
	}
	svc.AssertExpectations(t)
}

func TestGet(t *testing.T) {
	svc := new(MockBookingService)
	h := booking_http.NewBookingHandler(svc, zap.NewNop())
	svc.On("Get", rahul, "b9").Return(domain.Booking{}, domain.ErrBookingNotFound)

	req := withSession(httptest.NewRequest(http.MethodGet, "/bookings/b9", nil), rahul)
	req.SetPathValue("id", "b9")
	w := httptest.NewRecorder()
	h.Get(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
