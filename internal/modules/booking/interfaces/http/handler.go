package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saransh1220/artistly/internal/gateway/middleware"
	artist "github.com/saransh1220/artistly/internal/modules/artist/domain"
	"github.com/saransh1220/artistly/internal/modules/booking/domain"
	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/logging"
	"github.com/saransh1220/artistly/internal/shared/utils"
	"go.uber.org/zap"
)

type BookingService interface {
	Request(ctx context.Context, artistID string, form domain.Form) (domain.Booking, error)
	Confirm(ctx context.Context, viewer identity.Session, id string) (domain.Booking, error)
	Cancel(ctx context.Context, viewer identity.Session, id string) (domain.Booking, error)
	Get(viewer identity.Session, id string) (domain.Booking, error)
	List(viewer identity.Session) ([]domain.Booking, error)
	ListForClient(email string) []domain.Booking
	ListForArtist(viewer identity.Session) []domain.Booking
}

type BookingHandler struct {
	service BookingService
	logger  *zap.Logger
}

func NewBookingHandler(service BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

type createBookingRequest struct {
	ArtistID string `json:"artistId"`
	domain.Form
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.ArtistID == "" {
		utils.WriteError(w, http.StatusBadRequest, "artistId is required", nil)
		return
	}
	b, err := h.service.Request(r.Context(), req.ArtistID, req.Form)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, b)
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Confirm)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Cancel)
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, identity.Session, string) (domain.Booking, error)) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}
	b, err := fn(r.Context(), session, r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, b)
}

// List returns the bookings the caller may see: all of them for admins and
// managers, the artist's own for artists, the client's own otherwise.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}

	var bookings []domain.Booking
	switch {
	case session.Role.Can(identity.ActionViewAllRecords):
		all, err := h.service.List(session)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		bookings = all
	case session.Role == identity.RoleArtist:
		bookings = h.service.ListForArtist(session)
	default:
		bookings = h.service.ListForClient(session.Email)
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": bookings, "total": len(bookings)})
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}
	b, err := h.service.Get(session, r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Please fill all required fields",
			"fields": verr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidEventType):
		utils.WriteError(w, http.StatusBadRequest, "unknown event type", nil)
	case errors.Is(err, artist.ErrArtistNotFound):
		utils.WriteError(w, http.StatusNotFound, "artist not found", nil)
	case errors.Is(err, domain.ErrBookingNotFound):
		utils.WriteError(w, http.StatusNotFound, "booking not found", nil)
	case errors.Is(err, domain.ErrInvalidTransition):
		utils.WriteError(w, http.StatusConflict, "booking is not pending", nil)
	case errors.Is(err, identity.ErrForbidden):
		utils.WriteError(w, http.StatusForbidden, "forbidden", nil)
	default:
		logging.FromRequest(r, h.logger).Error("booking request failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again.", nil)
	}
}
