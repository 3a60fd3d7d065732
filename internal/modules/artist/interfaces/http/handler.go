package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/saransh1220/artistly/internal/gateway/middleware"
	"github.com/saransh1220/artistly/internal/modules/artist/domain"
	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/logging"
	"github.com/saransh1220/artistly/internal/shared/utils"
	"go.uber.org/zap"
)

const maxImageSize = 5 << 20

type ArtistService interface {
	Catalog() domain.Catalog
	ValidateStep(step int, sub domain.Submission) error
	Onboard(ctx context.Context, sub domain.Submission) (domain.Artist, error)
	Browse(filter domain.Filter) []domain.Artist
	Find(viewer *identity.Session, id string) (domain.Artist, error)
	List(viewer identity.Session) ([]domain.Artist, error)
	Approve(ctx context.Context, viewer identity.Session, id string) (domain.Artist, error)
	Reject(ctx context.Context, viewer identity.Session, id string) (domain.Artist, error)
	Delete(ctx context.Context, viewer identity.Session, id string) error
	SetAvailability(ctx context.Context, viewer identity.Session, id string, available bool) (domain.Artist, error)
	UploadProfileImage(ctx context.Context, viewer identity.Session, id string, src io.Reader) (domain.Artist, error)
}

type ArtistHandler struct {
	service ArtistService
	logger  *zap.Logger
}

func NewArtistHandler(service ArtistService, logger *zap.Logger) *ArtistHandler {
	return &ArtistHandler{service: service, logger: logger}
}

func (h *ArtistHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.service.Catalog())
}

// Browse lists approved artists. Query: category, location, priceRange, availability.
func (h *ArtistHandler) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.Filter{
		Category:   q.Get("category"),
		Location:   q.Get("location"),
		PriceRange: q.Get("priceRange"),
	}
	if v := q.Get("availability"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, "availability must be true or false", nil)
			return
		}
		filter.Availability = available
	}
	artists := h.service.Browse(filter)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": artists, "total": len(artists)})
}

func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	var viewer *identity.Session
	if s, ok := middleware.SessionFromContext(r.Context()); ok {
		viewer = &s
	}
	a, err := h.service.Find(viewer, r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, a)
}

// ListAll returns every artist regardless of status. Reviewers only.
func (h *ArtistHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s identity.Session) (any, error) {
		return h.service.List(s)
	})
}

func (h *ArtistHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var sub domain.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	a, err := h.service.Onboard(r.Context(), sub)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, a)
}

type validateStepRequest struct {
	Step int `json:"step"`
	domain.Submission
}

func (h *ArtistHandler) ValidateStep(w http.ResponseWriter, r *http.Request) {
	var req validateStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.service.ValidateStep(req.Step, req.Submission); err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"valid": true, "step": req.Step})
}

func (h *ArtistHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s identity.Session) (any, error) {
		return h.service.Approve(r.Context(), s, r.PathValue("id"))
	})
}

func (h *ArtistHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s identity.Session) (any, error) {
		return h.service.Reject(r.Context(), s, r.PathValue("id"))
	})
}

func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}
	if err := h.service.Delete(r.Context(), session, r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ArtistHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Availability *bool `json:"availability"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Availability == nil {
		utils.WriteError(w, http.StatusBadRequest, "availability is required", nil)
		return
	}
	h.withSession(w, r, func(s identity.Session) (any, error) {
		return h.service.SetAvailability(r.Context(), s, r.PathValue("id"), *body.Availability)
	})
}

// UploadImage accepts a multipart form with the picture under "image".
func (h *ArtistHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "image too large or invalid form", nil)
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "image is required", nil)
		return
	}
	defer file.Close()

	h.withSession(w, r, func(s identity.Session) (any, error) {
		return h.service.UploadProfileImage(r.Context(), s, r.PathValue("id"), file)
	})
}

func (h *ArtistHandler) withSession(w http.ResponseWriter, r *http.Request, fn func(identity.Session) (any, error)) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}
	out, err := fn(session)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (h *ArtistHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Please fill all required fields",
			"step":   verr.Step,
			"fields": verr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidStep):
		utils.WriteError(w, http.StatusBadRequest, "unknown onboarding step", nil)
	case errors.Is(err, domain.ErrArtistNotFound):
		utils.WriteError(w, http.StatusNotFound, "artist not found", nil)
	case errors.Is(err, domain.ErrInvalidTransition):
		utils.WriteError(w, http.StatusConflict, "artist is not pending review", nil)
	case errors.Is(err, identity.ErrForbidden):
		utils.WriteError(w, http.StatusForbidden, "forbidden", nil)
	default:
		logging.FromRequest(r, h.logger).Error("artist request failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again.", nil)
	}
}
