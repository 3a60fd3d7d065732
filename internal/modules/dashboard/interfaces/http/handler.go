package http

import (
	"errors"
	"net/http"

	"github.com/saransh1220/artistly/internal/gateway/middleware"
	"github.com/saransh1220/artistly/internal/modules/dashboard/domain"
	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
	"github.com/saransh1220/artistly/internal/shared/utils"
)

type DashboardService interface {
	Admin(viewer identity.Session) (domain.AdminDashboard, error)
	Artist(viewer identity.Session) (domain.ArtistDashboard, error)
	User(viewer identity.Session) domain.UserDashboard
}

type DashboardHandler struct {
	service DashboardService
}

func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}
	d, err := h.service.Admin(session)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, d)
}

func (h *DashboardHandler) Artist(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}
	d, err := h.service.Artist(session)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, d)
}

func (h *DashboardHandler) User(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.service.User(session))
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, identity.ErrForbidden) {
		utils.WriteError(w, http.StatusForbidden, "forbidden", nil)
		return
	}
	utils.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again.", nil)
}
