package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saransh1220/artistly/internal/gateway/middleware"
	"github.com/saransh1220/artistly/internal/modules/identity/application"
	"github.com/saransh1220/artistly/internal/modules/identity/domain"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/logging"
	"github.com/saransh1220/artistly/internal/shared/utils"
	"go.uber.org/zap"
)

type IdentityService interface {
	Login(ctx context.Context, req application.LoginRequest) (application.AuthResult, error)
	Signup(ctx context.Context, req application.SignupRequest) (application.AuthResult, error)
	Logout(ctx context.Context) error
}

type IdentityHandler struct {
	service IdentityService
	logger  *zap.Logger
}

func NewIdentityHandler(service IdentityService, logger *zap.Logger) *IdentityHandler {
	return &IdentityHandler{service: service, logger: logger}
}

func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

func (h *IdentityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req application.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	res, err := h.service.Signup(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, res)
}

func (h *IdentityHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the session carried by the request token. The persisted current
// session is shared by every client, so it is never served over HTTP.
func (h *IdentityHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.writeError(w, r, domain.ErrNoSession)
		return
	}
	utils.WriteJSON(w, http.StatusOK, session)
}

func (h *IdentityHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		utils.WriteError(w, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, domain.ErrNoSession):
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
	case errors.Is(err, domain.ErrUserAlreadyExists):
		utils.WriteError(w, http.StatusConflict, "Email already exists. Please try another email.", nil)
	case errors.Is(err, domain.ErrMissingFields):
		utils.WriteError(w, http.StatusBadRequest, "Please fill all required fields", nil)
	case errors.Is(err, domain.ErrInvalidRole):
		utils.WriteError(w, http.StatusBadRequest, "invalid role", nil)
	default:
		logging.FromRequest(r, h.logger).Error("identity request failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong. Please try again.", nil)
	}
}
