package gateway

import (
	"net/http"

	"github.com/saransh1220/artistly/internal/gateway/middleware"
	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
)

// Router wraps http.ServeMux and applies the auth middleware per route
type Router struct {
	mux  *http.ServeMux
	auth *middleware.AuthMiddleware
}

func NewRouter(auth *middleware.AuthMiddleware) *Router {
	return &Router{
		mux:  http.NewServeMux(),
		auth: auth,
	}
}

// Mux returns the underlying http.ServeMux
func (r *Router) Mux() *http.ServeMux {
	return r.mux
}

func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Optional attaches the session when a valid token is sent.
func (r *Router) Optional(pattern string, handler http.HandlerFunc) {
	r.mux.Handle(pattern, r.auth.FlexibleAuth(handler))
}

// Authed requires a valid token and, when roles are given, one of those roles.
func (r *Router) Authed(pattern string, handler http.HandlerFunc, roles ...identity.Role) {
	var h http.Handler = handler
	if len(roles) > 0 {
		h = middleware.RequireRole(roles...)(h)
	}
	r.mux.Handle(pattern, r.auth.RequireAuth(h))
}
