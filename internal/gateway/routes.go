package gateway

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saransh1220/artistly/internal/gateway/middleware"
	artist_http "github.com/saransh1220/artistly/internal/modules/artist/interfaces/http"
	booking_http "github.com/saransh1220/artistly/internal/modules/booking/interfaces/http"
	changebus_http "github.com/saransh1220/artistly/internal/modules/changebus/interfaces/http"
	dashboard_http "github.com/saransh1220/artistly/internal/modules/dashboard/interfaces/http"
	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
	identity_http "github.com/saransh1220/artistly/internal/modules/identity/interfaces/http"
	"go.uber.org/zap"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthMiddleware   *middleware.AuthMiddleware
	IdentityHandler  *identity_http.IdentityHandler
	ArtistHandler    *artist_http.ArtistHandler
	BookingHandler   *booking_http.BookingHandler
	DashboardHandler *dashboard_http.DashboardHandler
	ChangeHandler    *changebus_http.ChangeHandler

	// UploadsDir is served under /uploads/ when profile images are stored locally
	UploadsDir     string
	AllowedOrigins string
	Logger         *zap.Logger
}

var reviewers = []identity.Role{identity.RoleAdmin, identity.RoleManager}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	r := NewRouter(config.AuthMiddleware)

	r.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("GET /metrics", promhttp.Handler())

	// Identity
	r.HandleFunc("POST /auth/login", config.IdentityHandler.Login)
	r.HandleFunc("POST /auth/signup", config.IdentityHandler.Signup)
	r.Authed("POST /auth/logout", config.IdentityHandler.Logout)
	r.Authed("GET /auth/me", config.IdentityHandler.Me)

	// Artists
	r.HandleFunc("GET /catalog", config.ArtistHandler.Catalog)
	r.HandleFunc("GET /artists", config.ArtistHandler.Browse)
	r.Optional("GET /artists/{id}", config.ArtistHandler.Get)
	r.HandleFunc("POST /onboarding", config.ArtistHandler.Onboard)
	r.HandleFunc("POST /onboarding/validate", config.ArtistHandler.ValidateStep)
	r.Authed("GET /admin/artists", config.ArtistHandler.ListAll, reviewers...)
	r.Authed("PATCH /artists/{id}/approve", config.ArtistHandler.Approve, reviewers...)
	r.Authed("PATCH /artists/{id}/reject", config.ArtistHandler.Reject, reviewers...)
	r.Authed("DELETE /artists/{id}", config.ArtistHandler.Delete, reviewers...)
	r.Authed("PATCH /artists/{id}/availability", config.ArtistHandler.SetAvailability)
	r.Authed("POST /artists/{id}/image", config.ArtistHandler.UploadImage)

	// Bookings
	r.Optional("POST /bookings", config.BookingHandler.Create)
	r.Authed("GET /bookings", config.BookingHandler.List)
	r.Authed("GET /bookings/{id}", config.BookingHandler.Get)
	r.Authed("PATCH /bookings/{id}/confirm", config.BookingHandler.Confirm)
	r.Authed("PATCH /bookings/{id}/cancel", config.BookingHandler.Cancel)

	// Dashboards
	r.Authed("GET /dashboard/admin", config.DashboardHandler.Admin, reviewers...)
	r.Authed("GET /dashboard/artist", config.DashboardHandler.Artist, identity.RoleArtist)
	r.Authed("GET /dashboard/user", config.DashboardHandler.User)

	// Change stream
	r.Optional("GET /ws", config.ChangeHandler.Stream)

	if config.UploadsDir != "" {
		r.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadsDir))))
	}

	return r.Mux()
}

// NewHandler wraps the routes in the global middleware chain.
func NewHandler(config RouterConfig) http.Handler {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var h http.Handler = SetupRoutes(config)
	h = middleware.PrometheusMiddleware(h)
	h = middleware.RequestLogger(logger)(h)
	h = chimw.Recoverer(h)
	h = chimw.RequestID(h)
	return middleware.CORS(config.AllowedOrigins)(h)
}
