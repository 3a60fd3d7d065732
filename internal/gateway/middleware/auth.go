package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/saransh1220/artistly/internal/modules/identity/domain"
	"github.com/saransh1220/artistly/internal/shared/utils"
)

type contextKey string

const ContextKeySession contextKey = "session"

// TokenValidator resolves a bearer token to a session.
type TokenValidator interface {
	ValidateToken(token string) (domain.Session, error)
}

type AuthMiddleware struct {
	tokens TokenValidator
}

func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// WithSession stores the authenticated session on the context.
func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, ContextKeySession, s)
}

// SessionFromContext returns the session put there by RequireAuth or FlexibleAuth.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(ContextKeySession).(domain.Session)
	return s, ok
}

// RequireAuth rejects requests without a valid bearer token. Websocket clients
// that cannot set headers may pass the token as ?token=.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r)
		if tokenStr == "" {
			tokenStr = r.URL.Query().Get("token")
		}
		if tokenStr == "" {
			utils.WriteError(w, http.StatusUnauthorized, "missing or invalid authorization", nil)
			return
		}

		session, err := m.tokens.ValidateToken(tokenStr)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// FlexibleAuth attaches the session when a valid token is present and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) FlexibleAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}
		session, err := m.tokens.ValidateToken(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// RequireRole must run after RequireAuth. It answers 403 unless the session
// holds one of roles.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok {
				utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
				return
			}
			if !allowed[session.Role] {
				utils.WriteError(w, http.StatusForbidden, "forbidden", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
