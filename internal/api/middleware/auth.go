package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/faithfinder/backend/internal/domain/entities"
)

// SessionCookieName is the cookie carrying the login session ID
const SessionCookieName = "sid"

// SessionResolver resolves a session ID to its user
type SessionResolver interface {
	CurrentUser(ctx context.Context, sessionID string) (*entities.User, error)
}

type userContextKey struct{}

// WithUser stores the authenticated user in ctx
func WithUser(ctx context.Context, user *entities.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the authenticated user, if any
func UserFromContext(ctx context.Context) (*entities.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*entities.User)
	return user, ok && user != nil
}

// SessionID returns the session cookie value, or "" when absent
func SessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// RequireAuth rejects requests without a live session with 401 AUTH_REQUIRED
func RequireAuth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolver.CurrentUser(r.Context(), SessionID(r))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"message": "Authentication required",
					"code":    "AUTH_REQUIRED",
				})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
