package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/faithfinder/backend/internal/api/middleware"
	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// Authenticator is the auth use case surface the handler needs
type Authenticator interface {
	Register(ctx context.Context, in *entities.RegisterInput) (*entities.User, *entities.Session, error)
	Login(ctx context.Context, in *entities.LoginInput) (*entities.User, *entities.Session, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*entities.User, error)
}

// AuthHandler serves the session auth endpoints
type AuthHandler struct {
	auth         Authenticator
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler. cookieSecure marks the session
// cookie Secure.
func NewAuthHandler(auth Authenticator, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in entities.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid registration data")
		return
	}

	user, session, err := h.auth.Register(r.Context(), &in)
	if err != nil {
		if apperrors.IsConflict(err) {
			respondWithError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		respondWithAppError(r.Context(), w, err, "Registration failed")
		return
	}

	h.setSessionCookie(w, session)
	respondWithJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in entities.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, session, err := h.auth.Login(r.Context(), &in)
	if err != nil {
		respondWithAppError(r.Context(), w, err, "Login failed")
		return
	}

	h.setSessionCookie(w, session)
	respondWithJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), middleware.SessionID(r)); err != nil {
		observability.LoggerFromContext(r.Context()).Warn().Err(err).Msg("failed to delete session")
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser handles GET /api/auth/user
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.CurrentUser(r.Context(), middleware.SessionID(r))
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		respondWithAppError(r.Context(), w, err, "Failed to fetch user")
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *entities.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
