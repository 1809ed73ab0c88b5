package handlers

import (
	"context"
	"net/http"
)

// Suggester produces autocomplete suggestions
type Suggester interface {
	Religions(ctx context.Context, q string) ([]string, error)
	Locations(ctx context.Context, q string) ([]string, error)
	AdminLocations(ctx context.Context, q string) ([]string, error)
}

// SuggestionHandler serves the autocomplete endpoints
type SuggestionHandler struct {
	suggester Suggester
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggester Suggester) *SuggestionHandler {
	return &SuggestionHandler{suggester: suggester}
}

// Religions handles GET /api/suggestions/religions?q=
func (h *SuggestionHandler) Religions(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.suggester.Religions)
}

// Locations handles GET /api/suggestions/locations?q=
func (h *SuggestionHandler) Locations(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.suggester.Locations)
}

// AdminLocations handles GET /api/suggestions/locations/admin?q=
func (h *SuggestionHandler) AdminLocations(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.suggester.AdminLocations)
}

func (h *SuggestionHandler) serve(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) ([]string, error)) {
	suggestions, err := fn(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondWithAppError(r.Context(), w, err, "Failed to fetch suggestions")
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	respondWithJSON(w, http.StatusOK, suggestions)
}
