package handlers

import (
	"net/http"
	"strings"

	"github.com/faithfinder/backend/internal/domain/providers"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
)

// GeolocationHandler handles geolocation endpoints.
type GeolocationHandler struct {
	provider providers.GeolocationProvider
}

// NewGeolocationHandler creates a new geolocation handler.
func NewGeolocationHandler(provider providers.GeolocationProvider) *GeolocationHandler {
	return &GeolocationHandler{provider: provider}
}

type geocodeResponse struct {
	Location         string  `json:"location"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
}

// Geocode handles GET /api/geocode?location=...
func (h *GeolocationHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		respondWithError(w, http.StatusBadRequest, "Location parameter is required")
		return
	}

	addr, err := h.provider.Geocode(r.Context(), location)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("location", location).Msg("geocode failed")
		respondWithError(w, http.StatusInternalServerError, "Failed to geocode location")
		return
	}

	respondWithJSON(w, http.StatusOK, geocodeResponse{
		Location:         location,
		Latitude:         addr.Latitude,
		Longitude:        addr.Longitude,
		FormattedAddress: addr.FormattedAddress,
	})
}
