package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/geo"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// PlacesImporter searches a places directory and imports its entries
type PlacesImporter interface {
	Search(ctx context.Context, params entities.PlaceSearchParams) (*entities.PlaceSearchPage, error)
	Import(ctx context.Context, placeIDs []string) (*entities.ImportSummary, error)
}

// PlacesHandler serves the admin places import endpoints. A nil importer
// means no places API key is configured.
type PlacesHandler struct {
	importer PlacesImporter
}

// NewPlacesHandler creates a new places handler
func NewPlacesHandler(importer PlacesImporter) *PlacesHandler {
	return &PlacesHandler{importer: importer}
}

type importRequest struct {
	PlaceIDs []string `json:"placeIds"`
}

// Search handles GET /api/google-places/search
func (h *PlacesHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	params, fields := parsePlaceSearchParams(r)
	if fields != nil {
		respondWithValidation(w, "Invalid search parameters", fields)
		return
	}

	page, err := h.importer.Search(r.Context(), *params)
	if err != nil {
		respondWithAppError(r.Context(), w, err, "Failed to search places")
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// Import handles POST /api/google-places/import
func (h *PlacesHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithValidation(w, "Invalid import request", []apperrors.FieldError{{Field: "placeIds", Message: "must be an array of place IDs"}})
		return
	}

	summary, err := h.importer.Import(r.Context(), req.PlaceIDs)
	if err != nil {
		respondWithAppError(r.Context(), w, err, "Failed to import places")
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}

func (h *PlacesHandler) available(w http.ResponseWriter) bool {
	if h.importer == nil {
		respondWithCode(w, http.StatusServiceUnavailable, "Places API key is not configured", "MISSING_API_KEY")
		return false
	}
	return true
}

// parsePlaceSearchParams requires lat and lng unless a text query is given
func parsePlaceSearchParams(r *http.Request) (*entities.PlaceSearchParams, []apperrors.FieldError) {
	q := r.URL.Query()
	params := &entities.PlaceSearchParams{
		Query:     strings.TrimSpace(q.Get("query")),
		PageToken: strings.TrimSpace(q.Get("pageToken")),
	}

	var fields []apperrors.FieldError
	latRaw, lngRaw := strings.TrimSpace(q.Get("lat")), strings.TrimSpace(q.Get("lng"))
	switch {
	case latRaw == "" && lngRaw == "":
		if params.Query == "" {
			fields = append(fields, apperrors.FieldError{Field: "lat", Message: "lat and lng are required unless query is provided"})
		}
	default:
		point, err := geo.ParsePoint(latRaw, lngRaw)
		if err != nil {
			fields = append(fields, apperrors.FieldError{Field: "lat", Message: "lat and lng must be valid coordinates"})
		} else {
			params.Latitude, params.Longitude = point.Latitude, point.Longitude
		}
	}

	if radiusRaw := strings.TrimSpace(q.Get("radius")); radiusRaw != "" {
		radius, err := strconv.Atoi(radiusRaw)
		if err != nil || radius <= 0 {
			fields = append(fields, apperrors.FieldError{Field: "radius", Message: "must be a positive integer"})
		} else {
			params.RadiusMeters = radius
		}
	}

	if len(fields) > 0 {
		return nil, fields
	}
	return params, nil
}
