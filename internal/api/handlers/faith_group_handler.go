package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// FaithGroupService is the faith group use case surface the handler needs
type FaithGroupService interface {
	List(ctx context.Context) ([]*entities.FaithGroup, error)
	GetByID(ctx context.Context, id string) (*entities.FaithGroup, error)
	Create(ctx context.Context, input *entities.FaithGroupInput) (*entities.FaithGroup, error)
	Update(ctx context.Context, id string, patch *entities.FaithGroupPatch) (*entities.FaithGroup, error)
	Delete(ctx context.Context, id string) error
}

// FaithGroupSearcher answers ranked faith group searches
type FaithGroupSearcher interface {
	Search(ctx context.Context, query entities.SearchQuery) ([]entities.SearchResult, error)
}

const (
	msgInvalidFaithGroup  = "Invalid faith group data"
	msgFaithGroupNotFound = "Faith group not found"
)

// FaithGroupHandler handles faith group HTTP requests
type FaithGroupHandler struct {
	groups        FaithGroupService
	searcher      FaithGroupSearcher
	defaultRadius float64
	metrics       *observability.Metrics
}

// NewFaithGroupHandler creates a new faith group handler. defaultRadius is
// applied to searches that send coordinates without a radius.
func NewFaithGroupHandler(groups FaithGroupService, searcher FaithGroupSearcher, defaultRadius float64, metrics *observability.Metrics) *FaithGroupHandler {
	return &FaithGroupHandler{
		groups:        groups,
		searcher:      searcher,
		defaultRadius: defaultRadius,
		metrics:       metrics,
	}
}

// SearchFaithGroups handles GET /api/faith-groups/search
func (h *FaithGroupHandler) SearchFaithGroups(w http.ResponseWriter, r *http.Request) {
	params, fields := parseSearchParams(r.URL.Query(), h.defaultRadius)
	if fields != nil {
		respondWithValidation(w, "Invalid search parameters", fields)
		return
	}

	results, err := h.searcher.Search(r.Context(), params.Query)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("faith group search failed")
		respondWithError(w, http.StatusInternalServerError, "Failed to search faith groups")
		return
	}
	if results == nil {
		results = []entities.SearchResult{}
	}
	observability.RecordSearchResults(r.Context(), h.metrics, len(results), params.Query.Coordinates != nil)

	if params.Location != "" {
		w.Header().Set("X-Search-Location", params.Location)
	}
	respondWithJSON(w, http.StatusOK, results)
}

// ListFaithGroups handles GET /api/faith-groups
func (h *FaithGroupHandler) ListFaithGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.List(r.Context())
	if err != nil {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("failed to list faith groups")
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch faith groups")
		return
	}
	if groups == nil {
		groups = []*entities.FaithGroup{}
	}
	respondWithJSON(w, http.StatusOK, groups)
}

// GetFaithGroup handles GET /api/faith-groups/{id}
func (h *FaithGroupHandler) GetFaithGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.groups.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithError(w, http.StatusNotFound, msgFaithGroupNotFound)
			return
		}
		respondWithAppError(r.Context(), w, err, "Failed to fetch faith group")
		return
	}
	respondWithJSON(w, http.StatusOK, group)
}

// CreateFaithGroup handles POST /api/faith-groups
func (h *FaithGroupHandler) CreateFaithGroup(w http.ResponseWriter, r *http.Request) {
	var input entities.FaithGroupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithValidation(w, msgInvalidFaithGroup, []apperrors.FieldError{{Field: "body", Message: "must be a valid JSON object"}})
		return
	}

	group, err := h.groups.Create(r.Context(), &input)
	if err != nil {
		respondWithAppError(r.Context(), w, err, "Failed to create faith group")
		return
	}
	respondWithJSON(w, http.StatusCreated, group)
}

// UpdateFaithGroup handles PATCH /api/faith-groups/{id}
func (h *FaithGroupHandler) UpdateFaithGroup(w http.ResponseWriter, r *http.Request) {
	var patch entities.FaithGroupPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithValidation(w, msgInvalidFaithGroup, []apperrors.FieldError{{Field: "body", Message: "must be a valid JSON object"}})
		return
	}

	group, err := h.groups.Update(r.Context(), r.PathValue("id"), &patch)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithError(w, http.StatusNotFound, msgFaithGroupNotFound)
			return
		}
		respondWithAppError(r.Context(), w, err, "Failed to update faith group")
		return
	}
	respondWithJSON(w, http.StatusOK, group)
}

// DeleteFaithGroup handles DELETE /api/faith-groups/{id}
func (h *FaithGroupHandler) DeleteFaithGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.groups.Delete(r.Context(), r.PathValue("id")); err != nil {
		if apperrors.IsNotFound(err) {
			respondWithError(w, http.StatusNotFound, msgFaithGroupNotFound)
			return
		}
		respondWithAppError(r.Context(), w, err, "Failed to delete faith group")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
