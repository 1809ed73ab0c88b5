package services

import (
	"context"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
	"github.com/faithfinder/backend/internal/domain/repositories"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// DefaultPlaceSearchRadiusMeters is used when a nearby search omits the radius
const DefaultPlaceSearchRadiusMeters = 5000

// MaxImportBatch caps the number of place IDs accepted per import
const MaxImportBatch = 60

// FaithGroupCreator creates faith groups on behalf of the importer
type FaithGroupCreator interface {
	Import(ctx context.Context, input *entities.FaithGroupInput) (*entities.FaithGroup, error)
}

// PlacesImportService finds places of worship in a third-party directory
// and imports them as faith groups
type PlacesImportService struct {
	places  providers.PlacesProvider
	repo    repositories.FaithGroupRepository
	creator FaithGroupCreator
}

// NewPlacesImportService creates a new places import service
func NewPlacesImportService(places providers.PlacesProvider, repo repositories.FaithGroupRepository, creator FaithGroupCreator) *PlacesImportService {
	return &PlacesImportService{places: places, repo: repo, creator: creator}
}

// Search looks up candidate places and flags the ones already imported
func (s *PlacesImportService) Search(ctx context.Context, params entities.PlaceSearchParams) (*entities.PlaceSearchPage, error) {
	if params.RadiusMeters <= 0 {
		params.RadiusMeters = DefaultPlaceSearchRadiusMeters
	}

	page, err := s.places.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []entities.PlaceCandidate{}
	}

	for i := range page.Results {
		imported, err := s.alreadyImported(ctx, page.Results[i].PlaceID)
		if err != nil {
			return nil, err
		}
		page.Results[i].AlreadyImported = imported
	}
	return page, nil
}

// Import fetches details for each place and stores it as a faith group.
// Per-place failures are collected in the summary rather than aborting the batch.
func (s *PlacesImportService) Import(ctx context.Context, placeIDs []string) (*entities.ImportSummary, error) {
	if len(placeIDs) == 0 {
		return nil, apperrors.NewValidationError("Place IDs array is required",
			apperrors.FieldError{Field: "placeIds", Message: "must contain at least one place ID"})
	}
	if len(placeIDs) > MaxImportBatch {
		return nil, apperrors.NewValidationError("Too many place IDs",
			apperrors.FieldError{Field: "placeIds", Message: "must contain at most 60 place IDs"})
	}

	summary := &entities.ImportSummary{
		TotalRequested: len(placeIDs),
		Imported:       []*entities.FaithGroup{},
		Errors:         []entities.ImportError{},
	}
	logger := observability.LoggerFromContext(ctx)
	seen := make(map[string]bool, len(placeIDs))

	for _, placeID := range placeIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if placeID == "" || seen[placeID] {
			summary.SkippedCount++
			continue
		}
		seen[placeID] = true

		imported, err := s.alreadyImported(ctx, placeID)
		if err != nil {
			return nil, err
		}
		if imported {
			summary.SkippedCount++
			continue
		}

		details, err := s.places.Details(ctx, placeID)
		if err != nil {
			logger.Warn().Err(err).Str("place_id", placeID).Msg("failed to fetch place details")
			summary.Errors = append(summary.Errors, entities.ImportError{PlaceID: placeID, Error: "Could not fetch place details"})
			continue
		}

		group, err := s.creator.Import(ctx, PlaceToFaithGroupInput(details))
		if err != nil {
			logger.Warn().Err(err).Str("place_id", placeID).Msg("failed to import place")
			summary.Errors = append(summary.Errors, entities.ImportError{PlaceID: placeID, Error: err.Error()})
			continue
		}

		summary.Imported = append(summary.Imported, group)
		summary.ImportedCount++
	}

	logger.Info().
		Int("requested", summary.TotalRequested).
		Int("imported", summary.ImportedCount).
		Int("skipped", summary.SkippedCount).
		Int("failed", len(summary.Errors)).
		Msg("places import finished")

	return summary, nil
}

func (s *PlacesImportService) alreadyImported(ctx context.Context, placeID string) (bool, error) {
	if placeID == "" {
		return false, nil
	}
	_, err := s.repo.GetByPlaceID(ctx, placeID)
	switch {
	case err == nil:
		return true, nil
	case apperrors.IsNotFound(err):
		return false, nil
	default:
		return false, err
	}
}
