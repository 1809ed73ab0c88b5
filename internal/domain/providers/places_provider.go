package providers

import (
	"context"

	"github.com/faithfinder/backend/internal/domain/entities"
)

// PlacesProvider searches a third-party places directory for places of worship
type PlacesProvider interface {
	// Search runs a nearby search, or a text search when params.Query is set
	Search(ctx context.Context, params entities.PlaceSearchParams) (*entities.PlaceSearchPage, error)

	// Details fetches the full record for one place
	Details(ctx context.Context, placeID string) (*entities.PlaceDetails, error)
}
