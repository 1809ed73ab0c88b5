package repositories

import (
	"context"

	"github.com/faithfinder/backend/internal/domain/entities"
)

// FaithGroupRepository defines the interface for faith group storage
type FaithGroupRepository interface {
	// GetAll returns every faith group in a deterministic enumeration order.
	// The returned records are owned by the caller.
	GetAll(ctx context.Context) ([]*entities.FaithGroup, error)

	// GetByID retrieves a faith group by ID
	GetByID(ctx context.Context, id string) (*entities.FaithGroup, error)

	// GetByPlaceID retrieves a faith group imported from a third-party place
	GetByPlaceID(ctx context.Context, placeID string) (*entities.FaithGroup, error)

	// Create stores a new faith group. ID and timestamps must already be set.
	Create(ctx context.Context, group *entities.FaithGroup) error

	// Update replaces a stored faith group
	Update(ctx context.Context, group *entities.FaithGroup) error

	// Delete removes a faith group
	Delete(ctx context.Context, id string) error
}

// FaithGroupSearchRepository is an external index of faith groups (e.g. Typesense)
// used for autocomplete. It is never the candidate source for ranking.
type FaithGroupSearchRepository interface {
	Index(ctx context.Context, group *entities.FaithGroup) error
	Delete(ctx context.Context, id string) error

	// SuggestReligions returns religion and denomination values matching prefix text
	SuggestReligions(ctx context.Context, text string, limit int) ([]string, error)

	// SuggestLocations returns "City, State" values matching text
	SuggestLocations(ctx context.Context, text string, limit int) ([]string, error)
}
