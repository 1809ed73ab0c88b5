package memory

import (
	"context"
	"sync"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/repositories"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// FaithGroupStore is an in-memory faith group repository. Reads return deep
// copies in insertion order so callers always work on a private snapshot.
type FaithGroupStore struct {
	mu     sync.RWMutex
	byID   map[string]*entities.FaithGroup
	order  []string
	byPlID map[string]string
}

// NewFaithGroupStore creates an empty store, optionally preloaded with groups
func NewFaithGroupStore(groups ...*entities.FaithGroup) *FaithGroupStore {
	s := &FaithGroupStore{
		byID:   make(map[string]*entities.FaithGroup),
		byPlID: make(map[string]string),
	}
	for _, g := range groups {
		s.put(g.Clone())
	}
	return s
}

var _ repositories.FaithGroupRepository = (*FaithGroupStore)(nil)

// GetAll returns a snapshot of every faith group
func (s *FaithGroupStore) GetAll(ctx context.Context) ([]*entities.FaithGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.FaithGroup, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out, nil
}

// GetByID retrieves a faith group by ID
func (s *FaithGroupStore) GetByID(ctx context.Context, id string) (*entities.FaithGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Faith group not found")
	}
	return g.Clone(), nil
}

// GetByPlaceID retrieves a faith group by its imported place ID
func (s *FaithGroupStore) GetByPlaceID(ctx context.Context, placeID string) (*entities.FaithGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byPlID[placeID]
	if !ok {
		return nil, apperrors.NewNotFoundError("Faith group not found")
	}
	return s.byID[id].Clone(), nil
}

// Create stores a new faith group
func (s *FaithGroupStore) Create(ctx context.Context, group *entities.FaithGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[group.ID]; exists {
		return apperrors.NewConflictError("faith group already exists")
	}
	if group.GooglePlaceID != nil {
		if _, exists := s.byPlID[*group.GooglePlaceID]; exists {
			return apperrors.NewConflictError("place already imported")
		}
	}
	s.put(group.Clone())
	return nil
}

// Update replaces a stored faith group
func (s *FaithGroupStore) Update(ctx context.Context, group *entities.FaithGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.byID[group.ID]
	if !ok {
		return apperrors.NewNotFoundError("Faith group not found")
	}
	if old.GooglePlaceID != nil {
		delete(s.byPlID, *old.GooglePlaceID)
	}
	c := group.Clone()
	s.byID[c.ID] = c
	if c.GooglePlaceID != nil {
		s.byPlID[*c.GooglePlaceID] = c.ID
	}
	return nil
}

// Delete removes a faith group
func (s *FaithGroupStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.byID[id]
	if !ok {
		return apperrors.NewNotFoundError("Faith group not found")
	}
	delete(s.byID, id)
	if g.GooglePlaceID != nil {
		delete(s.byPlID, *g.GooglePlaceID)
	}
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored groups
func (s *FaithGroupStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// put must be called with the write lock held (or before the store is shared)
func (s *FaithGroupStore) put(g *entities.FaithGroup) {
	s.byID[g.ID] = g
	s.order = append(s.order, g.ID)
	if g.GooglePlaceID != nil {
		s.byPlID[*g.GooglePlaceID] = g.ID
	}
}
