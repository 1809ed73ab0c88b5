package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/faithfinder/backend/internal/domain/entities"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// UserStore is an in-memory user repository
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]entities.User
	byEmail map[string]string
}

// NewUserStore creates an empty user store
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]entities.User),
		byEmail: make(map[string]string),
	}
}

// Create stores a new user
func (s *UserStore) Create(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := s.byEmail[email]; exists {
		return apperrors.NewConflictError("Email already exists")
	}
	s.byID[user.ID] = *user
	s.byEmail[email] = user.ID
	return nil
}

// GetByID retrieves a user by ID
func (s *UserStore) GetByID(ctx context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return &u, nil
}

// GetByEmail retrieves a user by email
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	u := s.byID[id]
	return &u, nil
}
