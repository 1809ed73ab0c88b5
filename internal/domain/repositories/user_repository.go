package repositories

import (
	"context"

	"github.com/faithfinder/backend/internal/domain/entities"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	// Create stores a new user; returns a conflict error when the email is taken
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByEmail retrieves a user by email (case-insensitive)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}
