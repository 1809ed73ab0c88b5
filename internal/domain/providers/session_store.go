package providers

import (
	"context"

	"github.com/faithfinder/backend/internal/domain/entities"
)

// SessionStore persists login sessions
type SessionStore interface {
	Save(ctx context.Context, session *entities.Session) error
	// Get returns a not found error for unknown or expired sessions
	Get(ctx context.Context, id string) (*entities.Session, error)
	Delete(ctx context.Context, id string) error
}
