package memory

import (
	"context"
	"sync"
	"time"

	"github.com/faithfinder/backend/internal/domain/entities"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// SessionStore keeps sessions in process memory. Used when Redis is disabled.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]entities.Session
	now      func() time.Time
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entities.Session), now: time.Now}
}

// Save stores or replaces a session
func (s *SessionStore) Save(ctx context.Context, session *entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

// Get returns a live session. Expired sessions are dropped on access.
func (s *SessionStore) Get(ctx context.Context, id string) (*entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	if session.Expired(s.now()) {
		delete(s.sessions, id)
		return nil, apperrors.NewNotFoundError("session not found")
	}
	return &session, nil
}

// Delete removes a session
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
