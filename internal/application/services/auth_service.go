package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
	"github.com/faithfinder/backend/internal/domain/repositories"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16

	minPasswordLength = 6
)

// AuthService handles registration, login and session lookup
type AuthService struct {
	users    repositories.UserRepository
	sessions providers.SessionStore
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository, sessions providers.SessionStore, ttl time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, ttl: ttl, now: time.Now}
}

// Register creates a user and opens a session for it
func (s *AuthService) Register(ctx context.Context, in *entities.RegisterInput) (*entities.User, *entities.Session, error) {
	if in == nil {
		return nil, nil, apperrors.NewValidationError("Invalid registration data")
	}
	email := normalizeEmail(in.Email)

	var fields []apperrors.FieldError
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		fields = append(fields, apperrors.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if len(in.Password) < minPasswordLength {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", minPasswordLength)})
	}
	if strings.TrimSpace(in.FirstName) == "" {
		fields = append(fields, apperrors.FieldError{Field: "firstName", Message: "is required"})
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields = append(fields, apperrors.FieldError{Field: "lastName", Message: "is required"})
	}
	if len(fields) > 0 {
		return nil, nil, apperrors.NewValidationError("Invalid registration data", fields...)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, nil, apperrors.NewConflictError("Email already exists")
	} else if !apperrors.IsNotFound(err) {
		return nil, nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, nil, apperrors.NewInternalError("failed to hash password", err)
	}

	now := s.now().UTC()
	user := &entities.User{
		ID:            uuid.New().String(),
		Email:         email,
		PasswordHash:  hash,
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Faith:         in.Faith,
		Location:      in.Location,
		UserType:      in.UserType,
		FaithPractice: in.FaithPractice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login verifies credentials and opens a session
func (s *AuthService) Login(ctx context.Context, in *entities.LoginInput) (*entities.User, *entities.Session, error) {
	if in == nil || in.Email == "" || in.Password == "" {
		return nil, nil, apperrors.NewValidationError("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil, apperrors.NewUnauthorizedError("Invalid email or password")
		}
		return nil, nil, err
	}

	ok, err := VerifyPassword(in.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	session, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Logout ends a session
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// CurrentUser resolves a session to its user
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*entities.User, error) {
	if sessionID == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewUnauthorizedError("Unauthorized")
		}
		return nil, err
	}
	if session.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewUnauthorizedError("Unauthorized")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) openSession(ctx context.Context, userID string) (*entities.Session, error) {
	session := &entities.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword derives an scrypt key and encodes it as "<hex key>.<salt>".
// The salt is random bytes in hex, and the hex text itself is the scrypt salt.
func HashPassword(password string) (string, error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(raw)
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + salt, nil
}

// VerifyPassword checks password against a HashPassword result in constant time
func VerifyPassword(password, stored string) (bool, error) {
	keyHex, salt, ok := strings.Cut(stored, ".")
	if !ok || salt == "" {
		return false, fmt.Errorf("malformed password hash")
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil || len(want) == 0 {
		return false, fmt.Errorf("malformed password hash")
	}
	got, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, len(want))
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
