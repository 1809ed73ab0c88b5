package entities

import (
	"time"
)

// User represents a registered directory user
type User struct {
	ID            string    `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	FirstName     string    `json:"firstName" db:"first_name"`
	LastName      string    `json:"lastName" db:"last_name"`
	Faith         string    `json:"faith,omitempty" db:"faith"`
	Location      string    `json:"location,omitempty" db:"location"`
	UserType      string    `json:"userType,omitempty" db:"user_type"`
	FaithPractice string    `json:"faithPractice,omitempty" db:"faith_practice"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// RegisterInput is the sign-up payload
type RegisterInput struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Faith         string `json:"faith"`
	Location      string `json:"location"`
	UserType      string `json:"userType"`
	FaithPractice string `json:"faithPractice"`
}

// LoginInput is the sign-in payload
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is a server-side login session
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session has passed its expiry at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
