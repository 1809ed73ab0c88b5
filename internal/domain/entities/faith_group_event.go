package entities

import (
	"time"

	"github.com/google/uuid"
)

// FaithGroupEventType represents the kind of change made to a faith group
type FaithGroupEventType string

const (
	FaithGroupEventCreated  FaithGroupEventType = "created"
	FaithGroupEventUpdated  FaithGroupEventType = "updated"
	FaithGroupEventDeleted  FaithGroupEventType = "deleted"
	FaithGroupEventImported FaithGroupEventType = "imported"
)

// FaithGroupEvent is published whenever a faith group changes
type FaithGroupEvent struct {
	ID           string              `json:"id"`
	FaithGroupID string              `json:"faith_group_id"`
	EventType    FaithGroupEventType `json:"event_type"`
	Timestamp    time.Time           `json:"timestamp"`
}

// NewFaithGroupEvent creates a new faith group event
func NewFaithGroupEvent(faithGroupID string, eventType FaithGroupEventType) *FaithGroupEvent {
	return &FaithGroupEvent{
		ID:           uuid.New().String(),
		FaithGroupID: faithGroupID,
		EventType:    eventType,
		Timestamp:    time.Now().UTC(),
	}
}
