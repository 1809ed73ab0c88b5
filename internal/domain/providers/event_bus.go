package providers

import (
	"context"

	"github.com/faithfinder/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.FaithGroupEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.FaithGroupEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

const (
	// EventChannelFaithGroupUpdates carries every faith group change
	EventChannelFaithGroupUpdates = "faith_group:updates"

	// EventChannelFaithGroupPrefix prefixes per-record channels
	EventChannelFaithGroupPrefix = "faith_group:"
)

// GetFaithGroupChannel returns the channel name for a single faith group
func GetFaithGroupChannel(id string) string {
	return EventChannelFaithGroupPrefix + id
}
