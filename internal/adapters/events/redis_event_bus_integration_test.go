//go:build integration

package events

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
	redisclient "github.com/faithfinder/backend/internal/infrastructure/clients/redis"
)

func testRedis(t *testing.T) *redisclient.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not available at %s: %v", addr, err)
	}
	t.Cleanup(func() { rdb.Close() })
	return redisclient.NewClientFrom(rdb)
}

func TestRedisEventBus_PublishSubscribe(t *testing.T) {
	bus := NewRedisEventBus(testRedis(t))
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := bus.Subscribe(ctx, providers.EventChannelFaithGroupUpdates)
	require.NoError(t, err)

	sent := entities.NewFaithGroupEvent("fg-1", entities.FaithGroupEventUpdated)
	require.NoError(t, bus.Publish(context.Background(), providers.EventChannelFaithGroupUpdates, sent))

	select {
	case got := <-events:
		require.NotNil(t, got)
		assert.Equal(t, sent.ID, got.ID)
		assert.Equal(t, "fg-1", got.FaithGroupID)
		assert.Equal(t, entities.FaithGroupEventUpdated, got.EventType)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestRedisEventBus_CancelClosesChannel(t *testing.T) {
	bus := NewRedisEventBus(testRedis(t))
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events, err := bus.Subscribe(ctx, "faith_group:test-cancel")
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
