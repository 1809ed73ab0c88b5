package database

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
	"github.com/faithfinder/backend/internal/domain/repositories"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
)

// Cache TTLs (in seconds)
const (
	faithGroupByIDTTL = 300
	faithGroupsAllTTL = 60
)

const (
	faithGroupsAllKey = "faith_groups:all"
	cacheName         = "faith_groups"
)

func faithGroupCacheKey(id string) string {
	return "faith_group:" + id
}

// CachedFaithGroupAdapter wraps a FaithGroupRepository with a read-through cache
type CachedFaithGroupAdapter struct {
	adapter repositories.FaithGroupRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedFaithGroupAdapter creates a new cached faith group adapter. metrics may be nil.
func NewCachedFaithGroupAdapter(adapter repositories.FaithGroupRepository, cache providers.CacheProvider, metrics *observability.Metrics) repositories.FaithGroupRepository {
	return &CachedFaithGroupAdapter{
		adapter: adapter,
		cache:   cache,
		metrics: metrics,
	}
}

// GetAll returns every faith group, served from cache when possible
func (a *CachedFaithGroupAdapter) GetAll(ctx context.Context) ([]*entities.FaithGroup, error) {
	var groups []*entities.FaithGroup
	if a.lookup(ctx, faithGroupsAllKey, &groups) && groups != nil {
		return groups, nil
	}

	groups, err := a.adapter.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	a.store(ctx, faithGroupsAllKey, groups, faithGroupsAllTTL)
	return groups, nil
}

// GetByID retrieves a faith group, served from cache when possible
func (a *CachedFaithGroupAdapter) GetByID(ctx context.Context, id string) (*entities.FaithGroup, error) {
	key := faithGroupCacheKey(id)
	var group entities.FaithGroup
	if a.lookup(ctx, key, &group) {
		return &group, nil
	}

	g, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.store(ctx, key, g, faithGroupByIDTTL)
	return g, nil
}

// GetByPlaceID is not cached
func (a *CachedFaithGroupAdapter) GetByPlaceID(ctx context.Context, placeID string) (*entities.FaithGroup, error) {
	return a.adapter.GetByPlaceID(ctx, placeID)
}

// Create stores a faith group and drops the cached list
func (a *CachedFaithGroupAdapter) Create(ctx context.Context, group *entities.FaithGroup) error {
	if err := a.adapter.Create(ctx, group); err != nil {
		return err
	}
	a.invalidate(ctx, faithGroupsAllKey)
	return nil
}

// Update replaces a faith group and drops its cache entries
func (a *CachedFaithGroupAdapter) Update(ctx context.Context, group *entities.FaithGroup) error {
	if err := a.adapter.Update(ctx, group); err != nil {
		return err
	}
	a.invalidate(ctx, faithGroupCacheKey(group.ID), faithGroupsAllKey)
	return nil
}

// Delete removes a faith group and drops its cache entries
func (a *CachedFaithGroupAdapter) Delete(ctx context.Context, id string) error {
	if err := a.adapter.Delete(ctx, id); err != nil {
		return err
	}
	a.invalidate(ctx, faithGroupCacheKey(id), faithGroupsAllKey)
	return nil
}

func (a *CachedFaithGroupAdapter) lookup(ctx context.Context, key string, dest interface{}) bool {
	data, err := a.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, providers.ErrCacheMiss) {
			log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		observability.RecordCacheMiss(ctx, a.metrics, cacheName)
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to decode cached value")
		observability.RecordCacheMiss(ctx, a.metrics, cacheName)
		return false
	}
	observability.RecordCacheHit(ctx, a.metrics, cacheName)
	return true
}

func (a *CachedFaithGroupAdapter) store(ctx context.Context, key string, value interface{}, ttl int) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to encode cache value")
		return
	}
	if err := a.cache.Set(ctx, key, data, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (a *CachedFaithGroupAdapter) invalidate(ctx context.Context, keys ...string) {
	if err := a.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
