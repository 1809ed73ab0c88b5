package database

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithfinder/backend/internal/adapters/memory"
	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
)

type mapCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, providers.ErrCacheMiss
	}
	return v, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func (c *mapCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (c *mapCache) SetNX(ctx context.Context, key string, value []byte, expirationSeconds int) (bool, error) {
	return true, nil
}

func TestCachedFaithGroupAdapter_ReadThrough(t *testing.T) {
	store := memory.NewFaithGroupStore(memory.SampleFaithGroups()...)
	cache := newMapCache()
	repo := NewCachedFaithGroupAdapter(store, cache, nil)
	ctx := context.Background()

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Contains(t, cache.data, faithGroupsAllKey)

	// Removing from the backing store is invisible until the cache is dropped.
	require.NoError(t, store.Delete(ctx, first[0].ID))
	cached, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, len(first))
	assert.Equal(t, first[0].Name, cached[0].Name)

	g, err := repo.GetByID(ctx, first[1].ID)
	require.NoError(t, err)
	assert.Equal(t, first[1].Name, g.Name)
	assert.Contains(t, cache.data, faithGroupCacheKey(first[1].ID))
}

func TestCachedFaithGroupAdapter_WritesInvalidate(t *testing.T) {
	store := memory.NewFaithGroupStore(memory.SampleFaithGroups()...)
	cache := newMapCache()
	repo := NewCachedFaithGroupAdapter(store, cache, nil)
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	target := all[0]
	_, err = repo.GetByID(ctx, target.ID)
	require.NoError(t, err)

	target.Name = "Renamed Fellowship"
	require.NoError(t, repo.Update(ctx, target))
	assert.NotContains(t, cache.data, faithGroupsAllKey)
	assert.NotContains(t, cache.data, faithGroupCacheKey(target.ID))

	g, err := repo.GetByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Fellowship", g.Name)

	require.NoError(t, repo.Create(ctx, &entities.FaithGroup{ID: "fresh", Name: "New Mosque", Religion: "Islam"}))
	assert.Contains(t, cache.deleted, faithGroupsAllKey)

	require.NoError(t, repo.Delete(ctx, "fresh"))
	_, err = repo.GetByID(ctx, "fresh")
	assert.Error(t, err)
}

func TestCachedFaithGroupAdapter_CorruptEntryFallsBack(t *testing.T) {
	store := memory.NewFaithGroupStore(memory.SampleFaithGroups()...)
	cache := newMapCache()
	cache.data[faithGroupsAllKey] = []byte("not json")
	repo := NewCachedFaithGroupAdapter(store, cache, nil)

	groups, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, groups, store.Len())
}
