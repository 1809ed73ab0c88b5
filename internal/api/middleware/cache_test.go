package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithfinder/backend/internal/domain/providers"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, ttls: map[string]int{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, providers.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.ttls[key] = expirationSeconds
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memoryCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (c *memoryCache) SetNX(ctx context.Context, key string, value []byte, expirationSeconds int) (bool, error) {
	return true, nil
}

func countingHandler(calls *atomic.Int32, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if loc := r.URL.Query().Get("location"); loc != "" {
			w.Header().Set("X-Search-Location", loc)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`[{"id":"1"}]`))
	})
}

func TestCacheMiddleware_MissThenHit(t *testing.T) {
	cache := newMemoryCache()
	var calls atomic.Int32
	h := NewCacheMiddleware(cache, nil).Middleware(countingHandler(&calls, http.StatusOK))

	target := "/api/faith-groups/search?religion=islam&location=Chicago"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	key := providers.HTTPCacheKeyPrefix + target
	require.Contains(t, cache.data, key)
	assert.Equal(t, 120, cache.ttls[key])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Chicago", rec.Header().Get("X-Search-Location"))
	assert.JSONEq(t, `[{"id":"1"}]`, rec.Body.String())
	assert.Equal(t, int32(1), calls.Load())
}

func TestCacheMiddleware_SkipsNonCacheable(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"post", http.MethodPost, "/api/faith-groups", http.StatusOK},
		{"auth route", http.MethodGet, "/api/auth/user", http.StatusOK},
		{"error response", http.MethodGet, "/api/faith-groups/missing", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMemoryCache()
			var calls atomic.Int32
			h := NewCacheMiddleware(cache, nil).Middleware(countingHandler(&calls, tt.status))

			for i := 0; i < 2; i++ {
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
				assert.NotEqual(t, "HIT", rec.Header().Get("X-Cache"))
			}
			assert.Empty(t, cache.data)
			assert.Equal(t, int32(2), calls.Load())
		})
	}
}

func TestCacheMiddleware_NilCache(t *testing.T) {
	var calls atomic.Int32
	h := NewCacheMiddleware(nil, nil).Middleware(countingHandler(&calls, http.StatusOK))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/faith-groups", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestCacheMiddleware_RuleSelection(t *testing.T) {
	m := NewCacheMiddleware(newMemoryCache(), nil)

	tests := []struct {
		path string
		ttl  int
		ok   bool
	}{
		{"/api/faith-groups", 60, true},
		{"/api/faith-groups/search", 120, true},
		{"/api/faith-groups/abc", 300, true},
		{"/api/suggestions/religions", 180, true},
		{"/api/geocode", 3600, true},
		{"/api/google-places/search", 0, false},
		{"/health", 0, false},
	}
	for _, tt := range tests {
		rule, ok := m.ruleFor(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.ttl, rule.TTLSeconds, tt.path)
	}
}

func TestCacheKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/faith-groups/abc", nil)
	assert.Equal(t, "http:cache:/api/faith-groups/abc", CacheKey(r))

	r = httptest.NewRequest(http.MethodGet, "/api/suggestions/religions?q=ch", nil)
	assert.Equal(t, "http:cache:/api/suggestions/religions?q=ch", CacheKey(r))
}
