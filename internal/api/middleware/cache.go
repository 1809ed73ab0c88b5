package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/faithfinder/backend/internal/domain/providers"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
)

// httpCacheName labels response cache hit/miss metrics
const httpCacheName = "http"

// CacheRule enables response caching for a path. Prefix rules match any path
// starting with Path; the longest matching rule wins.
type CacheRule struct {
	Path       string
	Prefix     bool
	TTLSeconds int
}

// DefaultCacheRules are the cacheable read routes
var DefaultCacheRules = []CacheRule{
	{Path: "/api/faith-groups", TTLSeconds: 60},
	{Path: "/api/faith-groups/search", TTLSeconds: 120},
	{Path: "/api/faith-groups/", Prefix: true, TTLSeconds: 300},
	{Path: "/api/suggestions/", Prefix: true, TTLSeconds: 180},
	{Path: "/api/geocode", TTLSeconds: 3600},
}

// CacheMiddleware provides HTTP response caching
type CacheMiddleware struct {
	cache   providers.CacheProvider
	rules   []CacheRule
	metrics *observability.Metrics
}

// NewCacheMiddleware creates a cache middleware with DefaultCacheRules
func NewCacheMiddleware(cache providers.CacheProvider, metrics *observability.Metrics) *CacheMiddleware {
	return NewCacheMiddlewareWithRules(cache, metrics, DefaultCacheRules)
}

// NewCacheMiddlewareWithRules creates a cache middleware with custom rules
func NewCacheMiddlewareWithRules(cache providers.CacheProvider, metrics *observability.Metrics, rules []CacheRule) *CacheMiddleware {
	return &CacheMiddleware{cache: cache, rules: rules, metrics: metrics}
}

// cachedResponse is the stored form of a response body plus the headers
// needed to replay it
type cachedResponse struct {
	ContentType    string `json:"content_type"`
	SearchLocation string `json:"search_location,omitempty"`
	Body           []byte `json:"body"`
}

// Middleware returns the cache middleware handler
func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || m.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		rule, ok := m.ruleFor(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		logger := observability.LoggerFromContext(ctx)
		key := CacheKey(r)

		if data, err := m.cache.Get(ctx, key); err == nil {
			var entry cachedResponse
			if err := json.Unmarshal(data, &entry); err == nil {
				observability.RecordCacheHit(ctx, m.metrics, httpCacheName)
				writeCached(w, &entry)
				return
			}
			logger.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
		}

		observability.RecordCacheMiss(ctx, m.metrics, httpCacheName)
		w.Header().Set("X-Cache", "MISS")

		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           &bytes.Buffer{},
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode != http.StatusOK || recorder.body.Len() == 0 {
			return
		}

		entry := cachedResponse{
			ContentType:    w.Header().Get("Content-Type"),
			SearchLocation: w.Header().Get("X-Search-Location"),
			Body:           recorder.body.Bytes(),
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return
		}
		if err := m.cache.Set(ctx, key, data, rule.TTLSeconds); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("Failed to cache response")
		}
	})
}

func writeCached(w http.ResponseWriter, entry *cachedResponse) {
	h := w.Header()
	h.Set("X-Cache", "HIT")
	if entry.ContentType != "" {
		h.Set("Content-Type", entry.ContentType)
	}
	if entry.SearchLocation != "" {
		h.Set("X-Search-Location", entry.SearchLocation)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(entry.Body)
}

func (m *CacheMiddleware) ruleFor(path string) (CacheRule, bool) {
	var best CacheRule
	found := false
	for _, rule := range m.rules {
		matches := path == rule.Path || (rule.Prefix && strings.HasPrefix(path, rule.Path))
		if matches && (!found || len(rule.Path) > len(best.Path)) {
			best = rule
			found = true
		}
	}
	return best, found
}

// CacheKey builds the response cache key for r. Keys are the raw path and
// query so change events can invalidate them by pattern.
func CacheKey(r *http.Request) string {
	key := providers.HTTPCacheKeyPrefix + r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}
	return key
}

// responseRecorder captures the response for caching
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	written    bool
}

// WriteHeader captures the status code
func (r *responseRecorder) WriteHeader(statusCode int) {
	if !r.written {
		r.statusCode = statusCode
		r.ResponseWriter.WriteHeader(statusCode)
		r.written = true
	}
}

// Write captures the response body and writes to the client
func (r *responseRecorder) Write(data []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}
