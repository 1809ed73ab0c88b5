package routes

import (
	"net/http"

	"github.com/faithfinder/backend/internal/api/handlers"
	"github.com/faithfinder/backend/internal/api/middleware"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	faithGroupHandler  *handlers.FaithGroupHandler
	geolocationHandler *handlers.GeolocationHandler
	suggestionHandler  *handlers.SuggestionHandler
	placesHandler      *handlers.PlacesHandler
	authHandler        *handlers.AuthHandler

	sessions        middleware.SessionResolver
	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// Config carries the handlers and cross-cutting dependencies of the router.
// CacheMiddleware may be nil to disable response caching.
type Config struct {
	FaithGroups     *handlers.FaithGroupHandler
	Geolocation     *handlers.GeolocationHandler
	Suggestions     *handlers.SuggestionHandler
	Places          *handlers.PlacesHandler
	Auth            *handlers.AuthHandler
	Sessions        middleware.SessionResolver
	CacheMiddleware *middleware.CacheMiddleware
	AllowedOrigins  []string
	Metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(cfg Config) *Router {
	return &Router{
		mux: http.NewServeMux(),

		faithGroupHandler:  cfg.FaithGroups,
		geolocationHandler: cfg.Geolocation,
		suggestionHandler:  cfg.Suggestions,
		placesHandler:      cfg.Places,
		authHandler:        cfg.Auth,

		sessions:        cfg.Sessions,
		cacheMiddleware: cfg.CacheMiddleware,
		allowedOrigins:  cfg.AllowedOrigins,
		metrics:         cfg.Metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	requireAuth := middleware.RequireAuth(r.sessions)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Faith group endpoints
	r.mux.HandleFunc("GET /api/faith-groups", r.faithGroupHandler.ListFaithGroups)
	r.mux.HandleFunc("GET /api/faith-groups/search", r.faithGroupHandler.SearchFaithGroups)
	r.mux.HandleFunc("GET /api/faith-groups/{id}", r.faithGroupHandler.GetFaithGroup)
	r.mux.Handle("POST /api/faith-groups", protected(r.faithGroupHandler.CreateFaithGroup))
	r.mux.Handle("PATCH /api/faith-groups/{id}", protected(r.faithGroupHandler.UpdateFaithGroup))
	r.mux.Handle("DELETE /api/faith-groups/{id}", protected(r.faithGroupHandler.DeleteFaithGroup))

	// Geolocation
	r.mux.HandleFunc("GET /api/geocode", r.geolocationHandler.Geocode)

	// Suggestions
	r.mux.HandleFunc("GET /api/suggestions/religions", r.suggestionHandler.Religions)
	r.mux.HandleFunc("GET /api/suggestions/locations", r.suggestionHandler.Locations)
	r.mux.HandleFunc("GET /api/suggestions/locations/admin", r.suggestionHandler.AdminLocations)

	// Places import (admin)
	r.mux.Handle("GET /api/google-places/search", protected(r.placesHandler.Search))
	r.mux.Handle("POST /api/google-places/import", protected(r.placesHandler.Import))

	// Auth
	r.mux.HandleFunc("POST /api/auth/register", r.authHandler.Register)
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/auth/logout", r.authHandler.Logout)
	r.mux.HandleFunc("GET /api/auth/user", r.authHandler.CurrentUser)

	// Apply middleware in reverse order (last middleware wraps first).
	// Nothing between Observability and the mux may replace the request,
	// or the route pattern is lost.
	var handler http.Handler = r.mux

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.Recovery(handler)
	handler = middleware.Observability(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORS(r.allowedOrigins)(handler)

	return handler
}
