package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/faithfinder/backend/internal/adapters/cache"
	"github.com/faithfinder/backend/internal/adapters/database"
	"github.com/faithfinder/backend/internal/adapters/events"
	"github.com/faithfinder/backend/internal/adapters/memory"
	"github.com/faithfinder/backend/internal/adapters/providers/geolocation"
	"github.com/faithfinder/backend/internal/adapters/providers/places"
	"github.com/faithfinder/backend/internal/adapters/search"
	"github.com/faithfinder/backend/internal/api/handlers"
	"github.com/faithfinder/backend/internal/api/middleware"
	"github.com/faithfinder/backend/internal/api/routes"
	"github.com/faithfinder/backend/internal/application/services"
	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
	"github.com/faithfinder/backend/internal/domain/repositories"
	"github.com/faithfinder/backend/internal/infrastructure/clients/postgres"
	"github.com/faithfinder/backend/internal/infrastructure/clients/redis"
	"github.com/faithfinder/backend/internal/infrastructure/clients/typesense"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
	"github.com/faithfinder/backend/pkg/config"
	"github.com/faithfinder/backend/pkg/retry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	// Cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Redis is optional: without it there is no shared cache, no change
	// events and sessions live in process memory.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(ctx, &cfg.Redis, retry.DefaultConfig())
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Redis client; continuing without Redis")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	var sessions providers.SessionStore = memory.NewSessionStore()
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
		eventBus = events.NewRedisEventBus(redisClient)
		sessions = cache.NewRedisSessionStore(redisClient)
		log.Info().Msg("Redis cache, event bus and session store enabled")
	}

	// Storage
	var baseRepo repositories.FaithGroupRepository
	var userRepo repositories.UserRepository
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pgClient, err := postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()

		if err := database.EnsureSchema(ctx, pgClient); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure database schema")
		}
		baseRepo = database.NewFaithGroupAdapter(pgClient)
		userRepo = database.NewUserAdapter(pgClient)
	default:
		var seed []*entities.FaithGroup
		if cfg.Storage.SeedSample {
			seed = memory.SampleFaithGroups()
		}
		baseRepo = memory.NewFaithGroupStore(seed...)
		userRepo = memory.NewUserStore()
	}
	log.Info().Str("driver", cfg.Storage.Driver).Msg("Faith group storage initialized")

	faithGroupRepo := baseRepo
	if cacheProvider != nil {
		faithGroupRepo = database.NewCachedFaithGroupAdapter(baseRepo, cacheProvider, metrics)
		services.NewCacheWarmingService(faithGroupRepo, services.DefaultWarmTopGroups).
			StartPeriodicWarming(ctx, 5*time.Minute)
	}

	// Typesense backs suggestions and is kept in sync on writes
	var searchRepo repositories.FaithGroupSearchRepository
	if cfg.Typesense.Enabled {
		tsClient, err := typesense.NewClient(ctx, &cfg.Typesense, retry.DefaultConfig())
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Typesense client; suggestions use the repository")
		} else if err := tsClient.InitSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to init Typesense schema; suggestions use the repository")
		} else {
			searchRepo = search.NewTypesenseAdapter(tsClient)
		}
	}

	var geolocationProvider providers.GeolocationProvider
	switch cfg.Geolocation.Provider {
	case "google":
		if cfg.Geolocation.APIKey == "" {
			log.Warn().Msg("GEOLOCATION_API_KEY is not set; using mock geolocation provider")
			geolocationProvider = geolocation.NewMockGeolocationProvider()
		} else {
			geolocationProvider = geolocation.NewGoogleGeolocationProvider(cfg.Geolocation.APIKey, cacheProvider)
		}
	default:
		geolocationProvider = geolocation.NewMockGeolocationProvider()
	}

	// Services
	faithGroupService := services.NewFaithGroupService(faithGroupRepo, searchRepo, eventBus)
	searchService := services.NewSearchService(faithGroupRepo)
	suggestionService := services.NewSuggestionService(faithGroupRepo, searchRepo, geolocationProvider)
	authService := services.NewAuthService(userRepo, sessions, cfg.Session.TTL)

	var placesImporter handlers.PlacesImporter
	if cfg.Places.APIKey != "" {
		placesClient := places.NewGooglePlacesClient(cfg.Places.APIKey, cfg.Places.BaseURL, nil)
		placesImporter = services.NewPlacesImportService(placesClient, faithGroupRepo, faithGroupService)
	} else {
		log.Warn().Msg("PLACES_API_KEY is not set; places import disabled")
	}

	var cacheInvalidationService *services.CacheInvalidationService
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil && eventBus != nil {
		cacheInvalidationService = services.NewCacheInvalidationService(cacheProvider, eventBus)
		if err := cacheInvalidationService.Start(); err != nil {
			log.Warn().Err(err).Msg("Failed to start cache invalidation service; HTTP response cache disabled")
			cacheInvalidationService = nil
		} else {
			// Response caching is only safe while change events evict stale entries
			cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		}
	}

	// Set up router
	router := routes.NewRouter(routes.Config{
		FaithGroups:     handlers.NewFaithGroupHandler(faithGroupService, searchService, cfg.Search.DefaultRadiusMiles, metrics),
		Geolocation:     handlers.NewGeolocationHandler(geolocationProvider),
		Suggestions:     handlers.NewSuggestionHandler(suggestionService),
		Places:          handlers.NewPlacesHandler(placesImporter),
		Auth:            handlers.NewAuthHandler(authService, cfg.Session.CookieSecure),
		Sessions:        authService,
		CacheMiddleware: cacheMiddleware,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if cacheInvalidationService != nil {
		cacheInvalidationService.Stop()
	}
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing event bus")
		}
	}

	log.Info().Msg("Server stopped")
}
