package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
)

// CacheInvalidationService drops cached HTTP responses when faith groups change
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  atomic.Bool
	once     sync.Once
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start subscribes to faith group updates and processes them in the background
func (s *CacheInvalidationService) Start() error {
	events, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelFaithGroupUpdates)
	if err != nil {
		return fmt.Errorf("failed to subscribe to faith group updates: %w", err)
	}

	s.started.Store(true)
	go s.processEvents(events)
	log.Info().Msg("cache invalidation service started")
	return nil
}

// Stop stops processing and waits for the worker to exit
func (s *CacheInvalidationService) Stop() {
	s.once.Do(func() {
		s.cancel()
		if s.started.Load() {
			<-s.done
		}
		log.Info().Msg("cache invalidation service stopped")
	})
}

func (s *CacheInvalidationService) processEvents(events <-chan *entities.FaithGroupEvent) {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.HandleEvent(event)
		}
	}
}

// HandleEvent invalidates every cached response that could include the changed record
func (s *CacheInvalidationService) HandleEvent(event *entities.FaithGroupEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger := log.With().
		Str("event_id", event.ID).
		Str("faith_group_id", event.FaithGroupID).
		Str("event_type", string(event.EventType)).
		Logger()

	// Any change can move a record in or out of a search radius or suggestion
	// list, so the collection caches go together with the record's own entry.
	for _, pattern := range InvalidationPatterns(event.FaithGroupID) {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			logger.Warn().Err(err).Str("pattern", pattern).Msg("failed to invalidate cache pattern")
		}
	}
	logger.Debug().Msg("invalidated faith group caches")
}

// InvalidationPatterns lists the HTTP cache key patterns affected by a change to id
func InvalidationPatterns(id string) []string {
	p := providers.HTTPCacheKeyPrefix
	return []string{
		p + "/api/faith-groups/" + id + "*",
		p + "/api/faith-groups/search*",
		p + "/api/faith-groups",
		p + "/api/faith-groups?*",
		p + "/api/suggestions/*",
	}
}
