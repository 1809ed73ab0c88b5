package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/repositories"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
)

// DefaultWarmTopGroups is how many of the best rated groups get their detail entry warmed
const DefaultWarmTopGroups = 20

// CacheWarmingService preloads the read-through repository cache so the
// first list and detail requests after a deploy or invalidation are hits.
type CacheWarmingService struct {
	repo repositories.FaithGroupRepository
	top  int
}

// NewCacheWarmingService creates a warmer over a cached repository.
// top <= 0 uses DefaultWarmTopGroups.
func NewCacheWarmingService(repo repositories.FaithGroupRepository, top int) *CacheWarmingService {
	if top <= 0 {
		top = DefaultWarmTopGroups
	}
	return &CacheWarmingService{repo: repo, top: top}
}

// WarmCache loads the full list and the top rated groups by ID
func (s *CacheWarmingService) WarmCache(ctx context.Context) (int, error) {
	groups, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load faith groups: %w", err)
	}

	logger := observability.LoggerFromContext(ctx)
	warmed := 0
	for _, g := range topRated(groups, s.top) {
		if _, err := s.repo.GetByID(ctx, g.ID); err != nil {
			logger.Warn().Err(err).Str("id", g.ID).Msg("Failed to warm faith group")
			continue
		}
		warmed++
	}

	logger.Info().Int("groups", len(groups)).Int("warmed", warmed).Msg("Warmed faith group cache")
	return warmed, nil
}

// StartPeriodicWarming warms once and then on every tick until ctx is done
func (s *CacheWarmingService) StartPeriodicWarming(ctx context.Context, interval time.Duration) {
	logger := observability.LoggerFromContext(ctx)
	if _, err := s.WarmCache(ctx); err != nil {
		logger.Error().Err(err).Msg("Initial cache warming failed")
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info().Msg("Stopping cache warming service")
				return
			case <-ticker.C:
				if _, err := s.WarmCache(ctx); err != nil {
					logger.Error().Err(err).Msg("Periodic cache warming failed")
				}
			}
		}
	}()
	logger.Info().Dur("interval", interval).Msg("Started periodic cache warming")
}

func topRated(groups []*entities.FaithGroup, n int) []*entities.FaithGroup {
	ranked := make([]*entities.FaithGroup, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].ReviewCount > ranked[j].ReviewCount
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
