package services

import (
	"context"
	"sort"
	"strings"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
	"github.com/faithfinder/backend/internal/domain/repositories"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
)

const (
	// MinSuggestionQueryLength is the shortest query that produces suggestions
	MinSuggestionQueryLength = 2
	// MaxSuggestions caps every suggestion list
	MaxSuggestions = 10
)

// SuggestionService produces autocomplete values for the search form
type SuggestionService struct {
	repo        repositories.FaithGroupRepository
	searchRepo  repositories.FaithGroupSearchRepository
	geolocation providers.GeolocationProvider
}

// NewSuggestionService creates a new suggestion service. searchRepo and
// geolocation may be nil.
func NewSuggestionService(repo repositories.FaithGroupRepository, searchRepo repositories.FaithGroupSearchRepository, geolocation providers.GeolocationProvider) *SuggestionService {
	return &SuggestionService{repo: repo, searchRepo: searchRepo, geolocation: geolocation}
}

// Religions suggests religion categories and denominations containing q
func (s *SuggestionService) Religions(ctx context.Context, q string) ([]string, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < MinSuggestionQueryLength {
		return []string{}, nil
	}

	values := append([]string{}, entities.Religions...)

	if indexed, ok := s.fromIndex(ctx, q, s.suggestReligionsIndex); ok {
		values = append(values, indexed...)
	} else {
		groups, err := s.repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range groups {
			values = append(values, g.Religion)
			if g.Denomination != nil {
				values = append(values, *g.Denomination)
			}
		}
	}

	return filterSuggestions(values, q), nil
}

// Locations suggests "City, State" values from the directory
func (s *SuggestionService) Locations(ctx context.Context, q string) ([]string, error) {
	return s.locations(ctx, q, false)
}

// AdminLocations also includes every location the geocoder knows offline
func (s *SuggestionService) AdminLocations(ctx context.Context, q string) ([]string, error) {
	return s.locations(ctx, q, true)
}

func (s *SuggestionService) locations(ctx context.Context, q string, includeKnown bool) ([]string, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < MinSuggestionQueryLength {
		return []string{}, nil
	}

	var values []string
	if indexed, ok := s.fromIndex(ctx, q, s.suggestLocationsIndex); ok {
		values = indexed
	} else {
		groups, err := s.repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range groups {
			if label := g.CityState(); label != "" {
				values = append(values, label)
			}
		}
	}

	if includeKnown && s.geolocation != nil {
		values = append(values, s.geolocation.KnownLocations()...)
	}

	return filterSuggestions(values, q), nil
}

func (s *SuggestionService) suggestReligionsIndex(ctx context.Context, q string) ([]string, error) {
	return s.searchRepo.SuggestReligions(ctx, q, MaxSuggestions)
}

func (s *SuggestionService) suggestLocationsIndex(ctx context.Context, q string) ([]string, error) {
	return s.searchRepo.SuggestLocations(ctx, q, MaxSuggestions)
}

// fromIndex queries the search index, reporting false when the caller
// should fall back to scanning the repository
func (s *SuggestionService) fromIndex(ctx context.Context, q string, fn func(context.Context, string) ([]string, error)) ([]string, bool) {
	if s.searchRepo == nil {
		return nil, false
	}
	values, err := fn(ctx, q)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("suggestion index unavailable, scanning repository")
		return nil, false
	}
	return values, true
}

// filterSuggestions keeps values containing q, ignoring case, de-duplicated
// case-insensitively, sorted and capped at MaxSuggestions
func filterSuggestions(values []string, q string) []string {
	lq := strings.ToLower(q)
	seen := make(map[string]struct{}, len(values))
	out := []string{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		lv := strings.ToLower(v)
		if !strings.Contains(lv, lq) {
			continue
		}
		if _, dup := seen[lv]; dup {
			continue
		}
		seen[lv] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
