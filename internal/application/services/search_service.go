package services

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/repositories"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
)

// SearchService answers faith group searches over the repository's candidate set
type SearchService struct {
	repo repositories.FaithGroupRepository
}

// NewSearchService creates a new search service
func NewSearchService(repo repositories.FaithGroupRepository) *SearchService {
	return &SearchService{repo: repo}
}

// Search loads the candidate set and ranks it for the query. Repository
// errors are returned unchanged.
func (s *SearchService) Search(ctx context.Context, query entities.SearchQuery) ([]entities.SearchResult, error) {
	ctx, span := observability.StartSpan(ctx, "SearchService.Search")
	defer span.End()

	candidates, err := s.repo.GetAll(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	results := RankFaithGroups(query, candidates)

	attrs := []attribute.KeyValue{
		attribute.Int("search.candidates", len(candidates)),
		attribute.Int("search.results", len(results)),
		attribute.Bool("search.geo", query.Coordinates != nil),
	}
	if query.Coordinates != nil {
		attrs = append(attrs, attribute.Float64("search.radius_miles", query.RadiusMiles))
	}
	observability.SetSpanAttributes(span, attrs...)

	observability.LoggerFromContext(ctx).Debug().
		Int("candidates", len(candidates)).
		Int("results", len(results)).
		Msg("faith group search")

	return results, nil
}

// RankFaithGroups filters and orders candidates for query.
//
// When ReligionText is set and non-empty only groups accepted by
// MatchesReligion survive. When Coordinates are set, groups whose coordinates
// do not parse or that lie further than RadiusMiles are dropped, the rest get
// their distance annotated and are stably sorted nearest first. Without
// coordinates no distance is set and candidate order is kept.
func RankFaithGroups(query entities.SearchQuery, candidates []*entities.FaithGroup) []entities.SearchResult {
	results := make([]entities.SearchResult, 0, len(candidates))

	text := ""
	if query.ReligionText != nil {
		text = *query.ReligionText
	}

	for _, group := range candidates {
		if group == nil {
			continue
		}
		if text != "" && !MatchesReligion(group, text) {
			continue
		}

		result := entities.SearchResult{FaithGroup: *group}

		if query.Coordinates != nil {
			point, ok := group.Coordinates()
			if !ok {
				continue
			}
			distance := query.Coordinates.DistanceTo(point)
			if distance > query.RadiusMiles {
				continue
			}
			result.Distance = &distance
		}

		results = append(results, result)
	}

	if query.Coordinates != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].Distance < *results[j].Distance
		})
	}

	return results
}
