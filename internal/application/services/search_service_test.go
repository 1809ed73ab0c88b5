package services_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/faithfinder/backend/internal/application/services"
	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/geo"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

var origin = geo.Point{Latitude: 37.7749, Longitude: -122.4194}

// groupAt places a group the given number of miles due north of origin.
func groupAt(id, religion string, miles float64) *entities.FaithGroup {
	lat := origin.Latitude + miles/geo.EarthRadiusMiles*180/math.Pi
	return &entities.FaithGroup{
		ID:          id,
		Name:        id,
		Religion:    religion,
		Description: "community",
		Latitude:    geo.FormatCoordinate(lat),
		Longitude:   geo.FormatCoordinate(origin.Longitude),
	}
}

func text(s string) *string { return &s }

func ids(results []entities.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

func TestRankFaithGroups_TextAndRadius(t *testing.T) {
	church := groupAt("church-a", "Christianity", 0)
	mosque := groupAt("mosque-b", "Islam", 5)

	results := services.RankFaithGroups(entities.SearchQuery{
		ReligionText: text("Christianity"),
		Coordinates:  &origin,
		RadiusMiles:  10,
	}, []*entities.FaithGroup{church, mosque})

	require.Len(t, results, 1)
	assert.Equal(t, "church-a", results[0].ID)
	require.NotNil(t, results[0].Distance)
	assert.InDelta(t, 0, *results[0].Distance, 1e-3)
}

func TestRankFaithGroups_RadiusExcludesAndSorts(t *testing.T) {
	c := groupAt("C", "Other", 12)
	b := groupAt("B", "Other", 8)
	a := groupAt("A", "Other", 3)

	results := services.RankFaithGroups(entities.SearchQuery{
		Coordinates: &origin,
		RadiusMiles: 10,
	}, []*entities.FaithGroup{c, b, a})

	assert.Equal(t, []string{"A", "B"}, ids(results))
	assert.InDelta(t, 3, *results[0].Distance, 1e-3)
	assert.InDelta(t, 8, *results[1].Distance, 1e-3)
}

func TestRankFaithGroups_NullDenominationNeverMatches(t *testing.T) {
	a := &entities.FaithGroup{ID: "A", Name: "Grace Church", Religion: "Christianity", Description: "Sunday worship"}
	b := &entities.FaithGroup{ID: "B", Name: "Beacon Temple", Religion: "Hinduism", Denomination: entities.StringPtr("Hindu"), Description: "Puja"}

	results := services.RankFaithGroups(entities.SearchQuery{ReligionText: text("temple")}, []*entities.FaithGroup{a, b})

	assert.Equal(t, []string{"B"}, ids(results))
	assert.Nil(t, results[0].Distance)
}

func TestRankFaithGroups_MalformedCoordinates(t *testing.T) {
	bad := &entities.FaithGroup{ID: "A", Name: "A", Religion: "Christianity", Latitude: "not-a-number", Longitude: "-122.4"}

	geoResults := services.RankFaithGroups(entities.SearchQuery{
		Coordinates: &origin,
		RadiusMiles: 10,
	}, []*entities.FaithGroup{bad})
	assert.Empty(t, geoResults)

	textResults := services.RankFaithGroups(entities.SearchQuery{ReligionText: text("christ")}, []*entities.FaithGroup{bad})
	assert.Equal(t, []string{"A"}, ids(textResults))
}

func TestRankFaithGroups_InclusiveRadius(t *testing.T) {
	a := groupAt("A", "Other", 10)
	p, ok := a.Coordinates()
	require.True(t, ok)
	exact := origin.DistanceTo(p)
	assert.InDelta(t, 10, exact, 1e-3)

	included := services.RankFaithGroups(entities.SearchQuery{Coordinates: &origin, RadiusMiles: exact}, []*entities.FaithGroup{a})
	assert.Equal(t, []string{"A"}, ids(included))

	excluded := services.RankFaithGroups(entities.SearchQuery{Coordinates: &origin, RadiusMiles: exact - 1e-9}, []*entities.FaithGroup{a})
	assert.Empty(t, excluded)
}

func TestRankFaithGroups_EmptyCandidates(t *testing.T) {
	queries := []entities.SearchQuery{
		{},
		{ReligionText: text("islam")},
		{Coordinates: &origin, RadiusMiles: 10},
	}
	for _, q := range queries {
		results := services.RankFaithGroups(q, nil)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestRankFaithGroups_NoQueryReturnsEverythingInOrder(t *testing.T) {
	groups := []*entities.FaithGroup{groupAt("x", "Islam", 50), groupAt("y", "Judaism", 1), groupAt("z", "Other", 0)}
	results := services.RankFaithGroups(entities.SearchQuery{RadiusMiles: 1}, groups)

	assert.Equal(t, []string{"x", "y", "z"}, ids(results))
	for _, r := range results {
		assert.Nil(t, r.Distance)
	}
}

func TestRankFaithGroups_EmptyTextIsNoFilter(t *testing.T) {
	groups := []*entities.FaithGroup{groupAt("x", "Islam", 0), groupAt("y", "Judaism", 0)}
	results := services.RankFaithGroups(entities.SearchQuery{ReligionText: text("")}, groups)
	assert.Equal(t, []string{"x", "y"}, ids(results))
}

func TestRankFaithGroups_StableTies(t *testing.T) {
	groups := []*entities.FaithGroup{
		groupAt("far", "Other", 4),
		groupAt("tie-1", "Other", 2),
		groupAt("tie-2", "Other", 2),
		groupAt("tie-3", "Other", 2),
	}
	results := services.RankFaithGroups(entities.SearchQuery{Coordinates: &origin, RadiusMiles: 10}, groups)
	assert.Equal(t, []string{"tie-1", "tie-2", "tie-3", "far"}, ids(results))
}

func TestRankFaithGroups_DoesNotMutateCandidates(t *testing.T) {
	a := groupAt("A", "Christianity", 1)
	a.Rating = 4.5
	before := *a

	services.RankFaithGroups(entities.SearchQuery{Coordinates: &origin, RadiusMiles: 10, ReligionText: text("christ")}, []*entities.FaithGroup{a})
	assert.Equal(t, before, *a)
}

func TestRankFaithGroups_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	religions := []string{"Christianity", "Islam", "Judaism", "Hinduism", "Buddhism"}

	for iter := 0; iter < 50; iter++ {
		var groups []*entities.FaithGroup
		for i := 0; i < 40; i++ {
			g := groupAt(string(rune('a'+i%26))+"-"+religions[i%len(religions)], religions[rng.Intn(len(religions))], rng.Float64()*30)
			if rng.Intn(10) == 0 {
				g.Latitude = "garbage"
			}
			groups = append(groups, g)
		}
		radius := rng.Float64() * 25
		q := entities.SearchQuery{Coordinates: &origin, RadiusMiles: radius}
		if rng.Intn(2) == 0 {
			q.ReligionText = text("islam")
		}

		first := services.RankFaithGroups(q, groups)
		second := services.RankFaithGroups(q, groups)
		assert.Equal(t, first, second)

		for i, r := range first {
			require.NotNil(t, r.Distance)
			assert.LessOrEqual(t, *r.Distance, radius)
			if i > 0 {
				assert.LessOrEqual(t, *first[i-1].Distance, *r.Distance)
			}
			if q.ReligionText != nil {
				assert.True(t, services.MatchesReligion(&r.FaithGroup, *q.ReligionText))
			}
		}

		noGeo := services.RankFaithGroups(entities.SearchQuery{ReligionText: q.ReligionText}, groups)
		for _, r := range noGeo {
			assert.Nil(t, r.Distance)
		}
	}
}

func TestSearchService_Search(t *testing.T) {
	repo := new(MockFaithGroupRepository)
	svc := services.NewSearchService(repo)

	groups := []*entities.FaithGroup{groupAt("A", "Christianity", 3), groupAt("B", "Islam", 1)}
	repo.On("GetAll", mock.Anything).Return(groups, nil)

	results, err := svc.Search(context.Background(), entities.SearchQuery{Coordinates: &origin, RadiusMiles: 10})

	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, ids(results))
	repo.AssertExpectations(t)
}

func TestSearchService_RepositoryErrorPropagates(t *testing.T) {
	repo := new(MockFaithGroupRepository)
	svc := services.NewSearchService(repo)

	storeErr := apperrors.NewInternalError("failed to list faith groups", errors.New("connection refused"))
	repo.On("GetAll", mock.Anything).Return(nil, storeErr)

	results, err := svc.Search(context.Background(), entities.SearchQuery{ReligionText: text("islam")})

	assert.Nil(t, results)
	assert.Same(t, storeErr, err)
}
