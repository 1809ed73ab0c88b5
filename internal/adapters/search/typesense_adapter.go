package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/repositories"
	tsclient "github.com/faithfinder/backend/internal/infrastructure/clients/typesense"
)

const importBatchSize = 100

// TypesenseAdapter indexes faith groups in Typesense and serves facet suggestions
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements FaithGroupSearchRepository
var _ repositories.FaithGroupSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// buildDocument maps a faith group to its index document. Records with
// unusable coordinates are indexed without a location.
func buildDocument(g *entities.FaithGroup) map[string]interface{} {
	doc := map[string]interface{}{
		"id":           g.ID,
		"name":         g.Name,
		"religion":     g.Religion,
		"description":  g.Description,
		"rating":       g.Rating,
		"review_count": g.ReviewCount,
		"is_open":      string(g.IsOpen),
		"created_at":   g.CreatedAt.Unix(),
	}
	if g.Denomination != nil && *g.Denomination != "" {
		doc["denomination"] = *g.Denomination
	}
	if label := g.CityState(); label != "" {
		doc["city_state"] = label
	}
	if p, ok := g.Coordinates(); ok {
		doc["location"] = []float64{p.Latitude, p.Longitude}
	}
	return doc
}

// Index upserts a faith group document
func (a *TypesenseAdapter) Index(ctx context.Context, group *entities.FaithGroup) error {
	_, err := a.client.Client().Collection(tsclient.FaithGroupsCollection).Documents().Upsert(ctx, buildDocument(group))
	if err != nil {
		return fmt.Errorf("failed to index faith group: %w", err)
	}
	return nil
}

// IndexAll bulk-upserts every group through the import endpoint, returning
// the number indexed. Per-document failures are reported after the batch.
func (a *TypesenseAdapter) IndexAll(ctx context.Context, groups []*entities.FaithGroup) (int, error) {
	if len(groups) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(groups))
	for _, g := range groups {
		docs = append(docs, buildDocument(g))
	}

	results, err := a.client.Client().Collection(tsclient.FaithGroupsCollection).Documents().Import(ctx, docs, &api.ImportDocumentsParams{
		Action:    pointer.String("upsert"),
		BatchSize: pointer.Int(importBatchSize),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import faith groups: %w", err)
	}

	indexed := 0
	var failed []string
	for i, r := range results {
		if r != nil && r.Success {
			indexed++
			continue
		}
		id := ""
		if i < len(groups) {
			id = groups[i].ID
		}
		msg := "unknown error"
		if r != nil && r.Error != "" {
			msg = r.Error
		}
		failed = append(failed, id+": "+msg)
	}
	if len(failed) > 0 {
		return indexed, fmt.Errorf("failed to import %d faith groups: %s", len(failed), strings.Join(failed, "; "))
	}
	return indexed, nil
}

// Delete removes a faith group from the index. Missing documents are ignored.
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.FaithGroupsCollection).Document(id).Delete(ctx)
	if err != nil {
		var httpErr *typesense.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete faith group from index: %w", err)
	}
	return nil
}

// SuggestReligions returns religion and denomination facet values matching text
func (a *TypesenseAdapter) SuggestReligions(ctx context.Context, text string, limit int) ([]string, error) {
	religions, err := a.facetValues(ctx, "religion", text, limit)
	if err != nil {
		return nil, err
	}
	denominations, err := a.facetValues(ctx, "denomination", text, limit)
	if err != nil {
		return nil, err
	}
	return append(religions, denominations...), nil
}

// SuggestLocations returns "City, State" facet values matching text
func (a *TypesenseAdapter) SuggestLocations(ctx context.Context, text string, limit int) ([]string, error) {
	return a.facetValues(ctx, "city_state", text, limit)
}

func (a *TypesenseAdapter) facetValues(ctx context.Context, field, text string, limit int) ([]string, error) {
	params := &api.SearchCollectionParams{
		Q:              pointer.String("*"),
		QueryBy:        pointer.String("name"),
		FacetBy:        pointer.String(field),
		FacetQuery:     pointer.String(field + ":" + sanitizeFacetQuery(text)),
		MaxFacetValues: pointer.Int(limit),
		PerPage:        pointer.Int(0),
	}

	result, err := a.client.Client().Collection(tsclient.FaithGroupsCollection).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s facets: %w", field, err)
	}

	values := []string{}
	if result.FacetCounts == nil {
		return values, nil
	}
	for _, fc := range *result.FacetCounts {
		if fc.FieldName == nil || *fc.FieldName != field || fc.Counts == nil {
			continue
		}
		for _, c := range *fc.Counts {
			if c.Value != nil && *c.Value != "" {
				values = append(values, *c.Value)
			}
		}
	}
	return values, nil
}

// sanitizeFacetQuery strips characters with meaning in Typesense filter syntax
func sanitizeFacetQuery(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ':', ',', '&', '|', '(', ')', '[', ']', '`':
			return ' '
		}
		return r
	}, strings.TrimSpace(text))
}
