package typesense

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typesense/typesense-go/v2/typesense"
)

func fakeTypesense(t *testing.T, existing []string, created *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/collections":
			var cols []map[string]interface{}
			for _, name := range existing {
				cols = append(cols, map[string]interface{}{"name": name, "fields": []interface{}{}, "num_documents": 0, "created_at": 0})
			}
			if cols == nil {
				cols = []map[string]interface{}{}
			}
			_ = json.NewEncoder(w).Encode(cols)
		case r.Method == http.MethodPost && r.URL.Path == "/collections":
			created.Add(1)
			var schema map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&schema))
			assert.Equal(t, FaithGroupsCollection, schema["name"])
			schema["num_documents"] = 0
			schema["created_at"] = 0
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(schema)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))
		}
	}))
}

func TestInitSchema_CreatesMissingCollection(t *testing.T) {
	var created atomic.Int32
	srv := fakeTypesense(t, nil, &created)
	defer srv.Close()

	client := NewClientFrom(typesense.NewClient(typesense.WithServer(srv.URL), typesense.WithAPIKey("test")))
	require.NoError(t, client.InitSchema(context.Background()))
	assert.Equal(t, int32(1), created.Load())
}

func TestInitSchema_ExistingCollection(t *testing.T) {
	var created atomic.Int32
	srv := fakeTypesense(t, []string{"other", FaithGroupsCollection}, &created)
	defer srv.Close()

	client := NewClientFrom(typesense.NewClient(typesense.WithServer(srv.URL), typesense.WithAPIKey("test")))
	require.NoError(t, client.InitSchema(context.Background()))
	assert.Zero(t, created.Load())
}

func TestFaithGroupSchema_FacetsSuggestionFields(t *testing.T) {
	schema := FaithGroupSchema()
	facets := map[string]bool{}
	for _, f := range schema.Fields {
		if f.Facet != nil && *f.Facet {
			facets[f.Name] = true
		}
	}
	assert.True(t, facets["religion"])
	assert.True(t, facets["denomination"])
	assert.True(t, facets["city_state"])
}
