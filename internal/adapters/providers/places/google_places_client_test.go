package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithfinder/backend/internal/domain/entities"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GooglePlacesClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGooglePlacesClient("test-key", srv.URL, srv.Client()).(*GooglePlacesClient)
}

func TestSearch_Nearby(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nearbysearch/json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "37.7749,-122.4194", q.Get("location"))
		assert.Equal(t, "5000", q.Get("radius"))
		assert.Equal(t, "place_of_worship", q.Get("type"))
		assert.Equal(t, "test-key", q.Get("key"))
		assert.Empty(t, q.Get("pagetoken"))
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"next_page_token": "next-1",
			"results": [{
				"place_id": "p1", "name": "St Mark", "vicinity": "1 Main St, San Francisco",
				"geometry": {"location": {"lat": 37.77, "lng": -122.41}},
				"types": ["church", "place_of_worship"], "rating": 4.6, "user_ratings_total": 120,
				"business_status": "OPERATIONAL"
			}]
		}`))
	})

	page, err := client.Search(context.Background(), entities.PlaceSearchParams{Latitude: 37.7749, Longitude: -122.4194, RadiusMeters: 5000})
	require.NoError(t, err)
	assert.Equal(t, "next-1", page.NextPageToken)
	require.Len(t, page.Results, 1)
	got := page.Results[0]
	assert.Equal(t, "p1", got.PlaceID)
	assert.Equal(t, "1 Main St, San Francisco", got.Address)
	assert.Equal(t, 120, got.UserRatingsTotal)
	assert.Equal(t, []string{"church", "place_of_worship"}, got.Types)
}

func TestSearch_TextQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/textsearch/json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "baptist church mosque synagogue temple place of worship", q.Get("query"))
		assert.Equal(t, "50000", q.Get("radius"))
		assert.Equal(t, "29.76,-95.37", q.Get("location"))
		assert.Equal(t, "tok", q.Get("pagetoken"))
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	})

	page, err := client.Search(context.Background(), entities.PlaceSearchParams{Query: " baptist ", PageToken: "tok", Latitude: 29.76, Longitude: -95.37, RadiusMeters: 5000})
	require.NoError(t, err)
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
}

func TestSearch_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`))
	})

	_, err := client.Search(context.Background(), entities.PlaceSearchParams{RadiusMeters: 100})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.TypeOf(err))
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details/json", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
		assert.Contains(t, r.URL.Query().Get("fields"), "opening_hours")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"result": {
				"place_id": "p1", "name": "Masjid Al-Noor",
				"formatted_address": "20 Pine St, San Francisco, CA 94111, USA",
				"geometry": {"location": {"lat": 37.79, "lng": -122.40}},
				"types": ["mosque"], "formatted_phone_number": "(415) 555-0199",
				"website": "https://example.org", "rating": 4.84, "user_ratings_total": 33,
				"business_status": "OPERATIONAL",
				"opening_hours": {"weekday_text": ["Friday: 1:00 PM – 2:00 PM"]},
				"editorial_summary": {"overview": "Neighbourhood mosque."}
			}
		}`))
	})

	d, err := client.Details(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Masjid Al-Noor", d.Name)
	assert.Equal(t, "(415) 555-0199", d.Phone)
	assert.Equal(t, []string{"Friday: 1:00 PM – 2:00 PM"}, d.WeekdayText)
	assert.Equal(t, "Neighbourhood mosque.", d.EditorialSummary)
	assert.False(t, d.PermanentlyClosed)
}

func TestDetails_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"NOT_FOUND"}`))
	})

	_, err := client.Details(context.Background(), "gone")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMissingAPIKey(t *testing.T) {
	client := NewGooglePlacesClient("", "http://127.0.0.1:1", nil)
	_, err := client.Details(context.Background(), "p1")
	assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.TypeOf(err))
}
