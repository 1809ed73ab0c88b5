package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/faithfinder/backend/internal/api/handlers"
	"github.com/faithfinder/backend/internal/domain/providers"
)

func TestGeocode(t *testing.T) {
	provider := new(MockGeolocationProvider)
	provider.On("Geocode", mock.Anything, "Chicago, IL").Return(&providers.GeocodedAddress{
		FormattedAddress: "Chicago, IL, United States",
		Latitude:         41.8781,
		Longitude:        -87.6298,
	}, nil)
	handler := handlers.NewGeolocationHandler(provider)

	rec := httptest.NewRecorder()
	handler.Geocode(rec, httptest.NewRequest(http.MethodGet, "/api/geocode?location=Chicago,+IL", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"location":"Chicago, IL","latitude":41.8781,"longitude":-87.6298,"formatted_address":"Chicago, IL, United States"}`, rec.Body.String())
}

func TestGeocode_MissingLocation(t *testing.T) {
	provider := new(MockGeolocationProvider)
	handler := handlers.NewGeolocationHandler(provider)

	rec := httptest.NewRecorder()
	handler.Geocode(rec, httptest.NewRequest(http.MethodGet, "/api/geocode?location=%20", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Location parameter is required"}`, rec.Body.String())
	provider.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestGeocode_ProviderFailure(t *testing.T) {
	provider := new(MockGeolocationProvider)
	provider.On("Geocode", mock.Anything, "Atlantis").Return(nil, errors.New("no results"))
	handler := handlers.NewGeolocationHandler(provider)

	rec := httptest.NewRecorder()
	handler.Geocode(rec, httptest.NewRequest(http.MethodGet, "/api/geocode?location=Atlantis", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to geocode location"}`, rec.Body.String())
}
