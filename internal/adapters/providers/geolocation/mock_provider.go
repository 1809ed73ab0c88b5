package geolocation

import (
	"context"
	"strings"

	"github.com/faithfinder/backend/internal/domain/providers"
)

type knownCity struct {
	key       string
	label     string
	city      string
	state     string
	latitude  float64
	longitude float64
}

// defaultCity is returned for locations the mock does not know
var defaultCity = knownCity{"san francisco", "San Francisco, CA", "San Francisco", "CA", 37.7749, -122.4194}

var knownCities = []knownCity{
	defaultCity,
	{"new york", "New York, NY", "New York", "NY", 40.7128, -74.0060},
	{"los angeles", "Los Angeles, CA", "Los Angeles", "CA", 34.0522, -118.2437},
	{"chicago", "Chicago, IL", "Chicago", "IL", 41.8781, -87.6298},
	{"houston", "Houston, TX", "Houston", "TX", 29.7604, -95.3698},
}

// MockGeolocationProvider resolves a fixed table of US cities offline
type MockGeolocationProvider struct{}

// NewMockGeolocationProvider creates a new mock geolocation provider
func NewMockGeolocationProvider() providers.GeolocationProvider {
	return &MockGeolocationProvider{}
}

// Geocode matches the location against the city table, ignoring case.
// Unknown locations resolve to San Francisco.
func (m *MockGeolocationProvider) Geocode(ctx context.Context, location string) (*providers.GeocodedAddress, error) {
	key := strings.ToLower(strings.TrimSpace(location))
	match := defaultCity
	for _, c := range knownCities {
		if c.key == key {
			match = c
			break
		}
	}

	return &providers.GeocodedAddress{
		FormattedAddress: location + ", United States",
		City:             match.city,
		State:            match.state,
		Latitude:         match.latitude,
		Longitude:        match.longitude,
	}, nil
}

// KnownLocations lists the "City, State" labels in the table
func (m *MockGeolocationProvider) KnownLocations() []string {
	out := make([]string, 0, len(knownCities))
	for _, c := range knownCities {
		out = append(out, c.label)
	}
	return out
}
