package providers

import (
	"context"
)

// GeolocationProvider resolves free-text locations to coordinates
type GeolocationProvider interface {
	// Geocode converts an address or place name to coordinates
	Geocode(ctx context.Context, location string) (*GeocodedAddress, error)

	// KnownLocations lists location labels the provider can resolve offline.
	// Providers backed by a remote API return nil.
	KnownLocations() []string
}

// GeocodedAddress represents a geocoded location
type GeocodedAddress struct {
	FormattedAddress string
	City             string
	State            string
	Latitude         float64
	Longitude        float64
}
