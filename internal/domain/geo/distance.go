package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusMiles is the mean Earth radius used for Haversine distance.
const EarthRadiusMiles = 3959.0

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceMiles returns the great-circle distance in miles between two points
// given in decimal degrees. Inputs are not validated.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push a just past 1 for antipodal points
	if a > 1 {
		a = 1
	}
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// DistanceTo returns the distance in miles from p to other.
func (p Point) DistanceTo(other Point) float64 {
	return DistanceMiles(p.Latitude, p.Longitude, other.Latitude, other.Longitude)
}

// ValidateCoordinates checks that latitude is in [-90,90] and longitude in [-180,180].
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ParseCoordinate parses a decimal-degree string. Empty, non-numeric,
// NaN and infinite values are rejected.
func ParseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty coordinate")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	return v, nil
}

// ParsePoint parses a latitude/longitude string pair and checks the ranges.
func ParsePoint(lat, lon string) (Point, error) {
	la, err := ParseCoordinate(lat)
	if err != nil {
		return Point{}, fmt.Errorf("latitude: %w", err)
	}
	lo, err := ParseCoordinate(lon)
	if err != nil {
		return Point{}, fmt.Errorf("longitude: %w", err)
	}
	if !ValidateCoordinates(la, lo) {
		return Point{}, fmt.Errorf("coordinates out of range: %v,%v", la, lo)
	}
	return Point{Latitude: la, Longitude: lo}, nil
}

// FormatCoordinate renders a coordinate in the 8 fractional digit storage form.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64)
}
