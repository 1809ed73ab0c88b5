package entities

import "github.com/faithfinder/backend/internal/domain/geo"

// SearchQuery is the input to a faith group search. A nil ReligionText means
// no text filter; nil Coordinates means no geographic filter and no distance
// ordering, in which case RadiusMiles is ignored.
type SearchQuery struct {
	ReligionText *string
	Coordinates  *geo.Point
	RadiusMiles  float64
}

// SearchResult is a faith group plus its distance from the query point.
// Distance is only set when the query carried coordinates.
type SearchResult struct {
	FaithGroup
	Distance *float64 `json:"distance,omitempty"`
}
