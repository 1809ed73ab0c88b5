package handlers

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/geo"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// searchParams is a validated search request
type searchParams struct {
	Query    entities.SearchQuery
	Location string
}

// parseSearchParams validates the search query string. Blank values count as
// absent. Every offending field is reported, not just the first.
func parseSearchParams(values url.Values, defaultRadius float64) (*searchParams, []apperrors.FieldError) {
	var fields []apperrors.FieldError
	params := &searchParams{
		Location: strings.TrimSpace(values.Get("location")),
	}

	if religion := strings.TrimSpace(values.Get("religion")); religion != "" {
		params.Query.ReligionText = &religion
	}

	latRaw := strings.TrimSpace(values.Get("latitude"))
	lngRaw := strings.TrimSpace(values.Get("longitude"))

	var lat, lng float64
	var latOK, lngOK bool
	if latRaw != "" {
		v, err := geo.ParseCoordinate(latRaw)
		switch {
		case err != nil:
			fields = append(fields, apperrors.FieldError{Field: "latitude", Message: "must be a number"})
		case v < -90 || v > 90:
			fields = append(fields, apperrors.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
		default:
			lat, latOK = v, true
		}
	}
	if lngRaw != "" {
		v, err := geo.ParseCoordinate(lngRaw)
		switch {
		case err != nil:
			fields = append(fields, apperrors.FieldError{Field: "longitude", Message: "must be a number"})
		case v < -180 || v > 180:
			fields = append(fields, apperrors.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
		default:
			lng, lngOK = v, true
		}
	}
	if latRaw != "" && lngRaw == "" {
		fields = append(fields, apperrors.FieldError{Field: "longitude", Message: "is required when latitude is provided"})
	}
	if lngRaw != "" && latRaw == "" {
		fields = append(fields, apperrors.FieldError{Field: "latitude", Message: "is required when longitude is provided"})
	}

	params.Query.RadiusMiles = defaultRadius
	if radiusRaw := strings.TrimSpace(values.Get("radius")); radiusRaw != "" {
		v, err := strconv.ParseFloat(radiusRaw, 64)
		switch {
		case err != nil || math.IsNaN(v) || math.IsInf(v, 0):
			fields = append(fields, apperrors.FieldError{Field: "radius", Message: "must be a number"})
		case v < 0:
			fields = append(fields, apperrors.FieldError{Field: "radius", Message: "must not be negative"})
		default:
			params.Query.RadiusMiles = v
		}
	}

	if len(fields) > 0 {
		return nil, fields
	}
	if latOK && lngOK {
		params.Query.Coordinates = &geo.Point{Latitude: lat, Longitude: lng}
	}
	return params, nil
}
