package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

const (
	defaultBaseURL     = "https://maps.googleapis.com/maps/api/place"
	defaultHTTPTimeout = 10 * time.Second

	// textSearchSuffix widens free-text queries to places of worship
	textSearchSuffix = " church mosque synagogue temple place of worship"
	// textSearchRadiusMeters biases text search around the given point
	textSearchRadiusMeters = 50000
)

var detailFields = []string{
	"place_id", "name", "formatted_address", "geometry", "formatted_phone_number",
	"website", "rating", "user_ratings_total", "business_status", "permanently_closed",
	"opening_hours", "types", "editorial_summary",
}

// GooglePlacesClient implements PlacesProvider against the Google Places web service
type GooglePlacesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGooglePlacesClient creates a new places client. An empty baseURL uses Google's endpoint.
func NewGooglePlacesClient(apiKey, baseURL string, httpClient *http.Client) providers.PlacesProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GooglePlacesClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Search runs a nearby search for places of worship, or a text search when
// params.Query is set
func (c *GooglePlacesClient) Search(ctx context.Context, params entities.PlaceSearchParams) (*entities.PlaceSearchPage, error) {
	values := url.Values{}
	location := formatLatLng(params.Latitude, params.Longitude)
	endpoint := "/nearbysearch/json"

	if q := strings.TrimSpace(params.Query); q != "" {
		endpoint = "/textsearch/json"
		values.Set("query", q+textSearchSuffix)
		if params.Latitude != 0 || params.Longitude != 0 {
			values.Set("location", location)
			values.Set("radius", strconv.Itoa(textSearchRadiusMeters))
		}
	} else {
		values.Set("location", location)
		values.Set("radius", strconv.Itoa(params.RadiusMeters))
		values.Set("type", "place_of_worship")
	}
	if token := strings.TrimSpace(params.PageToken); token != "" {
		values.Set("pagetoken", token)
	}

	var payload searchResponse
	if err := c.get(ctx, endpoint, values, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}

	page := &entities.PlaceSearchPage{
		Results:       make([]entities.PlaceCandidate, 0, len(payload.Results)),
		NextPageToken: payload.NextPageToken,
	}
	for _, r := range payload.Results {
		address := r.FormattedAddress
		if address == "" {
			address = r.Vicinity
		}
		page.Results = append(page.Results, entities.PlaceCandidate{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			Address:          address,
			Latitude:         r.Geometry.Location.Lat,
			Longitude:        r.Geometry.Location.Lng,
			Types:            r.Types,
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
			BusinessStatus:   r.BusinessStatus,
		})
	}
	return page, nil
}

// Details fetches the detail record for one place
func (c *GooglePlacesClient) Details(ctx context.Context, placeID string) (*entities.PlaceDetails, error) {
	values := url.Values{}
	values.Set("place_id", placeID)
	values.Set("fields", strings.Join(detailFields, ","))

	var payload detailsResponse
	if err := c.get(ctx, "/details/json", values, &payload); err != nil {
		return nil, err
	}
	if payload.Status == "NOT_FOUND" || payload.Status == "INVALID_REQUEST" {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("place %s not found", placeID))
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}
	if payload.Result == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("place %s not found", placeID))
	}

	r := payload.Result
	d := &entities.PlaceDetails{
		PlaceID:           r.PlaceID,
		Name:              r.Name,
		FormattedAddress:  r.FormattedAddress,
		Latitude:          r.Geometry.Location.Lat,
		Longitude:         r.Geometry.Location.Lng,
		Types:             r.Types,
		Phone:             r.FormattedPhoneNumber,
		Website:           r.Website,
		Rating:            r.Rating,
		UserRatingsTotal:  r.UserRatingsTotal,
		BusinessStatus:    r.BusinessStatus,
		PermanentlyClosed: r.PermanentlyClosed,
	}
	if d.PlaceID == "" {
		d.PlaceID = placeID
	}
	if r.OpeningHours != nil {
		d.WeekdayText = r.OpeningHours.WeekdayText
	}
	if r.EditorialSummary != nil {
		d.EditorialSummary = r.EditorialSummary.Overview
	}
	return d, nil
}

func (c *GooglePlacesClient) get(ctx context.Context, endpoint string, values url.Values, dest interface{}) error {
	if c.apiKey == "" {
		return apperrors.NewExternalError("places api key is required", nil)
	}
	values.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewExternalError("places request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewExternalError(fmt.Sprintf("places request returned status %d", resp.StatusCode), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return apperrors.NewExternalError("failed to decode places response", err)
	}
	return nil
}

// checkStatus accepts OK and ZERO_RESULTS
func checkStatus(status, message string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	}
	if message != "" {
		return apperrors.NewExternalError(fmt.Sprintf("places api error: %s - %s", status, message), nil)
	}
	return apperrors.NewExternalError(fmt.Sprintf("places api error: %s", status), nil)
}

func formatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

type searchResponse struct {
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message,omitempty"`
	NextPageToken string        `json:"next_page_token,omitempty"`
	Results       []placeResult `json:"results"`
}

type detailsResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
	Result       *placeResult `json:"result"`
}

type placeResult struct {
	PlaceID              string    `json:"place_id"`
	Name                 string    `json:"name"`
	FormattedAddress     string    `json:"formatted_address"`
	Vicinity             string    `json:"vicinity"`
	Geometry             geometry  `json:"geometry"`
	Types                []string  `json:"types"`
	Rating               float64   `json:"rating"`
	UserRatingsTotal     int       `json:"user_ratings_total"`
	BusinessStatus       string    `json:"business_status"`
	PermanentlyClosed    bool      `json:"permanently_closed"`
	FormattedPhoneNumber string    `json:"formatted_phone_number"`
	Website              string    `json:"website"`
	OpeningHours         *openings `json:"opening_hours"`
	EditorialSummary     *summary  `json:"editorial_summary"`
}

type geometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type openings struct {
	WeekdayText []string `json:"weekday_text"`
}

type summary struct {
	Overview string `json:"overview"`
}
