package entities

// PlaceCandidate is a third-party place offered for import
type PlaceCandidate struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Address          string   `json:"formatted_address"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Types            []string `json:"types"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	BusinessStatus   string   `json:"business_status,omitempty"`
	AlreadyImported  bool     `json:"alreadyImported"`
}

// PlaceSearchPage is one page of place search results
type PlaceSearchPage struct {
	Results       []PlaceCandidate `json:"results"`
	NextPageToken string           `json:"next_page_token,omitempty"`
}

// PlaceDetails is the detail record used to build a faith group
type PlaceDetails struct {
	PlaceID           string
	Name              string
	FormattedAddress  string
	Latitude          float64
	Longitude         float64
	Types             []string
	Phone             string
	Website           string
	Rating            float64
	UserRatingsTotal  int
	BusinessStatus    string
	PermanentlyClosed bool
	WeekdayText       []string
	EditorialSummary  string
}

// PlaceSearchParams selects a nearby or text place search
type PlaceSearchParams struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Query        string
	PageToken    string
}

// ImportError records a place that could not be imported
type ImportError struct {
	PlaceID string `json:"placeId"`
	Error   string `json:"error"`
}

// ImportSummary is the outcome of a places import
type ImportSummary struct {
	ImportedCount  int           `json:"importedCount"`
	SkippedCount   int           `json:"skippedCount"`
	TotalRequested int           `json:"totalRequested"`
	Imported       []*FaithGroup `json:"imported"`
	Errors         []ImportError `json:"errors"`
}
