package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithfinder/backend/internal/application/services"
	"github.com/faithfinder/backend/internal/domain/entities"
)

func TestInferReligion(t *testing.T) {
	tests := []struct {
		types        []string
		religion     string
		denomination string
	}{
		{[]string{"church", "place_of_worship"}, "Christianity", "Christian"},
		{[]string{"place_of_worship", "mosque"}, "Islam", "Islamic"},
		{[]string{"synagogue"}, "Judaism", "Jewish"},
		{[]string{"hindu_temple"}, "Hinduism", "Hindu"},
		{[]string{"place_of_worship"}, "Christianity", "Non-denominational"},
		{[]string{"point_of_interest"}, "Other", ""},
	}
	for _, tt := range tests {
		religion, denomination := services.InferReligion(tt.types)
		assert.Equal(t, tt.religion, religion, tt.types)
		assert.Equal(t, tt.denomination, denomination, tt.types)
	}
}

func TestSplitAddress(t *testing.T) {
	street, city, state, zip := services.SplitAddress("123 Main St, San Francisco, CA 94102, USA")
	assert.Equal(t, "123 Main St", street)
	assert.Equal(t, "San Francisco", city)
	assert.Equal(t, "CA", state)
	assert.Equal(t, "94102", zip)

	street, city, state, zip = services.SplitAddress("456 Oak Ave, Oakland, CA")
	assert.Equal(t, []string{"456 Oak Ave", "Oakland", "CA", ""}, []string{street, city, state, zip})

	street, city, _, _ = services.SplitAddress("Somewhere")
	assert.Equal(t, "Somewhere", street)
	assert.Empty(t, city)
}

func TestParseWeekdayText(t *testing.T) {
	got := services.ParseWeekdayText([]string{"Monday: 9:00 AM – 5:00 PM", "Tuesday: Closed", "Wednesday"})
	assert.Equal(t, []entities.ServiceTime{
		{Day: "Monday", Time: "9:00 AM – 5:00 PM"},
		{Day: "Tuesday", Time: "Closed"},
		{Day: "Wednesday", Time: "Closed"},
	}, got)
}

func TestPlaceToFaithGroupInput(t *testing.T) {
	in := services.PlaceToFaithGroupInput(&entities.PlaceDetails{
		PlaceID:          "ChIJ123",
		Name:             "Grace Community Church",
		FormattedAddress: "123 Main St, San Francisco, CA 94102, USA",
		Latitude:         37.7749,
		Longitude:        -122.4194,
		Types:            []string{"church"},
		Phone:            "(415) 555-0123",
		Rating:           4.76,
		UserRatingsTotal: 127,
		BusinessStatus:   "OPERATIONAL",
	})

	assert.Equal(t, "Christianity", in.Religion)
	require.NotNil(t, in.Denomination)
	assert.Equal(t, "Christian", *in.Denomination)
	assert.Equal(t, "37.77490000", in.Latitude)
	assert.Equal(t, entities.OpenStatusOpen, in.IsOpen)
	assert.Equal(t, 4.8, in.Rating)
	assert.Equal(t, 127, in.ReviewCount)
	assert.Equal(t, "ChIJ123", *in.GooglePlaceID)
	assert.Nil(t, in.Website)
	assert.Len(t, in.ServiceTimes, 2)
	assert.Equal(t, "Sunday Morning", in.ServiceTimes[0].Day)
	assert.Contains(t, in.Description, "San Francisco, CA")
	assert.Contains(t, *in.LongDescription, "127 reviews")
}

func TestPlaceToFaithGroupInput_ClosedPlace(t *testing.T) {
	in := services.PlaceToFaithGroupInput(&entities.PlaceDetails{
		Name:              "Old Chapel",
		Types:             []string{"church"},
		BusinessStatus:    "OPERATIONAL",
		PermanentlyClosed: true,
		WeekdayText:       []string{"Sunday: 10:00 AM – 12:00 PM"},
	})
	assert.Equal(t, entities.OpenStatusClosed, in.IsOpen)
	assert.Equal(t, []entities.ServiceTime{{Day: "Sunday", Time: "10:00 AM – 12:00 PM"}}, in.ServiceTimes)
}
