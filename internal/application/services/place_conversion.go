package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/geo"
)

// placeTypeReligions maps place types to religion and denomination, most specific first
var placeTypeReligions = []struct {
	placeType    string
	religion     string
	denomination string
}{
	{"church", "Christianity", "Christian"},
	{"mosque", "Islam", "Islamic"},
	{"synagogue", "Judaism", "Jewish"},
	{"hindu_temple", "Hinduism", "Hindu"},
	{"place_of_worship", "Christianity", "Non-denominational"},
}

var defaultServiceTimes = map[string][]entities.ServiceTime{
	"Christianity": {
		{Day: "Sunday Morning", Time: "10:00 AM"},
		{Day: "Sunday Evening", Time: "6:00 PM"},
	},
	"Islam": {
		{Day: "Friday Prayer", Time: "12:30 PM"},
		{Day: "Daily Prayers", Time: "5 times daily"},
	},
	"Judaism": {
		{Day: "Friday Evening", Time: "6:00 PM"},
		{Day: "Saturday Morning", Time: "10:00 AM"},
	},
}

// InferReligion derives religion and denomination from place types
func InferReligion(types []string) (religion, denomination string) {
	has := make(map[string]bool, len(types))
	for _, t := range types {
		has[t] = true
	}
	for _, m := range placeTypeReligions {
		if has[m.placeType] {
			return m.religion, m.denomination
		}
	}
	return "Other", ""
}

// SplitAddress breaks "street, city, ST 12345[, country]" into parts.
// Addresses with fewer than three components yield only a street.
func SplitAddress(formatted string) (street, city, state, zip string) {
	parts := strings.Split(formatted, ", ")
	if len(parts) >= 4 {
		parts = parts[:len(parts)-1]
	}
	if len(parts) < 3 {
		return strings.TrimSpace(formatted), "", "", ""
	}
	street = parts[0]
	city = parts[len(parts)-2]
	fields := strings.Fields(parts[len(parts)-1])
	if len(fields) > 0 {
		state = fields[0]
	}
	if len(fields) > 1 {
		zip = fields[1]
	}
	return street, city, state, zip
}

// ParseWeekdayText turns "Monday: 9:00 AM – 5:00 PM" lines into service times
func ParseWeekdayText(lines []string) []entities.ServiceTime {
	out := make([]entities.ServiceTime, 0, len(lines))
	for _, line := range lines {
		day, hours, found := strings.Cut(line, ": ")
		if !found || strings.TrimSpace(hours) == "" {
			hours = "Closed"
		}
		out = append(out, entities.ServiceTime{Day: strings.TrimSpace(day), Time: strings.TrimSpace(hours)})
	}
	return out
}

// PlaceToFaithGroupInput converts place details into a faith group payload
func PlaceToFaithGroupInput(d *entities.PlaceDetails) *entities.FaithGroupInput {
	religion, denomination := InferReligion(d.Types)
	street, city, state, zip := SplitAddress(d.FormattedAddress)

	serviceTimes := ParseWeekdayText(d.WeekdayText)
	if len(d.WeekdayText) == 0 {
		serviceTimes = append([]entities.ServiceTime{}, defaultServiceTimes[religion]...)
	}

	label := denomination
	if label == "" {
		label = religion
	}

	description := d.EditorialSummary
	if description == "" {
		description = fmt.Sprintf("%s place of worship located in %s, %s.", label, city, state)
		if d.Rating > 0 {
			description += " Highly rated with " + strconv.FormatFloat(d.Rating, 'f', -1, 64) + " stars."
		}
	}

	long := fmt.Sprintf("%s is a %s place of worship serving the %s, %s community. ", d.Name, strings.ToLower(label), city, state)
	if d.UserRatingsTotal > 0 {
		long += fmt.Sprintf("With %d reviews and a %s star rating, ", d.UserRatingsTotal, strconv.FormatFloat(d.Rating, 'f', -1, 64))
	}
	long += "this location welcomes visitors and provides spiritual services to the local community."

	status := entities.OpenStatusClosed
	if d.BusinessStatus == "OPERATIONAL" && !d.PermanentlyClosed {
		status = entities.OpenStatusOpen
	}

	placeID := d.PlaceID
	return &entities.FaithGroupInput{
		Name:            d.Name,
		Religion:        religion,
		Denomination:    entities.StringPtr(denomination),
		Description:     description,
		LongDescription: entities.StringPtr(long),
		Address:         street,
		City:            city,
		State:           state,
		ZipCode:         zip,
		Latitude:        geo.FormatCoordinate(d.Latitude),
		Longitude:       geo.FormatCoordinate(d.Longitude),
		Phone:           entities.StringPtr(d.Phone),
		Website:         entities.StringPtr(d.Website),
		ServiceTimes:    serviceTimes,
		IsOpen:          status,
		GooglePlaceID:   &placeID,
		Rating:          roundRating(d.Rating),
		ReviewCount:     d.UserRatingsTotal,
	}
}

// ratings keep one fractional digit
func roundRating(r float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(r, 'f', 1, 64), 64)
	return v
}
