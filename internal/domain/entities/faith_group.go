package entities

import (
	"time"

	"github.com/faithfinder/backend/internal/domain/geo"
)

// OpenStatus is the operational status tag of a faith group
type OpenStatus string

const (
	OpenStatusOpen    OpenStatus = "open"
	OpenStatusClosed  OpenStatus = "closed"
	OpenStatusUnknown OpenStatus = "unknown"
)

// Valid reports whether s is one of the known statuses
func (s OpenStatus) Valid() bool {
	switch s {
	case OpenStatusOpen, OpenStatusClosed, OpenStatusUnknown:
		return true
	}
	return false
}

// Religions lists the religion categories offered by the directory
var Religions = []string{"Christianity", "Judaism", "Islam", "Hinduism", "Buddhism", "Other"}

// ServiceTime is a recurring worship or meeting time
type ServiceTime struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// FaithGroup represents a faith community listed in the directory
type FaithGroup struct {
	ID              string        `json:"id" db:"id"`
	Name            string        `json:"name" db:"name"`
	Religion        string        `json:"religion" db:"religion"`
	Denomination    *string       `json:"denomination" db:"denomination"`
	Description     string        `json:"description" db:"description"`
	LongDescription *string       `json:"longDescription" db:"long_description"`
	Address         string        `json:"address" db:"address"`
	City            string        `json:"city" db:"city"`
	State           string        `json:"state" db:"state"`
	ZipCode         string        `json:"zipCode" db:"zip_code"`
	Latitude        string        `json:"latitude" db:"latitude"`
	Longitude       string        `json:"longitude" db:"longitude"`
	Phone           *string       `json:"phone" db:"phone"`
	Email           *string       `json:"email" db:"email"`
	Website         *string       `json:"website" db:"website"`
	Rating          float64       `json:"rating" db:"rating"`
	ReviewCount     int           `json:"reviewCount" db:"review_count"`
	ServiceTimes    []ServiceTime `json:"serviceTimes" db:"-"`
	IsOpen          OpenStatus    `json:"isOpen" db:"is_open"`
	GooglePlaceID   *string       `json:"googlePlaceId,omitempty" db:"google_place_id"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`
}

// Coordinates parses the stored latitude/longitude. It reports false when
// either value is missing, malformed or out of range.
func (g *FaithGroup) Coordinates() (geo.Point, bool) {
	p, err := geo.ParsePoint(g.Latitude, g.Longitude)
	if err != nil {
		return geo.Point{}, false
	}
	return p, true
}

// Clone returns a deep copy so callers can hand out records without sharing
// pointer fields or the service time slice.
func (g *FaithGroup) Clone() *FaithGroup {
	if g == nil {
		return nil
	}
	c := *g
	c.Denomination = cloneString(g.Denomination)
	c.LongDescription = cloneString(g.LongDescription)
	c.Phone = cloneString(g.Phone)
	c.Email = cloneString(g.Email)
	c.Website = cloneString(g.Website)
	c.GooglePlaceID = cloneString(g.GooglePlaceID)
	if g.ServiceTimes != nil {
		c.ServiceTimes = make([]ServiceTime, len(g.ServiceTimes))
		copy(c.ServiceTimes, g.ServiceTimes)
	}
	return &c
}

// CityState returns the "City, State" label used for location suggestions
func (g *FaithGroup) CityState() string {
	if g.State == "" {
		return g.City
	}
	if g.City == "" {
		return g.State
	}
	return g.City + ", " + g.State
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr returns a pointer to s, or nil when s is empty
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
