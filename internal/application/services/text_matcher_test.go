package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/faithfinder/backend/internal/application/services"
	"github.com/faithfinder/backend/internal/domain/entities"
)

func TestMatchesReligion(t *testing.T) {
	group := &entities.FaithGroup{
		Name:         "St. Mary's Cathedral",
		Religion:     "Christianity",
		Denomination: entities.StringPtr("Catholic"),
		Description:  "Historic parish with daily Mass",
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query", "", true},
		{"religion", "christ", true},
		{"religion upper case", "CHRISTIANITY", true},
		{"denomination", "catholic", true},
		{"name", "mary", true},
		{"description", "daily mass", true},
		{"no field", "mosque", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.MatchesReligion(group, tt.query))
		})
	}
}

func TestMatchesReligion_NilDenomination(t *testing.T) {
	group := &entities.FaithGroup{Name: "Grace", Religion: "Christianity", Description: "Welcoming"}
	assert.False(t, services.MatchesReligion(group, "baptist"))
	assert.True(t, services.MatchesReligion(group, ""))
}

func TestMatchesReligion_EmptyQueryMatchesEmptyRecord(t *testing.T) {
	assert.True(t, services.MatchesReligion(&entities.FaithGroup{}, ""))
}
