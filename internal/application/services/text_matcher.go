package services

import (
	"strings"

	"github.com/faithfinder/backend/internal/domain/entities"
)

// MatchesReligion reports whether any of the group's religion, denomination,
// name or description contains query, ignoring case. An empty query matches
// every group; a nil denomination never matches.
func MatchesReligion(group *entities.FaithGroup, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(group.Religion), q) {
		return true
	}
	if group.Denomination != nil && strings.Contains(strings.ToLower(*group.Denomination), q) {
		return true
	}
	if strings.Contains(strings.ToLower(group.Name), q) {
		return true
	}
	return strings.Contains(strings.ToLower(group.Description), q)
}
