package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/geo"
	"github.com/faithfinder/backend/internal/domain/providers"
	"github.com/faithfinder/backend/internal/domain/repositories"
	"github.com/faithfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// FaithGroupService handles faith group writes and keeps the search index
// and event subscribers in step with the repository
type FaithGroupService struct {
	repo       repositories.FaithGroupRepository
	searchRepo repositories.FaithGroupSearchRepository
	eventBus   providers.EventBus
	now        func() time.Time
}

// NewFaithGroupService creates a new faith group service. searchRepo and
// eventBus may be nil.
func NewFaithGroupService(repo repositories.FaithGroupRepository, searchRepo repositories.FaithGroupSearchRepository, eventBus providers.EventBus) *FaithGroupService {
	return &FaithGroupService{
		repo:       repo,
		searchRepo: searchRepo,
		eventBus:   eventBus,
		now:        time.Now,
	}
}

// List returns every faith group
func (s *FaithGroupService) List(ctx context.Context) ([]*entities.FaithGroup, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a faith group by ID
func (s *FaithGroupService) GetByID(ctx context.Context, id string) (*entities.FaithGroup, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input, stores a new faith group and indexes it
func (s *FaithGroupService) Create(ctx context.Context, input *entities.FaithGroupInput) (*entities.FaithGroup, error) {
	return s.create(ctx, input, entities.FaithGroupEventCreated)
}

// Import stores a faith group built from a third-party place
func (s *FaithGroupService) Import(ctx context.Context, input *entities.FaithGroupInput) (*entities.FaithGroup, error) {
	return s.create(ctx, input, entities.FaithGroupEventImported)
}

func (s *FaithGroupService) create(ctx context.Context, input *entities.FaithGroupInput, eventType entities.FaithGroupEventType) (*entities.FaithGroup, error) {
	if input == nil {
		return nil, apperrors.NewValidationError("Invalid faith group data")
	}
	validate := ValidateFaithGroupInput
	if eventType == entities.FaithGroupEventImported {
		validate = validateImportedInput
	}
	if fields := validate(input); len(fields) > 0 {
		return nil, apperrors.NewValidationError("Invalid faith group data", fields...)
	}

	group := input.ToFaithGroup()
	normalizeCoordinates(group)
	group.ID = uuid.New().String()
	now := s.now().UTC()
	group.CreatedAt = now
	group.UpdatedAt = now

	if err := s.repo.Create(ctx, group); err != nil {
		return nil, err
	}

	s.index(ctx, group)
	s.publish(ctx, group.ID, eventType)
	return group, nil
}

// Update applies a partial update to a stored faith group
func (s *FaithGroupService) Update(ctx context.Context, id string, patch *entities.FaithGroupPatch) (*entities.FaithGroup, error) {
	if patch == nil {
		return nil, apperrors.NewValidationError("Invalid faith group data")
	}
	if fields := ValidateFaithGroupPatch(patch); len(fields) > 0 {
		return nil, apperrors.NewValidationError("Invalid faith group data", fields...)
	}

	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(group)
	normalizeCoordinates(group)
	group.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, group); err != nil {
		return nil, err
	}

	s.index(ctx, group)
	s.publish(ctx, group.ID, entities.FaithGroupEventUpdated)
	return group, nil
}

// Delete removes a faith group and drops it from the index
func (s *FaithGroupService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Delete(ctx, id); err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).Str("faith_group_id", id).Msg("failed to remove faith group from index")
		}
	}
	s.publish(ctx, id, entities.FaithGroupEventDeleted)
	return nil
}

// index failures are logged; the repository stays the source of truth
func (s *FaithGroupService) index(ctx context.Context, group *entities.FaithGroup) {
	if s.searchRepo == nil {
		return
	}
	if err := s.searchRepo.Index(ctx, group); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("faith_group_id", group.ID).Msg("failed to index faith group")
	}
}

func (s *FaithGroupService) publish(ctx context.Context, id string, eventType entities.FaithGroupEventType) {
	if s.eventBus == nil {
		return
	}
	event := entities.NewFaithGroupEvent(id, eventType)
	if err := s.eventBus.Publish(ctx, providers.EventChannelFaithGroupUpdates, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("faith_group_id", id).Msg("failed to publish faith group event")
	}
}

// ValidateFaithGroupInput returns one field error per invalid field
func ValidateFaithGroupInput(in *entities.FaithGroupInput) []apperrors.FieldError {
	var fields []apperrors.FieldError
	required := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"religion", in.Religion},
		{"description", in.Description},
		{"address", in.Address},
		{"city", in.City},
		{"state", in.State},
		{"zipCode", in.ZipCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields = append(fields, apperrors.FieldError{Field: r.name, Message: "is required"})
		}
	}
	fields = append(fields, validateCoordinatePair(in.Latitude, in.Longitude)...)
	if in.IsOpen != "" && !in.IsOpen.Valid() {
		fields = append(fields, apperrors.FieldError{Field: "isOpen", Message: "must be one of open, closed, unknown"})
	}
	return fields
}

// imported places often lack a full postal address
func validateImportedInput(in *entities.FaithGroupInput) []apperrors.FieldError {
	var fields []apperrors.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "is required"})
	}
	if strings.TrimSpace(in.Religion) == "" {
		fields = append(fields, apperrors.FieldError{Field: "religion", Message: "is required"})
	}
	return append(fields, validateCoordinatePair(in.Latitude, in.Longitude)...)
}

// ValidateFaithGroupPatch checks only the fields present in the patch
func ValidateFaithGroupPatch(p *entities.FaithGroupPatch) []apperrors.FieldError {
	var fields []apperrors.FieldError
	nonEmpty := []struct {
		name  string
		value *string
	}{
		{"name", p.Name},
		{"religion", p.Religion},
		{"description", p.Description},
		{"address", p.Address},
		{"city", p.City},
		{"state", p.State},
		{"zipCode", p.ZipCode},
	}
	for _, f := range nonEmpty {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			fields = append(fields, apperrors.FieldError{Field: f.name, Message: "must not be empty"})
		}
	}
	if p.Latitude != nil || p.Longitude != nil {
		if p.Latitude == nil || p.Longitude == nil {
			fields = append(fields, apperrors.FieldError{Field: "latitude", Message: "latitude and longitude must be updated together"})
		} else {
			fields = append(fields, validateCoordinatePair(*p.Latitude, *p.Longitude)...)
		}
	}
	if p.IsOpen != nil && !p.IsOpen.Valid() {
		fields = append(fields, apperrors.FieldError{Field: "isOpen", Message: "must be one of open, closed, unknown"})
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		fields = append(fields, apperrors.FieldError{Field: "rating", Message: "must be between 0 and 5"})
	}
	if p.ReviewCount != nil && *p.ReviewCount < 0 {
		fields = append(fields, apperrors.FieldError{Field: "reviewCount", Message: "must not be negative"})
	}
	return fields
}

func validateCoordinatePair(lat, lon string) []apperrors.FieldError {
	var fields []apperrors.FieldError
	la, latErr := geo.ParseCoordinate(lat)
	if latErr != nil {
		fields = append(fields, apperrors.FieldError{Field: "latitude", Message: "must be a decimal number"})
	} else if la < -90 || la > 90 {
		fields = append(fields, apperrors.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	lo, lonErr := geo.ParseCoordinate(lon)
	if lonErr != nil {
		fields = append(fields, apperrors.FieldError{Field: "longitude", Message: "must be a decimal number"})
	} else if lo < -180 || lo > 180 {
		fields = append(fields, apperrors.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	return fields
}

// normalizeCoordinates rewrites valid coordinates in the stored 8-digit form
func normalizeCoordinates(g *entities.FaithGroup) {
	if p, ok := g.Coordinates(); ok {
		g.Latitude = geo.FormatCoordinate(p.Latitude)
		g.Longitude = geo.FormatCoordinate(p.Longitude)
	}
}
