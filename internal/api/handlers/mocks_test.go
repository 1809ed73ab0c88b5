package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
)

type MockFaithGroupService struct {
	mock.Mock
}

func (m *MockFaithGroupService) List(ctx context.Context) ([]*entities.FaithGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FaithGroup), args.Error(1)
}

func (m *MockFaithGroupService) GetByID(ctx context.Context, id string) (*entities.FaithGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FaithGroup), args.Error(1)
}

func (m *MockFaithGroupService) Create(ctx context.Context, input *entities.FaithGroupInput) (*entities.FaithGroup, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FaithGroup), args.Error(1)
}

func (m *MockFaithGroupService) Update(ctx context.Context, id string, patch *entities.FaithGroupPatch) (*entities.FaithGroup, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FaithGroup), args.Error(1)
}

func (m *MockFaithGroupService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query entities.SearchQuery) ([]entities.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SearchResult), args.Error(1)
}

type MockGeolocationProvider struct {
	mock.Mock
}

func (m *MockGeolocationProvider) Geocode(ctx context.Context, location string) (*providers.GeocodedAddress, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.GeocodedAddress), args.Error(1)
}

func (m *MockGeolocationProvider) KnownLocations() []string {
	return nil
}

type MockSuggester struct {
	mock.Mock
}

func (m *MockSuggester) Religions(ctx context.Context, q string) ([]string, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSuggester) Locations(ctx context.Context, q string) ([]string, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSuggester) AdminLocations(ctx context.Context, q string) ([]string, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockPlacesImporter struct {
	mock.Mock
}

func (m *MockPlacesImporter) Search(ctx context.Context, params entities.PlaceSearchParams) (*entities.PlaceSearchPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlaceSearchPage), args.Error(1)
}

func (m *MockPlacesImporter) Import(ctx context.Context, placeIDs []string) (*entities.ImportSummary, error) {
	args := m.Called(ctx, placeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ImportSummary), args.Error(1)
}

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Register(ctx context.Context, in *entities.RegisterInput) (*entities.User, *entities.Session, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entities.User), args.Get(1).(*entities.Session), args.Error(2)
}

func (m *MockAuthenticator) Login(ctx context.Context, in *entities.LoginInput) (*entities.User, *entities.Session, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entities.User), args.Get(1).(*entities.Session), args.Error(2)
}

func (m *MockAuthenticator) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthenticator) CurrentUser(ctx context.Context, sessionID string) (*entities.User, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}
