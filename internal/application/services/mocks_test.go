package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/faithfinder/backend/internal/domain/entities"
)

type MockFaithGroupRepository struct {
	mock.Mock
}

func (m *MockFaithGroupRepository) GetAll(ctx context.Context) ([]*entities.FaithGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FaithGroup), args.Error(1)
}

func (m *MockFaithGroupRepository) GetByID(ctx context.Context, id string) (*entities.FaithGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FaithGroup), args.Error(1)
}

func (m *MockFaithGroupRepository) GetByPlaceID(ctx context.Context, placeID string) (*entities.FaithGroup, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FaithGroup), args.Error(1)
}

func (m *MockFaithGroupRepository) Create(ctx context.Context, group *entities.FaithGroup) error {
	return m.Called(ctx, group).Error(0)
}

func (m *MockFaithGroupRepository) Update(ctx context.Context, group *entities.FaithGroup) error {
	return m.Called(ctx, group).Error(0)
}

func (m *MockFaithGroupRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockFaithGroupSearchRepository struct {
	mock.Mock
}

func (m *MockFaithGroupSearchRepository) Index(ctx context.Context, group *entities.FaithGroup) error {
	return m.Called(ctx, group).Error(0)
}

func (m *MockFaithGroupSearchRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFaithGroupSearchRepository) SuggestReligions(ctx context.Context, text string, limit int) ([]string, error) {
	args := m.Called(ctx, text, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFaithGroupSearchRepository) SuggestLocations(ctx context.Context, text string, limit int) ([]string, error) {
	args := m.Called(ctx, text, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.FaithGroupEvent) error {
	return m.Called(ctx, channel, event).Error(0)
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.FaithGroupEvent, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *entities.FaithGroupEvent), args.Error(1)
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string) error {
	return m.Called(ctx, channel).Error(0)
}

func (m *MockEventBus) Close() error {
	return m.Called().Error(0)
}

type MockCacheProvider struct {
	mock.Mock
}

func (m *MockCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheProvider) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	return m.Called(ctx, key, value, expirationSeconds).Error(0)
}

func (m *MockCacheProvider) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *MockCacheProvider) DeletePattern(ctx context.Context, pattern string) error {
	return m.Called(ctx, pattern).Error(0)
}

func (m *MockCacheProvider) SetNX(ctx context.Context, key string, value []byte, expirationSeconds int) (bool, error) {
	args := m.Called(ctx, key, value, expirationSeconds)
	return args.Bool(0), args.Error(1)
}

type MockPlacesProvider struct {
	mock.Mock
}

func (m *MockPlacesProvider) Search(ctx context.Context, params entities.PlaceSearchParams) (*entities.PlaceSearchPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlaceSearchPage), args.Error(1)
}

func (m *MockPlacesProvider) Details(ctx context.Context, placeID string) (*entities.PlaceDetails, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlaceDetails), args.Error(1)
}
