package listings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetBusinesses(ctx context.Context, tradeSlug, citySlug string) ([]types.Business, error) {
	args := m.Called(ctx, tradeSlug, citySlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Business), args.Error(1)
}

func (m *MockRepository) GetBusinessByID(ctx context.Context, id string) (*types.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Business), args.Error(1)
}

func (m *MockRepository) UpsertBusiness(ctx context.Context, b types.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func setupListingsServiceTest(fallback *Store) (*ServiceImpl, *MockRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockRepository)
	service := NewServiceImpl(mockRepo, fallback, logger)
	return service, mockRepo
}

func TestServiceImpl_GetListings(t *testing.T) {
	ctx := context.Background()
	fallback := NewStore([]types.Business{
		{ID: "fb-1", Name: "Fallback Plumber", Trade: "Plumber", City: "London", Rating: 4.5},
	})

	t.Run("database bucket is filtered and returned", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		dbBucket := []types.Business{
			{ID: "db-1", Name: "DB Plumber", Rating: 4.0},
			{ID: "db-2", Name: "DB Drains", Rating: 4.8},
		}
		mockRepo.On("GetBusinesses", mock.Anything, "plumber", "london").Return(dbBucket, nil).Once()

		result, err := service.GetListings(ctx, "London", "Plumber", types.BusinessFilter{})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "db-2", result[0].ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("database error falls back to the static store", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		mockRepo.On("GetBusinesses", mock.Anything, "plumber", "london").
			Return(nil, errors.New("connection refused")).Once()

		result, err := service.GetListings(ctx, "London", "Plumber", types.BusinessFilter{})
		require.NoError(t, err, "fallback path must not surface the database error")
		require.Len(t, result, 1)
		assert.Equal(t, "fb-1", result[0].ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty database bucket falls back to the static store", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		mockRepo.On("GetBusinesses", mock.Anything, "plumber", "london").
			Return([]types.Business{}, nil).Once()

		result, err := service.GetListings(ctx, "London", "Plumber", types.BusinessFilter{})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "fb-1", result[0].ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown bucket in both sources is empty not an error", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		mockRepo.On("GetBusinesses", mock.Anything, "thatcher", "atlantis").
			Return([]types.Business{}, nil).Once()

		result, err := service.GetListings(ctx, "Atlantis", "Thatcher", types.BusinessFilter{})
		require.NoError(t, err)
		assert.Empty(t, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("city and trade are slugged before the repository call", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		mockRepo.On("GetBusinesses", mock.Anything, "heating-gas", "brighton-hove").
			Return([]types.Business{{ID: "x"}}, nil).Once()

		_, err := service.GetListings(ctx, "Brighton & Hove", "Heating & Gas", types.BusinessFilter{})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("second request within the TTL is served from cache", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		dbBucket := []types.Business{{ID: "db-1", Rating: 4.0}}
		mockRepo.On("GetBusinesses", mock.Anything, "plumber", "leeds").Return(dbBucket, nil).Once()

		_, err := service.GetListings(ctx, "Leeds", "Plumber", types.BusinessFilter{})
		require.NoError(t, err)
		result, err := service.GetListings(ctx, "Leeds", "Plumber", types.BusinessFilter{})
		require.NoError(t, err)
		assert.Len(t, result, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("filter applies to the fallback bucket too", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		mockRepo.On("GetBusinesses", mock.Anything, "plumber", "london").
			Return(nil, errors.New("down")).Once()

		result, err := service.GetListings(ctx, "London", "Plumber", types.BusinessFilter{MinRating: 4.9})
		require.NoError(t, err)
		assert.Empty(t, result)
		mockRepo.AssertExpectations(t)
	})
}

func TestServiceImpl_GetBusiness(t *testing.T) {
	ctx := context.Background()
	fallback := NewStore([]types.Business{
		{ID: "fb-1", Name: "Fallback Plumber", Trade: "Plumber", City: "London"},
	})

	t.Run("database hit", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		expected := &types.Business{ID: "db-1", Name: "DB Plumber"}
		mockRepo.On("GetBusinessByID", mock.Anything, "db-1").Return(expected, nil).Once()

		b, err := service.GetBusiness(ctx, "db-1")
		require.NoError(t, err)
		assert.Equal(t, expected, b)
		mockRepo.AssertExpectations(t)
	})

	t.Run("database miss scans the fallback store", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		mockRepo.On("GetBusinessByID", mock.Anything, "fb-1").Return(nil, nil).Once()

		b, err := service.GetBusiness(ctx, "fb-1")
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, "Fallback Plumber", b.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id everywhere returns nil, nil", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		mockRepo.On("GetBusinessByID", mock.Anything, "nope").Return(nil, nil).Once()

		b, err := service.GetBusiness(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, b)
		mockRepo.AssertExpectations(t)
	})

	t.Run("database error still tries the fallback", func(t *testing.T) {
		service, mockRepo := setupListingsServiceTest(fallback)
		mockRepo.On("GetBusinessByID", mock.Anything, "fb-1").
			Return(nil, errors.New("timeout")).Once()

		b, err := service.GetBusiness(ctx, "fb-1")
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, "fb-1", b.ID)
		mockRepo.AssertExpectations(t)
	})
}

func TestServiceImpl_GetTrades(t *testing.T) {
	service, _ := setupListingsServiceTest(NewStore(nil))

	trades := service.GetTrades(context.Background())
	require.NotEmpty(t, trades)

	slugs := make(map[string]bool)
	for _, trade := range trades {
		assert.Equal(t, Slugify(trade.Name), trade.Slug)
		assert.False(t, slugs[trade.Slug], "duplicate trade slug %q", trade.Slug)
		slugs[trade.Slug] = true
	}
}
