package listings

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupListingsHandlerTest(fallback *Store) (*chi.Mux, *MockRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockRepository)
	service := NewServiceImpl(mockRepo, fallback, logger)
	handler := NewHandler(service, logger)

	router := chi.NewRouter()
	router.Get("/listings/{city}/{trade}", handler.GetListings)
	router.Get("/businesses/{id}", handler.GetBusiness)
	router.Get("/trades", handler.GetTrades)
	return router, mockRepo
}

func TestHandler_GetListings(t *testing.T) {
	fallback := NewStore([]types.Business{
		{ID: "fb-1", Name: "Fallback Plumber", Trade: "Plumber", City: "London", Rating: 4.5, Website: "https://fb.example"},
		{ID: "fb-2", Name: "Another Plumber", Trade: "Plumber", City: "London", Rating: 4.9},
	})

	t.Run("returns results envelope with count", func(t *testing.T) {
		router, mockRepo := setupListingsHandlerTest(fallback)
		mockRepo.On("GetBusinesses", mock.Anything, "plumber", "london").
			Return([]types.Business{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/listings/london/plumber", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Results []types.Business `json:"results"`
			Count   int              `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Count)
		// Default sort is rating descending.
		assert.Equal(t, "fb-2", body.Results[0].ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("query parameters feed the filter", func(t *testing.T) {
		router, mockRepo := setupListingsHandlerTest(fallback)
		mockRepo.On("GetBusinesses", mock.Anything, "plumber", "london").
			Return([]types.Business{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/listings/london/plumber?has_website=true", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Results []types.Business `json:"results"`
			Count   int              `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Equal(t, 1, body.Count)
		assert.Equal(t, "fb-1", body.Results[0].ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown bucket is 200 with empty results", func(t *testing.T) {
		router, mockRepo := setupListingsHandlerTest(fallback)
		mockRepo.On("GetBusinesses", mock.Anything, "thatcher", "atlantis").
			Return([]types.Business{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/listings/atlantis/thatcher", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Zero(t, body.Count)
		mockRepo.AssertExpectations(t)
	})
}

func TestHandler_GetBusiness(t *testing.T) {
	fallback := NewStore(nil)

	t.Run("known id returns business with open_now", func(t *testing.T) {
		router, mockRepo := setupListingsHandlerTest(fallback)
		mockRepo.On("GetBusinessByID", mock.Anything, "b1").
			Return(&types.Business{ID: "b1", Name: "Ace", IsOpen24Hours: true}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/businesses/b1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Business types.Business `json:"business"`
			OpenNow  bool           `json:"open_now"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Ace", body.Business.Name)
		assert.True(t, body.OpenNow)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id is a 404 envelope", func(t *testing.T) {
		router, mockRepo := setupListingsHandlerTest(fallback)
		mockRepo.On("GetBusinessByID", mock.Anything, "nope").Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/businesses/nope", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Business not found")
		mockRepo.AssertExpectations(t)
	})
}

func TestHandler_GetTrades(t *testing.T) {
	router, _ := setupListingsHandlerTest(NewStore(nil))

	req := httptest.NewRequest(http.MethodGet, "/trades", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var trades []types.Trade
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &trades))
	assert.Len(t, trades, len(Trades))
}
