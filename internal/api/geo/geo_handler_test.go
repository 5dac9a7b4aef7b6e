package geo

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGeoHandlerTest() *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewServiceImpl(Cities(), logger)
	return NewHandler(service, logger)
}

func TestHandler_NearestCity(t *testing.T) {
	handler := setupGeoHandlerTest()

	t.Run("valid coordinates return the nearest city", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/geo/nearest-city?lat=51.5074&lon=-0.1278", nil)
		rr := httptest.NewRecorder()

		handler.NearestCity(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			City struct {
				Name string `json:"name"`
			} `json:"city"`
			DistanceKm float64 `json:"distance_km"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "London", body.City.Name)
		assert.InDelta(t, 0, body.DistanceKm, 1e-6)
	})

	t.Run("missing coordinates are a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/geo/nearest-city", nil)
		rr := httptest.NewRecorder()

		handler.NearestCity(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "error")
	})

	t.Run("malformed coordinates are a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/geo/nearest-city?lat=north&lon=west", nil)
		rr := httptest.NewRecorder()

		handler.NearestCity(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandler_ListCities(t *testing.T) {
	handler := setupGeoHandlerTest()
	req := httptest.NewRequest(http.MethodGet, "/geo/cities", nil)
	rr := httptest.NewRecorder()

	handler.ListCities(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var cities []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cities))
	assert.Len(t, cities, len(Cities()))
}
