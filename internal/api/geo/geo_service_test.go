package geo

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGeoServiceTest(cities []types.City) *ServiceImpl {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServiceImpl(cities, logger)
}

func TestDistance(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(51.5074, -0.1278, 51.5074, -0.1278))
	})

	t.Run("London to Manchester is roughly 262 km", func(t *testing.T) {
		d := Distance(51.5074, -0.1278, 53.4808, -2.2426)
		assert.InDelta(t, 262, d, 5)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Distance(51.5074, -0.1278, 55.9533, -3.1883)
		b := Distance(55.9533, -3.1883, 51.5074, -0.1278)
		assert.InDelta(t, a, b, 1e-9)
	})
}

func TestServiceImpl_NearestCity(t *testing.T) {
	ctx := context.Background()

	t.Run("exact city coordinates resolve to that city with zero distance", func(t *testing.T) {
		service := setupGeoServiceTest(Cities())

		result, err := service.NearestCity(ctx, 51.5074, -0.1278)
		require.NoError(t, err)
		assert.Equal(t, "London", result.City.Name)
		assert.InDelta(t, 0, result.DistanceKm, 1e-9)
	})

	t.Run("point near Manchester resolves to Manchester not London", func(t *testing.T) {
		service := setupGeoServiceTest(Cities())

		// Stockport, a few km south-east of Manchester city centre.
		result, err := service.NearestCity(ctx, 53.4106, -2.1575)
		require.NoError(t, err)
		assert.Equal(t, "Manchester", result.City.Name)
		assert.Less(t, result.DistanceKm, 15.0)
	})

	t.Run("returned distance is minimal over the table", func(t *testing.T) {
		service := setupGeoServiceTest(Cities())
		lat, lon := 52.0, -1.0

		result, err := service.NearestCity(ctx, lat, lon)
		require.NoError(t, err)
		for _, city := range Cities() {
			assert.LessOrEqual(t, result.DistanceKm, Distance(lat, lon, city.Latitude, city.Longitude))
		}
	})

	t.Run("first minimum in table order wins on exact ties", func(t *testing.T) {
		same := []types.City{
			{Name: "First", Latitude: 50.0, Longitude: 0.0},
			{Name: "Second", Latitude: 50.0, Longitude: 0.0},
		}
		service := setupGeoServiceTest(same)

		result, err := service.NearestCity(ctx, 50.0, 0.0)
		require.NoError(t, err)
		assert.Equal(t, "First", result.City.Name)
	})
}

func TestCities(t *testing.T) {
	cities := Cities()
	require.NotEmpty(t, cities)

	seen := make(map[string]bool, len(cities))
	for _, c := range cities {
		assert.False(t, seen[c.Name], "duplicate city %q", c.Name)
		seen[c.Name] = true
		// UK bounding box, loosely.
		assert.Greater(t, c.Latitude, 49.0, c.Name)
		assert.Less(t, c.Latitude, 61.0, c.Name)
		assert.Greater(t, c.Longitude, -9.0, c.Name)
		assert.Less(t, c.Longitude, 2.5, c.Name)
	}
}
