package geo

import (
	"context"
	"log/slog"
	"math"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*ServiceImpl)(nil)

// Service resolves raw coordinates to the nearest covered city.
type Service interface {
	NearestCity(ctx context.Context, lat, lon float64) (types.NearestCityResult, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	cities []types.City
}

func NewServiceImpl(cities []types.City, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		cities: cities,
	}
}

// NearestCity scans the full city table and returns the entry with the
// smallest haversine distance to the input coordinate. The first minimum
// in table order wins; two exactly equidistant cities are not expected
// given real-world spacing.
func (s *ServiceImpl) NearestCity(ctx context.Context, lat, lon float64) (types.NearestCityResult, error) {
	_, span := otel.Tracer("GeoService").Start(ctx, "NearestCity", trace.WithAttributes(
		attribute.Float64("lat", lat),
		attribute.Float64("lon", lon),
	))
	defer span.End()

	var nearest types.City
	minDistance := math.Inf(1)
	for _, city := range s.cities {
		d := Distance(lat, lon, city.Latitude, city.Longitude)
		if d < minDistance {
			minDistance = d
			nearest = city
		}
	}

	s.logger.DebugContext(ctx, "Resolved nearest city",
		slog.String("city", nearest.Name),
		slog.Float64("distance_km", minDistance),
	)
	span.SetAttributes(attribute.String("city", nearest.Name))
	span.SetStatus(codes.Ok, "Nearest city resolved")

	return types.NearestCityResult{City: nearest, DistanceKm: minDistance}, nil
}

// Distance computes the great-circle distance between two coordinates
// using the Haversine formula. Returns distance in kilometers.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371 // Earth's radius in kilometers

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}
