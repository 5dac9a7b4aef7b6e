package listings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emergencytradesmen/tradesmen-api/app/observability/metrics"
	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for listings queries.
type Service interface {
	GetListings(ctx context.Context, city, trade string, filter types.BusinessFilter) ([]types.Business, error)
	GetBusiness(ctx context.Context, id string) (*types.Business, error)
	GetTrades(ctx context.Context) []types.Trade
}

type ServiceImpl struct {
	logger     *slog.Logger
	repository Repository
	fallback   *Store
	bucketTTL  *cache.Cache
	now        func() time.Time
}

func NewServiceImpl(repository Repository, fallback *Store, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		repository: repository,
		fallback:   fallback,
		bucketTTL:  cache.New(5*time.Minute, 10*time.Minute),
		now:        time.Now,
	}
}

// GetListings returns the filtered, sorted listings for a (city, trade)
// bucket. The database is the primary source; the static fallback store
// answers when the database has nothing for the bucket or errors.
// Filtering always runs over the materialized list, never in SQL, so the
// two sources behave identically.
func (s *ServiceImpl) GetListings(ctx context.Context, city, trade string, filter types.BusinessFilter) ([]types.Business, error) {
	ctx, span := otel.Tracer("ListingsService").Start(ctx, "GetListings", trace.WithAttributes(
		attribute.String("city", city),
		attribute.String("trade", trade),
	))
	defer span.End()

	citySlug := Slugify(city)
	tradeSlug := Slugify(trade)

	if m := metrics.Get(); m != nil {
		m.ListingsRequestsTotal.Add(ctx, 1)
	}

	bucket, err := s.loadBucket(ctx, citySlug, tradeSlug)
	if err != nil {
		s.logger.WarnContext(ctx, "Database lookup failed, using fallback dataset",
			slog.String("city", citySlug),
			slog.String("trade", tradeSlug),
			slog.Any("error", err),
		)
		span.RecordError(err)
		bucket = nil
	}
	if len(bucket) == 0 {
		bucket = s.fallback.Lookup(citySlug, tradeSlug)
		if len(bucket) > 0 {
			if m := metrics.Get(); m != nil {
				m.ListingsFallbackTotal.Add(ctx, 1)
			}
		}
	}

	result := ApplyFilter(bucket, filter)
	span.SetAttributes(attribute.Int("listings.count", len(result)))
	span.SetStatus(codes.Ok, "Listings returned")
	return result, nil
}

// GetBusiness looks up a business by id: database point-query first, then
// a linear scan of the fallback store. Returns nil when neither source
// knows the id; absence is the caller's 404, not an error.
func (s *ServiceImpl) GetBusiness(ctx context.Context, id string) (*types.Business, error) {
	ctx, span := otel.Tracer("ListingsService").Start(ctx, "GetBusiness", trace.WithAttributes(
		attribute.String("business.id", id),
	))
	defer span.End()

	b, err := s.repository.GetBusinessByID(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "Database lookup failed, scanning fallback dataset",
			slog.String("business.id", id),
			slog.Any("error", err),
		)
		span.RecordError(err)
	}
	if b == nil {
		b = s.fallback.FindByID(id)
	}
	if b == nil {
		span.SetStatus(codes.Ok, "Business not found")
		return nil, nil
	}

	span.SetStatus(codes.Ok, "Business returned")
	return b, nil
}

// GetTrades returns the fixed trade catalogue.
func (s *ServiceImpl) GetTrades(ctx context.Context) []types.Trade {
	return Trades
}

// IsOpen reports whether the business is open at the service clock.
func (s *ServiceImpl) IsOpen(b types.Business) bool {
	return IsOpenNow(b.Hours, b.IsOpen24Hours, s.now)
}

func (s *ServiceImpl) loadBucket(ctx context.Context, citySlug, tradeSlug string) ([]types.Business, error) {
	key := fmt.Sprintf("bucket:%s:%s", citySlug, tradeSlug)
	if cached, found := s.bucketTTL.Get(key); found {
		return cached.([]types.Business), nil
	}

	bucket, err := s.repository.GetBusinesses(ctx, tradeSlug, citySlug)
	if err != nil {
		return nil, err
	}
	if len(bucket) > 0 {
		s.bucketTTL.Set(key, bucket, cache.DefaultExpiration)
	}
	return bucket, nil
}
