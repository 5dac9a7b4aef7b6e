package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	ListingsRequestsTotal   metric.Int64Counter
	ListingsFallbackTotal   metric.Int64Counter
	NearestCityRequestsTotal metric.Int64Counter
	QuoteRequestsTotal      metric.Int64Counter
	DbQueryDurationSeconds  metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments once, using
// the meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("EmergencyTradesmen")
		var err error
		m := &AppMetrics{}

		m.ListingsRequestsTotal, err = meter.Int64Counter(
			"listings_requests_total",
			metric.WithDescription("Total number of listings lookups served"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create listings_requests_total: %v", err)
		}

		m.ListingsFallbackTotal, err = meter.Int64Counter(
			"listings_fallback_total",
			metric.WithDescription("Listings lookups answered from the static fallback dataset"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create listings_fallback_total: %v", err)
		}

		m.NearestCityRequestsTotal, err = meter.Int64Counter(
			"nearest_city_requests_total",
			metric.WithDescription("Total number of nearest-city resolutions"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create nearest_city_requests_total: %v", err)
		}

		m.QuoteRequestsTotal, err = meter.Int64Counter(
			"quote_requests_total",
			metric.WithDescription("Total number of quote requests accepted"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create quote_requests_total: %v", err)
		}

		m.DbQueryDurationSeconds, err = meter.Float64Histogram(
			"db_query_duration_seconds",
			metric.WithDescription("Duration of database queries in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_duration_seconds: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global metrics instance. InitAppMetrics must have run.
func Get() *AppMetrics {
	return appMetrics
}
