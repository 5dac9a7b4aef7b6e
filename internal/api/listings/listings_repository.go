package listings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/emergencytradesmen/tradesmen-api/app/observability/metrics"
	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository is the data access contract for business listings.
type Repository interface {
	GetBusinesses(ctx context.Context, tradeSlug, citySlug string) ([]types.Business, error)
	GetBusinessByID(ctx context.Context, id string) (*types.Business, error)
	UpsertBusiness(ctx context.Context, b types.Business) error
}

// PGXPool is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PGXPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresRepository struct {
	logger *slog.Logger
	pgpool PGXPool
}

func NewPostgresRepository(pgpool PGXPool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

const businessColumns = `
        id, name, trade, city, rating, review_count, address, hours,
        is_open_24_hours, phone, COALESCE(website, ''), COALESCE(email, ''),
        COALESCE(featured_review, ''), is_available_now, verified
`

// GetBusinesses returns the verified listings for a (trade, city) bucket,
// ordered by rating then review count descending. An unknown bucket is
// an empty result, not an error.
func (r *PostgresRepository) GetBusinesses(ctx context.Context, tradeSlug, citySlug string) ([]types.Business, error) {
	query := `
        SELECT` + businessColumns + `
        FROM businesses
        WHERE trade_slug = $1 AND city_slug = $2 AND verified = TRUE
        ORDER BY rating DESC, review_count DESC
    `
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query, tradeSlug, citySlug)
	if m := metrics.Get(); m != nil {
		m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	var businesses []types.Business
	for rows.Next() {
		var b types.Business
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Trade, &b.City, &b.Rating, &b.ReviewCount,
			&b.Address, &b.Hours, &b.IsOpen24Hours, &b.Phone, &b.Website,
			&b.Email, &b.FeaturedReview, &b.IsAvailableNow, &b.Verified,
		); err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading business rows: %w", err)
	}

	for i := range businesses {
		photos, err := r.getPhotos(ctx, businesses[i].ID)
		if err != nil {
			return nil, err
		}
		businesses[i].Photos = photos
	}
	return businesses, nil
}

// GetBusinessByID returns one business with its photos, or nil if the id
// is unknown.
func (r *PostgresRepository) GetBusinessByID(ctx context.Context, id string) (*types.Business, error) {
	query := `
        SELECT` + businessColumns + `
        FROM businesses
        WHERE id = $1
    `
	var b types.Business
	if err := r.pgpool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Trade, &b.City, &b.Rating, &b.ReviewCount,
		&b.Address, &b.Hours, &b.IsOpen24Hours, &b.Phone, &b.Website,
		&b.Email, &b.FeaturedReview, &b.IsAvailableNow, &b.Verified,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find business: %w", err)
	}

	photos, err := r.getPhotos(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	b.Photos = photos
	return &b, nil
}

// UpsertBusiness inserts or replaces a business record and its photo set.
// Used by the seeding script, never by the serving path.
func (r *PostgresRepository) UpsertBusiness(ctx context.Context, b types.Business) error {
	query := `
        INSERT INTO businesses (
            id, name, trade, trade_slug, city, city_slug, rating, review_count,
            address, hours, is_open_24_hours, phone, website, email,
            featured_review, is_available_now, verified
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            rating = EXCLUDED.rating,
            review_count = EXCLUDED.review_count,
            address = EXCLUDED.address,
            hours = EXCLUDED.hours,
            is_open_24_hours = EXCLUDED.is_open_24_hours,
            phone = EXCLUDED.phone,
            website = EXCLUDED.website,
            email = EXCLUDED.email,
            featured_review = EXCLUDED.featured_review,
            is_available_now = EXCLUDED.is_available_now,
            verified = EXCLUDED.verified
    `
	if _, err := r.pgpool.Exec(ctx, query,
		b.ID, b.Name, b.Trade, Slugify(b.Trade), b.City, Slugify(b.City),
		b.Rating, b.ReviewCount, b.Address, b.Hours, b.IsOpen24Hours,
		b.Phone, nullable(b.Website), nullable(b.Email),
		nullable(b.FeaturedReview), b.IsAvailableNow, b.Verified,
	); err != nil {
		return fmt.Errorf("failed to upsert business %s: %w", b.ID, err)
	}

	for i, p := range b.Photos {
		if _, err := r.pgpool.Exec(ctx, `
            INSERT INTO business_photos (id, business_id, url, is_primary, alt_text, position)
            VALUES ($1, $2, $3, $4, $5, $6)
            ON CONFLICT (id) DO UPDATE SET
                url = EXCLUDED.url,
                is_primary = EXCLUDED.is_primary,
                alt_text = EXCLUDED.alt_text,
                position = EXCLUDED.position
        `, p.ID, b.ID, p.URL, p.IsPrimary, p.AltText, i); err != nil {
			return fmt.Errorf("failed to upsert photo %s: %w", p.ID, err)
		}
	}
	return nil
}

func (r *PostgresRepository) getPhotos(ctx context.Context, businessID string) ([]types.BusinessPhoto, error) {
	rows, err := r.pgpool.Query(ctx, `
        SELECT id, url, is_primary, COALESCE(alt_text, '')
        FROM business_photos
        WHERE business_id = $1
        ORDER BY position
    `, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	var photos []types.BusinessPhoto
	for rows.Next() {
		var p types.BusinessPhoto
		if err := rows.Scan(&p.ID, &p.URL, &p.IsPrimary, &p.AltText); err != nil {
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading photo rows: %w", err)
	}
	return photos, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
