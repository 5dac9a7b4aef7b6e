package reviews

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository is the data access contract for reviews.
type Repository interface {
	GetReviewsByBusiness(ctx context.Context, businessID string) ([]types.Review, error)
	SaveReview(ctx context.Context, review types.Review) error
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

func (r *PostgresRepository) GetReviewsByBusiness(ctx context.Context, businessID string) ([]types.Review, error) {
	query := `
        SELECT id, business_id, author, rating, text, verified, created_at
        FROM reviews
        WHERE business_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.pgpool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []types.Review
	for rows.Next() {
		var rv types.Review
		if err := rows.Scan(&rv.ID, &rv.BusinessID, &rv.Author, &rv.Rating, &rv.Text, &rv.Verified, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading review rows: %w", err)
	}
	return reviews, nil
}

func (r *PostgresRepository) SaveReview(ctx context.Context, review types.Review) error {
	query := `
        INSERT INTO reviews (id, business_id, author, rating, text, verified, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	if _, err := r.pgpool.Exec(ctx, query,
		review.ID, review.BusinessID, review.Author, review.Rating,
		review.Text, review.Verified, review.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}
