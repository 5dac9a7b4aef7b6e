package quotes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository is the data access contract for quote requests.
type Repository interface {
	SaveQuoteRequest(ctx context.Context, q types.QuoteRequest) error
	GetQuoteRequestsByBusiness(ctx context.Context, businessID string) ([]types.QuoteRequest, error)
	UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status string) error
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

func (r *PostgresRepository) SaveQuoteRequest(ctx context.Context, q types.QuoteRequest) error {
	query := `
        INSERT INTO quote_requests (
            id, business_id, user_id, name, email, phone, postcode, urgency,
            service_type, description, preferred_contact_method, preferred_time,
            status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `
	userID := any(nil)
	if q.UserID != "" {
		userID = q.UserID
	}
	preferredTime := any(nil)
	if q.PreferredTime != "" {
		preferredTime = q.PreferredTime
	}
	if _, err := r.pgpool.Exec(ctx, query,
		q.ID, q.BusinessID, userID, q.Name, q.Email, q.Phone, q.Postcode,
		q.Urgency, q.ServiceType, q.Description, q.ContactMethod,
		preferredTime, q.Status, q.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert quote request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetQuoteRequestsByBusiness(ctx context.Context, businessID string) ([]types.QuoteRequest, error) {
	query := `
        SELECT id, business_id, COALESCE(user_id, ''), name, email, phone,
               postcode, urgency, service_type, description,
               preferred_contact_method, COALESCE(preferred_time, ''),
               status, created_at
        FROM quote_requests
        WHERE business_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.pgpool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote requests: %w", err)
	}
	defer rows.Close()

	var quotes []types.QuoteRequest
	for rows.Next() {
		var q types.QuoteRequest
		if err := rows.Scan(
			&q.ID, &q.BusinessID, &q.UserID, &q.Name, &q.Email, &q.Phone,
			&q.Postcode, &q.Urgency, &q.ServiceType, &q.Description,
			&q.ContactMethod, &q.PreferredTime, &q.Status, &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote request row: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading quote request rows: %w", err)
	}
	return quotes, nil
}

func (r *PostgresRepository) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pgpool.Exec(ctx, `
        UPDATE quote_requests SET status = $2 WHERE id = $1
    `, id, status)
	if err != nil {
		return fmt.Errorf("failed to update quote status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("quote request %s not found", id)
	}
	return nil
}
