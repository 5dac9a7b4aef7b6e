package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository is the data access contract for accounts and refresh tokens.
type Repository interface {
	CreateUser(ctx context.Context, user types.User) error
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error)
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshTokenRecord, error)
	InvalidateRefreshToken(ctx context.Context, token string) error
	InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error
}

// RefreshTokenRecord is one stored refresh token and its lifecycle state.
type RefreshTokenRecord struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
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

func (r *PostgresRepository) CreateUser(ctx context.Context, user types.User) error {
	_, err := r.pgpool.Exec(ctx, `
        INSERT INTO users (id, username, email, password_hash, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, user.ID, user.Username, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return r.getUser(ctx, "email = $1", email)
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
	return r.getUser(ctx, "id = $1", id)
}

func (r *PostgresRepository) getUser(ctx context.Context, where string, arg any) (*types.User, error) {
	var u types.User
	err := r.pgpool.QueryRow(ctx, `
        SELECT id, username, email, password_hash, role, created_at
        FROM users
        WHERE `+where, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

func (r *PostgresRepository) StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	_, err := r.pgpool.Exec(ctx, `
        INSERT INTO refresh_tokens (token, user_id, expires_at)
        VALUES ($1, $2, $3)
    `, token, userID, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetRefreshToken(ctx context.Context, token string) (*RefreshTokenRecord, error) {
	var rec RefreshTokenRecord
	err := r.pgpool.QueryRow(ctx, `
        SELECT user_id, expires_at, revoked_at
        FROM refresh_tokens
        WHERE token = $1
    `, token).Scan(&rec.UserID, &rec.ExpiresAt, &rec.RevokedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	return &rec, nil
}

func (r *PostgresRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	_, err := r.pgpool.Exec(ctx, `
        UPDATE refresh_tokens SET revoked_at = NOW()
        WHERE token = $1 AND revoked_at IS NULL
    `, token)
	if err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}
	return nil
}

func (r *PostgresRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pgpool.Exec(ctx, `
        UPDATE refresh_tokens SET revoked_at = NOW()
        WHERE user_id = $1 AND revoked_at IS NULL
    `, userID)
	if err != nil {
		return fmt.Errorf("failed to invalidate user refresh tokens: %w", err)
	}
	return nil
}
