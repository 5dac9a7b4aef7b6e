package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository is the data access contract for conversations and messages.
type Repository interface {
	FindConversation(ctx context.Context, userID, businessID string) (*types.Conversation, error)
	GetConversationByID(ctx context.Context, id uuid.UUID) (*types.Conversation, error)
	SaveConversation(ctx context.Context, c types.Conversation) error
	GetConversationsByUser(ctx context.Context, userID string) ([]types.Conversation, error)
	SaveMessage(ctx context.Context, m types.Message) error
	GetMessages(ctx context.Context, conversationID uuid.UUID) ([]types.Message, error)
	MarkConversationRead(ctx context.Context, conversationID uuid.UUID, userID string) error
	TotalUnreadCount(ctx context.Context, userID string) (int, error)
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

const conversationColumns = `
        id, business_id, business_name, user_id, COALESCE(last_message, ''),
        last_message_at, unread_count
`

func (r *PostgresRepository) FindConversation(ctx context.Context, userID, businessID string) (*types.Conversation, error) {
	query := `
        SELECT` + conversationColumns + `
        FROM conversations
        WHERE user_id = $1 AND business_id = $2
    `
	var c types.Conversation
	if err := r.pgpool.QueryRow(ctx, query, userID, businessID).Scan(
		&c.ID, &c.BusinessID, &c.BusinessName, &c.UserID,
		&c.LastMessage, &c.LastMessageAt, &c.UnreadCount,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) GetConversationByID(ctx context.Context, id uuid.UUID) (*types.Conversation, error) {
	query := `
        SELECT` + conversationColumns + `
        FROM conversations
        WHERE id = $1
    `
	var c types.Conversation
	if err := r.pgpool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.BusinessID, &c.BusinessName, &c.UserID,
		&c.LastMessage, &c.LastMessageAt, &c.UnreadCount,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) SaveConversation(ctx context.Context, c types.Conversation) error {
	query := `
        INSERT INTO conversations (
            id, business_id, business_name, user_id, last_message,
            last_message_at, unread_count
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE SET
            last_message = EXCLUDED.last_message,
            last_message_at = EXCLUDED.last_message_at,
            unread_count = EXCLUDED.unread_count
    `
	lastMessage := any(nil)
	if c.LastMessage != "" {
		lastMessage = c.LastMessage
	}
	if _, err := r.pgpool.Exec(ctx, query,
		c.ID, c.BusinessID, c.BusinessName, c.UserID, lastMessage,
		c.LastMessageAt, c.UnreadCount,
	); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetConversationsByUser(ctx context.Context, userID string) ([]types.Conversation, error) {
	query := `
        SELECT` + conversationColumns + `
        FROM conversations
        WHERE user_id = $1
        ORDER BY last_message_at DESC
    `
	rows, err := r.pgpool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer rows.Close()

	var conversations []types.Conversation
	for rows.Next() {
		var c types.Conversation
		if err := rows.Scan(
			&c.ID, &c.BusinessID, &c.BusinessName, &c.UserID,
			&c.LastMessage, &c.LastMessageAt, &c.UnreadCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan conversation row: %w", err)
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading conversation rows: %w", err)
	}
	return conversations, nil
}

func (r *PostgresRepository) SaveMessage(ctx context.Context, m types.Message) error {
	query := `
        INSERT INTO messages (id, conversation_id, sender_id, content, sent_at, read)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	if _, err := r.pgpool.Exec(ctx, query,
		m.ID, m.ConversationID, m.SenderID, m.Content, m.SentAt, m.Read,
	); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetMessages(ctx context.Context, conversationID uuid.UUID) ([]types.Message, error) {
	query := `
        SELECT id, conversation_id, sender_id, content, sent_at, read
        FROM messages
        WHERE conversation_id = $1
        ORDER BY sent_at
    `
	rows, err := r.pgpool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []types.Message
	for rows.Next() {
		var m types.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.SentAt, &m.Read); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading message rows: %w", err)
	}
	return messages, nil
}

// MarkConversationRead marks every message not sent by the user as read
// and resets the conversation's unread counter.
func (r *PostgresRepository) MarkConversationRead(ctx context.Context, conversationID uuid.UUID, userID string) error {
	if _, err := r.pgpool.Exec(ctx, `
        UPDATE messages SET read = TRUE
        WHERE conversation_id = $1 AND sender_id <> $2 AND read = FALSE
    `, conversationID, userID); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	if _, err := r.pgpool.Exec(ctx, `
        UPDATE conversations SET unread_count = 0 WHERE id = $1
    `, conversationID); err != nil {
		return fmt.Errorf("failed to reset unread count: %w", err)
	}
	return nil
}

func (r *PostgresRepository) TotalUnreadCount(ctx context.Context, userID string) (int, error) {
	var total int
	if err := r.pgpool.QueryRow(ctx, `
        SELECT COALESCE(SUM(unread_count), 0)
        FROM conversations
        WHERE user_id = $1
    `, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum unread counts: %w", err)
	}
	return total, nil
}
