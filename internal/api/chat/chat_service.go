package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for user-to-business
// messaging.
type Service interface {
	StartConversation(ctx context.Context, userID string, business types.Business, initialMessage string) (*types.Conversation, error)
	SendMessage(ctx context.Context, conversationID uuid.UUID, senderID, content string) (*types.Message, error)
	GetConversations(ctx context.Context, userID string) ([]types.Conversation, error)
	GetMessages(ctx context.Context, conversationID uuid.UUID, userID string) ([]types.Message, error)
	MarkConversationRead(ctx context.Context, conversationID uuid.UUID, userID string) error
	TotalUnreadCount(ctx context.Context, userID string) (int, error)
}

type ServiceImpl struct {
	logger     *slog.Logger
	repository Repository
	now        func() time.Time
}

func NewServiceImpl(repository Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		repository: repository,
		now:        time.Now,
	}
}

// StartConversation returns the user's existing conversation with the
// business, creating one if needed. An optional initial message is sent
// in the same call.
func (s *ServiceImpl) StartConversation(ctx context.Context, userID string, business types.Business, initialMessage string) (*types.Conversation, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "StartConversation", trace.WithAttributes(
		attribute.String("business.id", business.ID),
	))
	defer span.End()

	conversation, err := s.repository.FindConversation(ctx, userID, business.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to find conversation", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	if conversation == nil {
		conversation = &types.Conversation{
			ID:            uuid.New(),
			BusinessID:    business.ID,
			BusinessName:  business.Name,
			UserID:        userID,
			LastMessageAt: s.now().UTC(),
		}
		if err := s.repository.SaveConversation(ctx, *conversation); err != nil {
			s.logger.ErrorContext(ctx, "Repository failed to create conversation", slog.Any("error", err))
			span.RecordError(err)
			return nil, fmt.Errorf("failed to create conversation: %w", err)
		}
	}

	if strings.TrimSpace(initialMessage) != "" {
		if _, err := s.SendMessage(ctx, conversation.ID, userID, initialMessage); err != nil {
			return nil, err
		}
		conversation.LastMessage = initialMessage
	}

	span.SetStatus(codes.Ok, "Conversation ready")
	return conversation, nil
}

// SendMessage appends a message and updates the conversation's last
// message fields. Messages from the business bump the user's unread
// counter; the user's own messages do not.
func (s *ServiceImpl) SendMessage(ctx context.Context, conversationID uuid.UUID, senderID, content string) (*types.Message, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "SendMessage", trace.WithAttributes(
		attribute.String("conversation.id", conversationID.String()),
	))
	defer span.End()

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("message content must not be empty")
	}

	conversation, err := s.repository.GetConversationByID(ctx, conversationID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if conversation == nil {
		return nil, fmt.Errorf("conversation not found")
	}

	message := types.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		SentAt:         s.now().UTC(),
		Read:           senderID == conversation.UserID,
	}
	if err := s.repository.SaveMessage(ctx, message); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save message", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	conversation.LastMessage = content
	conversation.LastMessageAt = message.SentAt
	if senderID != conversation.UserID {
		conversation.UnreadCount++
	}
	if err := s.repository.SaveConversation(ctx, *conversation); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to update conversation", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}

	span.SetStatus(codes.Ok, "Message sent")
	return &message, nil
}

func (s *ServiceImpl) GetConversations(ctx context.Context, userID string) ([]types.Conversation, error) {
	conversations, err := s.repository.GetConversationsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get conversations", "error", err)
		return nil, err
	}
	return conversations, nil
}

// GetMessages returns a conversation's messages, refusing access to
// conversations the user is not part of.
func (s *ServiceImpl) GetMessages(ctx context.Context, conversationID uuid.UUID, userID string) ([]types.Message, error) {
	conversation, err := s.repository.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if conversation == nil || conversation.UserID != userID {
		return nil, fmt.Errorf("conversation not found")
	}
	messages, err := s.repository.GetMessages(ctx, conversationID)
	if err != nil {
		s.logger.Error("failed to get messages", "error", err)
		return nil, err
	}
	return messages, nil
}

func (s *ServiceImpl) MarkConversationRead(ctx context.Context, conversationID uuid.UUID, userID string) error {
	if err := s.repository.MarkConversationRead(ctx, conversationID, userID); err != nil {
		s.logger.Error("failed to mark conversation read", "error", err)
		return err
	}
	return nil
}

func (s *ServiceImpl) TotalUnreadCount(ctx context.Context, userID string) (int, error) {
	total, err := s.repository.TotalUnreadCount(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get total unread count", "error", err)
		return 0, err
	}
	return total, nil
}
