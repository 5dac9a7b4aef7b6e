package types

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is one user's message thread with a business.
type Conversation struct {
	ID            uuid.UUID `json:"id"`
	BusinessID    string    `json:"business_id"`
	BusinessName  string    `json:"business_name"`
	UserID        string    `json:"user_id"`
	LastMessage   string    `json:"last_message,omitempty"`
	LastMessageAt time.Time `json:"last_message_at"`
	UnreadCount   int       `json:"unread_count"`
}

// Message is a single message within a conversation. SenderID is either
// the user's ID or the business ID.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"sent_at"`
	Read           bool      `json:"read"`
}

// StartConversationRequest is the payload accepted by POST /conversations.
type StartConversationRequest struct {
	BusinessID string `json:"business_id"`
	Message    string `json:"message,omitempty"`
}

// SendMessageRequest is the payload accepted by POST /conversations/{id}/messages.
type SendMessageRequest struct {
	Content string `json:"content"`
}
