package types

import (
	"time"

	"github.com/google/uuid"
)

// Urgency values accepted on a quote request.
const (
	UrgencyEmergency = "emergency"
	UrgencyToday     = "today"
	UrgencyThisWeek  = "this-week"
	UrgencyFlexible  = "flexible"
)

// Preferred contact methods accepted on a quote request.
const (
	ContactPhone  = "phone"
	ContactEmail  = "email"
	ContactEither = "either"
)

// Quote request lifecycle states.
const (
	QuoteStatusPending   = "pending"
	QuoteStatusQuoted    = "quoted"
	QuoteStatusAccepted  = "accepted"
	QuoteStatusDeclined  = "declined"
	QuoteStatusCompleted = "completed"
)

// QuoteRequest matches the quote_requests table structure.
type QuoteRequest struct {
	ID            uuid.UUID `json:"id"`
	BusinessID    string    `json:"business_id"`
	UserID        string    `json:"user_id,omitempty"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Postcode      string    `json:"postcode"`
	Urgency       string    `json:"urgency"`
	ServiceType   string    `json:"service_type"`
	Description   string    `json:"description"`
	ContactMethod string    `json:"preferred_contact_method"`
	PreferredTime string    `json:"preferred_time,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateQuoteRequest is the payload accepted by POST /quotes.
type CreateQuoteRequest struct {
	BusinessID    string `json:"business_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Postcode      string `json:"postcode"`
	Urgency       string `json:"urgency"`
	ServiceType   string `json:"service_type"`
	Description   string `json:"description"`
	ContactMethod string `json:"preferred_contact_method"`
	PreferredTime string `json:"preferred_time,omitempty"`
}
