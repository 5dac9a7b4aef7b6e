package types

import (
	"time"

	"github.com/google/uuid"
)

// Review matches the reviews table structure.
type Review struct {
	ID         uuid.UUID `json:"id"`
	BusinessID string    `json:"business_id"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReviewStats is the aggregate view of a business's reviews.
// Distribution maps star value (1..5) to count.
type ReviewStats struct {
	AverageRating      float64     `json:"average_rating"`
	TotalReviews       int         `json:"total_reviews"`
	Distribution       map[int]int `json:"rating_distribution"`
	VerifiedPercentage float64     `json:"verified_percentage"`
}
