package reviews

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

// Service defines the business logic contract for reviews.
type Service interface {
	GetReviewsByBusiness(ctx context.Context, businessID string) ([]types.Review, error)
	GetReviewStats(ctx context.Context, businessID string) (*types.ReviewStats, error)
	AddReview(ctx context.Context, businessID, author string, rating int, text string) (*types.Review, error)
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

func (s *ServiceImpl) GetReviewsByBusiness(ctx context.Context, businessID string) ([]types.Review, error) {
	reviews, err := s.repository.GetReviewsByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("failed to get reviews by business", "error", err)
		return nil, err
	}
	return reviews, nil
}

// GetReviewStats aggregates a business's reviews into the stats view.
func (s *ServiceImpl) GetReviewStats(ctx context.Context, businessID string) (*types.ReviewStats, error) {
	ctx, span := otel.Tracer("ReviewsService").Start(ctx, "GetReviewStats", trace.WithAttributes(
		attribute.String("business.id", businessID),
	))
	defer span.End()

	reviews, err := s.repository.GetReviewsByBusiness(ctx, businessID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	stats := CalculateStats(reviews)
	span.SetAttributes(attribute.Int("reviews.count", stats.TotalReviews))
	span.SetStatus(codes.Ok, "Review stats computed")
	return &stats, nil
}

// AddReview stores a new review after minimal validation.
func (s *ServiceImpl) AddReview(ctx context.Context, businessID, author string, rating int, text string) (*types.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if strings.TrimSpace(author) == "" {
		return nil, fmt.Errorf("author is required")
	}

	review := types.Review{
		ID:         uuid.New(),
		BusinessID: businessID,
		Author:     strings.TrimSpace(author),
		Rating:     rating,
		Text:       strings.TrimSpace(text),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repository.SaveReview(ctx, review); err != nil {
		s.logger.Error("failed to save review", "error", err)
		return nil, err
	}
	return &review, nil
}

// CalculateStats computes the aggregate view over a review list. An
// empty list yields zeroed stats with an initialized distribution.
func CalculateStats(reviews []types.Review) types.ReviewStats {
	distribution := map[int]int{5: 0, 4: 0, 3: 0, 2: 0, 1: 0}
	if len(reviews) == 0 {
		return types.ReviewStats{Distribution: distribution}
	}

	var totalRating, verifiedCount int
	for _, r := range reviews {
		totalRating += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			distribution[r.Rating]++
		}
		if r.Verified {
			verifiedCount++
		}
	}

	return types.ReviewStats{
		AverageRating:      float64(totalRating) / float64(len(reviews)),
		TotalReviews:       len(reviews),
		Distribution:       distribution,
		VerifiedPercentage: float64(verifiedCount) / float64(len(reviews)) * 100,
	}
}
