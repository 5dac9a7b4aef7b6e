package quotes

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emergencytradesmen/tradesmen-api/app/observability/metrics"
	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for quote requests.
type Service interface {
	CreateQuoteRequest(ctx context.Context, userID string, req types.CreateQuoteRequest) (*types.QuoteRequest, map[string]string, error)
	GetQuoteRequestsByBusiness(ctx context.Context, businessID string) ([]types.QuoteRequest, error)
	UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status string) error
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

// CreateQuoteRequest validates and stores a quote submission. Field
// validation problems come back in the map, not as an error; the error
// return is for storage failures only.
func (s *ServiceImpl) CreateQuoteRequest(ctx context.Context, userID string, req types.CreateQuoteRequest) (*types.QuoteRequest, map[string]string, error) {
	ctx, span := otel.Tracer("QuotesService").Start(ctx, "CreateQuoteRequest", trace.WithAttributes(
		attribute.String("business.id", req.BusinessID),
	))
	defer span.End()

	if fieldErrors := ValidateCreateRequest(req); len(fieldErrors) > 0 {
		span.SetStatus(codes.Ok, "Validation failed")
		return nil, fieldErrors, nil
	}

	quote := types.QuoteRequest{
		ID:            uuid.New(),
		BusinessID:    req.BusinessID,
		UserID:        userID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Postcode:      req.Postcode,
		Urgency:       req.Urgency,
		ServiceType:   req.ServiceType,
		Description:   req.Description,
		ContactMethod: req.ContactMethod,
		PreferredTime: req.PreferredTime,
		Status:        types.QuoteStatusPending,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.repository.SaveQuoteRequest(ctx, quote); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save quote request", slog.Any("error", err))
		span.RecordError(err)
		return nil, nil, fmt.Errorf("failed to save quote request: %w", err)
	}

	if m := metrics.Get(); m != nil {
		m.QuoteRequestsTotal.Add(ctx, 1)
	}
	s.logger.InfoContext(ctx, "Quote request created",
		slog.String("quote_id", quote.ID.String()),
		slog.String("business_id", quote.BusinessID),
		slog.String("urgency", quote.Urgency),
	)
	span.SetStatus(codes.Ok, "Quote request created")
	return &quote, nil, nil
}

func (s *ServiceImpl) GetQuoteRequestsByBusiness(ctx context.Context, businessID string) ([]types.QuoteRequest, error) {
	quotes, err := s.repository.GetQuoteRequestsByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("failed to get quote requests by business", "error", err)
		return nil, err
	}
	return quotes, nil
}

func (s *ServiceImpl) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status string) error {
	switch status {
	case types.QuoteStatusPending, types.QuoteStatusQuoted, types.QuoteStatusAccepted,
		types.QuoteStatusDeclined, types.QuoteStatusCompleted:
	default:
		return fmt.Errorf("invalid quote status %q", status)
	}
	if err := s.repository.UpdateQuoteStatus(ctx, id, status); err != nil {
		s.logger.Error("failed to update quote status", "error", err)
		return err
	}
	return nil
}
