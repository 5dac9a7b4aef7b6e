package reviews

import (
	"log/slog"
	"net/http"

	appMiddleware "github.com/emergencytradesmen/tradesmen-api/app/middleware"
	"github.com/emergencytradesmen/tradesmen-api/internal/api"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// GetReviews handles GET /reviews/business/{businessID}.
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "GetReviews")
	defer span.End()

	businessID := chi.URLParam(r, "businessID")
	reviews, err := h.service.GetReviewsByBusiness(ctx, businessID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to retrieve reviews", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	span.SetStatus(codes.Ok, "Reviews returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"results": reviews,
		"count":   len(reviews),
	})
}

// GetReviewStats handles GET /reviews/business/{businessID}/stats.
func (h *Handler) GetReviewStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "GetReviewStats")
	defer span.End()

	businessID := chi.URLParam(r, "businessID")
	stats, err := h.service.GetReviewStats(ctx, businessID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to compute review stats", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to compute review stats")
		return
	}

	span.SetStatus(codes.Ok, "Review stats returned")
	api.WriteJSONResponse(w, r, http.StatusOK, stats)
}

// AddReview handles POST /reviews/business/{businessID}. Authenticated.
func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "AddReview")
	defer span.End()

	if _, ok := appMiddleware.GetUserIDFromContext(ctx); !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req struct {
		Author string `json:"author"`
		Rating int    `json:"rating"`
		Text   string `json:"text"`
	}
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.service.AddReview(ctx, chi.URLParam(r, "businessID"), req.Author, req.Rating, req.Text)
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to add review", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "Review added")
	api.WriteJSONResponse(w, r, http.StatusCreated, review)
}
