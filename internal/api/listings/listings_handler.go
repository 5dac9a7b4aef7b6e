package listings

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/emergencytradesmen/tradesmen-api/internal/api"
	"github.com/emergencytradesmen/tradesmen-api/internal/types"
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

// GetListings handles GET /listings/{city}/{trade} with optional filter
// and sort query parameters.
func (h *Handler) GetListings(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ListingsHandler").Start(r.Context(), "GetListings")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetListings"))

	city := chi.URLParam(r, "city")
	trade := chi.URLParam(r, "trade")
	filter := filterFromQuery(r)

	businesses, err := h.service.GetListings(ctx, city, trade, filter)
	if err != nil {
		l.ErrorContext(ctx, "Failed to retrieve listings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve listings")
		return
	}

	l.InfoContext(ctx, "Returned listings",
		slog.String("city", city),
		slog.String("trade", trade),
		slog.Int("count", len(businesses)),
	)
	span.SetStatus(codes.Ok, "Listings returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"results": businesses,
		"count":   len(businesses),
	})
}

// GetBusiness handles GET /businesses/{id}. Unknown ids are a 404 with
// the standard error envelope.
func (h *Handler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ListingsHandler").Start(r.Context(), "GetBusiness")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetBusiness"))

	id := chi.URLParam(r, "id")
	business, err := h.service.GetBusiness(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to retrieve business", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve business")
		return
	}
	if business == nil {
		span.SetStatus(codes.Ok, "Business not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "Business not found")
		return
	}

	span.SetStatus(codes.Ok, "Business returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"business": business,
		"open_now": IsOpenNow(business.Hours, business.IsOpen24Hours, nil),
	})
}

// GetTrades handles GET /trades - the fixed trade catalogue.
func (h *Handler) GetTrades(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ListingsHandler").Start(r.Context(), "GetTrades")
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, h.service.GetTrades(ctx))
}

func filterFromQuery(r *http.Request) types.BusinessFilter {
	q := r.URL.Query()
	filter := types.BusinessFilter{
		SearchQuery:  q.Get("search"),
		Availability: q.Get("availability"),
		SortBy:       q.Get("sort_by"),
	}
	if v, err := strconv.ParseFloat(q.Get("min_rating"), 64); err == nil {
		filter.MinRating = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_distance"), 64); err == nil {
		filter.MaxDistance = v
	}
	if v, err := strconv.ParseBool(q.Get("has_website")); err == nil {
		filter.HasWebsite = v
	}
	if v, err := strconv.ParseBool(q.Get("is_24_hours")); err == nil {
		filter.Is24Hours = v
	}
	return filter
}
