package quotes

import (
	"log/slog"
	"net/http"

	appMiddleware "github.com/emergencytradesmen/tradesmen-api/app/middleware"
	"github.com/emergencytradesmen/tradesmen-api/internal/api"
	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
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

// CreateQuoteRequest handles POST /quotes. Public: visitors submit quote
// requests without an account; a logged-in user's ID is attached when
// present in the context.
func (h *Handler) CreateQuoteRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("QuotesHandler").Start(r.Context(), "CreateQuoteRequest")
	defer span.End()

	l := h.logger.With(slog.String("method", "CreateQuoteRequest"))

	var req types.CreateQuoteRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := appMiddleware.GetUserIDFromContext(ctx)
	quote, fieldErrors, err := h.service.CreateQuoteRequest(ctx, userID, req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create quote request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create quote request")
		return
	}
	if len(fieldErrors) > 0 {
		span.SetStatus(codes.Ok, "Validation failed")
		api.ValidationErrorResponse(w, r, fieldErrors)
		return
	}

	span.SetStatus(codes.Ok, "Quote request created")
	api.WriteJSONResponse(w, r, http.StatusCreated, quote)
}

// GetQuoteRequestsByBusiness handles GET /quotes/business/{businessID}.
// Authenticated: only for business owners reviewing their inbox.
func (h *Handler) GetQuoteRequestsByBusiness(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("QuotesHandler").Start(r.Context(), "GetQuoteRequestsByBusiness")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetQuoteRequestsByBusiness"))

	businessID := chi.URLParam(r, "businessID")
	quotes, err := h.service.GetQuoteRequestsByBusiness(ctx, businessID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to retrieve quote requests", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve quote requests")
		return
	}

	span.SetStatus(codes.Ok, "Quote requests returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"results": quotes,
		"count":   len(quotes),
	})
}

// UpdateQuoteStatus handles PUT /quotes/{id}/status.
func (h *Handler) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("QuotesHandler").Start(r.Context(), "UpdateQuoteStatus")
	defer span.End()

	l := h.logger.With(slog.String("method", "UpdateQuoteStatus"))

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		span.SetStatus(codes.Error, "Invalid quote id")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid quote id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := api.DecodeJSONBody(w, r, &body); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateQuoteStatus(ctx, id, body.Status); err != nil {
		l.ErrorContext(ctx, "Failed to update quote status", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update quote status")
		return
	}

	span.SetStatus(codes.Ok, "Quote status updated")
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
