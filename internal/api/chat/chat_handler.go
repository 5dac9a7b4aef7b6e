package chat

import (
	"log/slog"
	"net/http"

	appMiddleware "github.com/emergencytradesmen/tradesmen-api/app/middleware"
	"github.com/emergencytradesmen/tradesmen-api/internal/api"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/listings"
	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

type Handler struct {
	logger   *slog.Logger
	service  Service
	listings listings.Service
}

func NewHandler(service Service, listingsService listings.Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		listings: listingsService,
	}
}

// StartConversation handles POST /conversations. The business is looked
// up first so the thread carries its display name.
func (h *Handler) StartConversation(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "StartConversation")
	defer span.End()

	l := h.logger.With(slog.String("method", "StartConversation"))

	userID, ok := appMiddleware.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req types.StartConversationRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	business, err := h.listings.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to look up business", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to start conversation")
		return
	}
	if business == nil {
		api.ErrorResponse(w, r, http.StatusNotFound, "Business not found")
		return
	}

	conversation, err := h.service.StartConversation(ctx, userID, *business, req.Message)
	if err != nil {
		l.ErrorContext(ctx, "Failed to start conversation", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to start conversation")
		return
	}

	span.SetStatus(codes.Ok, "Conversation started")
	api.WriteJSONResponse(w, r, http.StatusCreated, conversation)
}

// GetConversations handles GET /conversations for the authenticated user.
func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "GetConversations")
	defer span.End()

	userID, ok := appMiddleware.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	conversations, err := h.service.GetConversations(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to retrieve conversations", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve conversations")
		return
	}

	span.SetStatus(codes.Ok, "Conversations returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"results": conversations,
		"count":   len(conversations),
	})
}

// GetMessages handles GET /conversations/{id}/messages.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "GetMessages")
	defer span.End()

	userID, ok := appMiddleware.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	conversationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid conversation id")
		return
	}

	messages, err := h.service.GetMessages(ctx, conversationID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to retrieve messages", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusNotFound, "Conversation not found")
		return
	}

	span.SetStatus(codes.Ok, "Messages returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"results": messages,
		"count":   len(messages),
	})
}

// SendMessage handles POST /conversations/{id}/messages.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "SendMessage")
	defer span.End()

	userID, ok := appMiddleware.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	conversationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid conversation id")
		return
	}

	var req types.SendMessageRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.service.SendMessage(ctx, conversationID, userID, req.Content)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to send message", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to send message")
		return
	}

	span.SetStatus(codes.Ok, "Message sent")
	api.WriteJSONResponse(w, r, http.StatusCreated, message)
}

// MarkRead handles POST /conversations/{id}/read.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "MarkRead")
	defer span.End()

	userID, ok := appMiddleware.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	conversationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid conversation id")
		return
	}

	if err := h.service.MarkConversationRead(ctx, conversationID, userID); err != nil {
		h.logger.ErrorContext(ctx, "Failed to mark conversation read", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to mark conversation read")
		return
	}

	span.SetStatus(codes.Ok, "Conversation marked read")
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

// UnreadCount handles GET /conversations/unread-count.
func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "UnreadCount")
	defer span.End()

	userID, ok := appMiddleware.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	total, err := h.service.TotalUnreadCount(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to get unread count", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to get unread count")
		return
	}

	span.SetStatus(codes.Ok, "Unread count returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{"unread": total})
}
