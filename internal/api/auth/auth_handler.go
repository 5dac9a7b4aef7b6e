package auth

import (
	"errors"
	"log/slog"
	"net/http"

	appMiddleware "github.com/emergencytradesmen/tradesmen-api/app/middleware"
	"github.com/emergencytradesmen/tradesmen-api/internal/api"
	"github.com/emergencytradesmen/tradesmen-api/internal/types"
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

// Register handles POST /auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Register")
	defer span.End()

	l := h.logger.With(slog.String("method", "Register"))

	var req types.RegisterRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.Register(ctx, req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			api.ErrorResponse(w, r, http.StatusConflict, err.Error())
			return
		}
		l.WarnContext(ctx, "Registration rejected", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "User registered")
	api.WriteJSONResponse(w, r, http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Login")
	defer span.End()

	l := h.logger.With(slog.String("method", "Login"))

	var req types.LoginRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			api.ErrorResponse(w, r, http.StatusUnauthorized, err.Error())
			return
		}
		l.ErrorContext(ctx, "Login failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Login failed")
		return
	}

	span.SetStatus(codes.Ok, "Logged in")
	api.WriteJSONResponse(w, r, http.StatusOK, pair)
}

// Refresh handles POST /auth/refresh.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Refresh")
	defer span.End()

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := api.DecodeJSONBody(w, r, &body); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.service.Refresh(ctx, body.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			api.ErrorResponse(w, r, http.StatusUnauthorized, err.Error())
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Refresh failed")
		return
	}

	span.SetStatus(codes.Ok, "Tokens refreshed")
	api.WriteJSONResponse(w, r, http.StatusOK, pair)
}

// Logout handles POST /auth/logout. Authenticated; revokes the presented
// refresh token, or every token the user holds when all=true.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Logout")
	defer span.End()

	userID, ok := appMiddleware.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body struct {
		RefreshToken string `json:"refresh_token"`
		All          bool   `json:"all,omitempty"`
	}
	if err := api.DecodeJSONBody(w, r, &body); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var err error
	if body.All {
		var id uuid.UUID
		if id, err = uuid.Parse(userID); err == nil {
			err = h.service.LogoutEverywhere(ctx, id)
		}
	} else {
		err = h.service.Logout(ctx, body.RefreshToken)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Logout failed")
		return
	}

	span.SetStatus(codes.Ok, "Logged out")
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
