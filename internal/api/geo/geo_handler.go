package geo

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/emergencytradesmen/tradesmen-api/app/observability/metrics"
	"github.com/emergencytradesmen/tradesmen-api/internal/api"
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

// NearestCity handles GET /geo/nearest-city?lat=..&lon=..
// Missing or malformed coordinates are the caller's problem (the browser
// reports geolocation failures before ever reaching this endpoint), so
// they get a 400 with a reason rather than a resolver invocation.
func (h *Handler) NearestCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GeoHandler").Start(r.Context(), "NearestCity")
	defer span.End()

	l := h.logger.With(slog.String("method", "NearestCity"))

	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		l.WarnContext(ctx, "Invalid coordinates",
			slog.String("lat", r.URL.Query().Get("lat")),
			slog.String("lon", r.URL.Query().Get("lon")),
		)
		span.SetStatus(codes.Error, "Invalid coordinates")
		api.ErrorResponse(w, r, http.StatusBadRequest, "lat and lon must be decimal degrees")
		return
	}

	result, err := h.service.NearestCity(ctx, lat, lon)
	if err != nil {
		l.ErrorContext(ctx, "Failed to resolve nearest city", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to resolve nearest city")
		return
	}

	if m := metrics.Get(); m != nil {
		m.NearestCityRequestsTotal.Add(ctx, 1)
	}
	span.SetStatus(codes.Ok, "Nearest city returned")
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// ListCities handles GET /geo/cities - returns the fixed city table.
func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("GeoHandler").Start(r.Context(), "ListCities")
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, Cities())
}
