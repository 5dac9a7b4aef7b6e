package api

import (
	"net/http"

	"github.com/emergencytradesmen/tradesmen-api/internal/api/auth"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/chat"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/geo"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/listings"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/quotes"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/reviews"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config contains dependencies needed for the router setup.
type Config struct {
	AuthHandler     *auth.Handler
	GeoHandler      *geo.Handler
	ListingsHandler *listings.Handler
	QuotesHandler   *quotes.Handler
	ChatHandler     *chat.Handler
	ReviewsHandler  *reviews.Handler

	AuthenticateMiddleware         func(http.Handler) http.Handler
	OptionalAuthenticateMiddleware func(http.Handler) http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to
// be applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000", "https://emergencytradesmen.co.uk"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// --- Public routes ---
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", cfg.AuthHandler.Register)
			r.Post("/auth/login", cfg.AuthHandler.Login)
			r.Post("/auth/refresh", cfg.AuthHandler.Refresh)

			r.Get("/geo/nearest-city", cfg.GeoHandler.NearestCity)
			r.Get("/geo/cities", cfg.GeoHandler.ListCities)

			r.Get("/trades", cfg.ListingsHandler.GetTrades)
			r.Get("/listings/{city}/{trade}", cfg.ListingsHandler.GetListings)
			r.Get("/businesses/{id}", cfg.ListingsHandler.GetBusiness)

			r.Get("/reviews/business/{businessID}", cfg.ReviewsHandler.GetReviews)
			r.Get("/reviews/business/{businessID}/stats", cfg.ReviewsHandler.GetReviewStats)

			// Quote submission is public; a bearer token, when present,
			// attributes the request to the user.
			r.With(cfg.OptionalAuthenticateMiddleware).Post("/quotes", cfg.QuotesHandler.CreateQuoteRequest)
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)

			r.Post("/auth/logout", cfg.AuthHandler.Logout)

			r.Get("/quotes/business/{businessID}", cfg.QuotesHandler.GetQuoteRequestsByBusiness)
			r.Put("/quotes/{id}/status", cfg.QuotesHandler.UpdateQuoteStatus)

			r.Post("/conversations", cfg.ChatHandler.StartConversation)
			r.Get("/conversations", cfg.ChatHandler.GetConversations)
			r.Get("/conversations/unread-count", cfg.ChatHandler.UnreadCount)
			r.Get("/conversations/{id}/messages", cfg.ChatHandler.GetMessages)
			r.Post("/conversations/{id}/messages", cfg.ChatHandler.SendMessage)
			r.Post("/conversations/{id}/read", cfg.ChatHandler.MarkRead)

			r.Post("/reviews/business/{businessID}", cfg.ReviewsHandler.AddReview)
		})
	})

	return r
}
