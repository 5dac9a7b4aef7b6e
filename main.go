package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	database "github.com/emergencytradesmen/tradesmen-api/app/db"
	appLogger "github.com/emergencytradesmen/tradesmen-api/app/logger"
	appMiddleware "github.com/emergencytradesmen/tradesmen-api/app/middleware"
	"github.com/emergencytradesmen/tradesmen-api/app/observability/metrics"
	"github.com/emergencytradesmen/tradesmen-api/app/tracer"
	"github.com/emergencytradesmen/tradesmen-api/config"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/auth"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/chat"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/geo"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/listings"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/quotes"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/reviews"
	api "github.com/emergencytradesmen/tradesmen-api/internal/router"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability ---
	metricsHandler, err := tracer.InitTracingAndMetrics()
	if err != nil {
		logger.Error("Failed to initialize tracing and metrics", slog.Any("error", err))
		os.Exit(1)
	}
	metrics.InitAppMetrics()

	// --- Database Setup ---
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	// Run migrations before initializing the main pool
	err = database.RunMigrations(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if !database.WaitForDB(ctx, pool, logger) {
		logger.Error("Database not ready after waiting, exiting.")
		os.Exit(1)
	}

	// --- Dependency Injection ---
	fallbackStore := listings.NewFallbackStore()

	authRepo := auth.NewPostgresRepository(pool, logger)
	authService := auth.NewServiceImpl(authRepo, logger)
	authHandler := auth.NewHandler(authService, logger)

	geoService := geo.NewServiceImpl(geo.Cities(), logger)
	geoHandler := geo.NewHandler(geoService, logger)

	listingsRepo := listings.NewPostgresRepository(pool, logger)
	listingsService := listings.NewServiceImpl(listingsRepo, fallbackStore, logger)
	listingsHandler := listings.NewHandler(listingsService, logger)

	quotesRepo := quotes.NewPostgresRepository(pool, logger)
	quotesService := quotes.NewServiceImpl(quotesRepo, logger)
	quotesHandler := quotes.NewHandler(quotesService, logger)

	chatRepo := chat.NewPostgresRepository(pool, logger)
	chatService := chat.NewServiceImpl(chatRepo, logger)
	chatHandler := chat.NewHandler(chatService, listingsService, logger)

	reviewsRepo := reviews.NewPostgresRepository(pool, logger)
	reviewsService := reviews.NewServiceImpl(reviewsRepo, logger)
	reviewsHandler := reviews.NewHandler(reviewsService, logger)

	// --- Router Setup ---
	routerConfig := &api.Config{
		AuthHandler:                    authHandler,
		GeoHandler:                     geoHandler,
		ListingsHandler:                listingsHandler,
		QuotesHandler:                  quotesHandler,
		ChatHandler:                    chatHandler,
		ReviewsHandler:                 reviewsHandler,
		AuthenticateMiddleware:         appMiddleware.Authenticate,
		OptionalAuthenticateMiddleware: appMiddleware.OptionalAuthenticate,
	}
	mainRouter := api.SetupRouter(routerConfig)

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	// --- HTTP Servers ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metricsHandler)
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Handlers.Prometheus.Port),
		Handler: metricsMux,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting metrics server", slog.String("address", metricsSrv.Addr))
		err := metricsSrv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		logger.Info("Shutdown signal received, starting graceful shutdown...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Metrics server graceful shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" { // Default to development if not set
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
	}
	return logger
}
