// Command seed_listings pushes the static fallback directory into Postgres
// so the serving path can answer from the database instead of memory.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	database "github.com/emergencytradesmen/tradesmen-api/app/db"
	"github.com/emergencytradesmen/tradesmen-api/config"
	"github.com/emergencytradesmen/tradesmen-api/internal/api/listings"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("database config", slog.Any("error", err))
		os.Exit(1)
	}
	if err := database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
		logger.Error("migrations", slog.Any("error", err))
		os.Exit(1)
	}
	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("database init", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo := listings.NewPostgresRepository(pool, logger)
	store := listings.NewFallbackStore()

	// One worker per city so a slow city does not serialize the whole run.
	g, gCtx := errgroup.WithContext(ctx)
	for _, citySlug := range store.CitySlugs() {
		citySlug := citySlug
		g.Go(func() error {
			var seeded int
			for _, tradeSlug := range store.TradeSlugs(citySlug) {
				for _, b := range store.Lookup(citySlug, tradeSlug) {
					if err := repo.UpsertBusiness(gCtx, b); err != nil {
						return err
					}
					seeded++
				}
			}
			logger.Info("seeded city",
				slog.String("city", citySlug),
				slog.Int("businesses", seeded))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seeding complete", slog.Int("total", store.Len()))
}
