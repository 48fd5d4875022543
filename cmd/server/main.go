package main

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/directly-app/directly/internal/config"
	"github.com/directly-app/directly/internal/db"
	"github.com/directly-app/directly/internal/gemini"
	"github.com/directly-app/directly/internal/handler"
	"github.com/directly-app/directly/internal/middleware"
	"github.com/directly-app/directly/internal/repository"
	"github.com/directly-app/directly/internal/router"
	"github.com/directly-app/directly/internal/service"
	"github.com/directly-app/directly/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "directly-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		middleware.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	videoRepo := repository.NewVideoRepo(pool)
	if err := videoRepo.EnsureSchema(ctx); err != nil {
		middleware.Logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	ytClient := youtube.NewClient(youtube.Config{
		APIKey:     cfg.YouTubeAPIKey,
		SampleSize: cfg.SyncSampleSize,
		TopCount:   cfg.SyncTopCount,
	})
	geminiClient := gemini.NewClient(gemini.Config{APIKey: cfg.GeminiAPIKey})

	videoSvc := service.NewVideoService(videoRepo, cache)
	syncSvc := service.NewSyncService(videoRepo, ytClient, cache)
	bioSvc := service.NewBioService(videoRepo, geminiClient)

	middleware.InitMetrics(pool)

	app := fiber.New(fiber.Config{
		AppName:      "Directly API",
		ServerHeader: "Directly",
	})

	router.Setup(app, &router.Handlers{
		Video:  handler.NewVideoHandler(videoSvc),
		Sync:   handler.NewSyncHandler(syncSvc),
		Bio:    handler.NewBioHandler(bioSvc),
		Stats:  handler.NewStatsHandler(videoSvc),
		Health: handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	middleware.Logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Msg("Directly backend starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		middleware.Logger.Fatal().Err(err).Msg("server exited")
	}
}
