package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/directly-app/directly/internal/handler"
	"github.com/directly-app/directly/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Video  *handler.VideoHandler
	Sync   *handler.SyncHandler
	Bio    *handler.BioHandler
	Stats  *handler.StatsHandler
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewMetrics())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", middleware.MetricsHandler())

	videoLimiter := middleware.NewVideoRateLimiter()
	syncLimiter := middleware.NewSyncRateLimiter()
	bioLimiter := middleware.NewBioRateLimiter()

	// Video record CRUD
	app.Get("/videos", h.Video.List, videoLimiter.Handler())
	app.Post("/videos", h.Video.Create, videoLimiter.Handler())
	app.Delete("/videos", h.Video.Delete, videoLimiter.Handler())

	// Channel sync
	app.Post("/youtube", h.Sync.Sync, syncLimiter.Handler())

	// Bio generation
	app.Post("/bio", h.Bio.Generate, bioLimiter.Handler())

	// Dashboard stats
	app.Get("/stats", h.Stats.GetStats)
}
