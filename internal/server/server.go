// Package server assembles the fiber application: global middleware, routes and the JSON codec.
// cmd/server builds the real dependencies and calls New; tests call New with fakes.
package server

import (
	"github.com/gofiber/fiber/v2"
	// cors lets the browser frontend call the API from a different origin (host/port)
	"github.com/gofiber/fiber/v2/middleware/cors"
	// logger prints one access log line per request (method, path, status, duration)
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/segmentio/encoding/json"

	"github.com/trentd187/sheet-data-api/internal/config"
	"github.com/trentd187/sheet-data-api/internal/handlers"
	"github.com/trentd187/sheet-data-api/internal/middleware"
)

// New returns a fiber app serving the sheet data API backed by reader.
func New(cfg *config.Config, reader handlers.RangeReader) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Sheet Data API",
		DisableStartupMessage: !cfg.IsDevelopment(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	// --- Global middleware ---
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestID} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,HEAD,OPTIONS",
	}))

	// --- Public routes ---
	app.Get("/health", handlers.HealthCheck)

	// --- API routes ---
	// The bearer-token guard is opt-in; without API_JWT_SECRET the API is public.
	api := app.Group("/api")
	if cfg.JWTSecret != "" {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}
	api.Get("/sheet_data", handlers.GetSheetData(reader, cfg))

	return app
}
