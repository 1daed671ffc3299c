package main

import (
	"net/http"

	"github.com/gobindacb/soul-share-server/internal/router"
	"github.com/gobindacb/soul-share-server/pkg/config"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the shared MongoDB client
	client, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer config.CloseDB(client)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	router.SetupMiddleware(e, cfg)

	// Setup routes and dependencies
	router.SetupRoutes(e, client, cfg)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("soul-share server running")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server stopped")
	}
}
