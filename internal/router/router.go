package router

import (
	"github.com/gobindacb/soul-share-server/internal/handlers"
	"github.com/gobindacb/soul-share-server/internal/repositories"
	"github.com/gobindacb/soul-share-server/internal/token"
	"github.com/gobindacb/soul-share-server/pkg/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

const databaseName = "soulShare"

// SetupMiddleware configures global Echo middleware: panic recovery,
// zerolog request logging, and the credentialed CORS allow-list.
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	log.Info().Strs("origins", cfg.AllowedOrigins).Msg("global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, client *mongo.Client, cfg *config.Config) {
	db := client.Database(databaseName)
	postRepo := repositories.NewMongoPostRepository(db)
	requestRepo := repositories.NewMongoRequestRepository(db, postRepo)
	issuer := token.NewIssuer(cfg.AccessTokenSecret)

	e.GET("/", handlers.Greeting)
	e.GET("/health", handlers.HealthCheck)

	handlers.NewAuthHandler(issuer).RegisterAuthRoutes(e)
	handlers.NewPostHandler(postRepo).RegisterPostRoutes(e)
	handlers.NewRequestHandler(requestRepo).RegisterRequestRoutes(e)

	log.Info().Msg("all routes configured")
}
