// Package main is the entry point for the door-to-door journey planning service.
//
//	@title						Journey Planner API
//	@version					1.0.0
//	@description				A round-trip journey planning service that combines flights with ground transport and picks the best door-to-door itinerary.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/doortodoor/journey-planner/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/doortodoor/journey-planner/docs"

	"github.com/doortodoor/journey-planner/internal/adapter/gateway/cityinfo"
	"github.com/doortodoor/journey-planner/internal/adapter/gateway/skyscanner"
	"github.com/doortodoor/journey-planner/internal/adapter/gateway/transit"
	"github.com/doortodoor/journey-planner/internal/adapter/gateway/wanderu"
	journeyhttp "github.com/doortodoor/journey-planner/internal/adapter/http"
	"github.com/doortodoor/journey-planner/internal/adapter/http/middleware"
	"github.com/doortodoor/journey-planner/internal/config"
	"github.com/doortodoor/journey-planner/internal/infrastructure/logger"
	"github.com/doortodoor/journey-planner/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "journey-planner",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	setupRoutes(e, cfg, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires the gateway stack into the planner and registers the
// HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	flights := skyscanner.NewClient(skyscanner.Config{
		BaseURL:           cfg.Gateways.SkyScannerBaseURL,
		APIKey:            cfg.Gateways.SkyScannerAPIKey,
		Host:              cfg.Gateways.SkyScannerHost,
		AttemptTimeout:    cfg.Timeouts.FlightSearch,
		RequestsPerSecond: cfg.Planner.GatewayRPS,
		Burst:             cfg.Planner.GatewayBurst,
	}, log)

	cityInfo := cityinfo.NewClient(cityinfo.Config{
		BaseURL: cfg.Gateways.CityInfoBaseURL,
		APIKey:  cfg.Gateways.CityInfoAPIKey,
		Model:   cfg.Gateways.CityInfoModel,
		Timeout: cfg.Timeouts.AirportLookup,
	}, log)

	buses := wanderu.NewClient(wanderu.Config{
		BaseURL: cfg.Gateways.WanderuBaseURL,
		Timeout: cfg.Timeouts.GroundTransit,
	}, log)

	ground := transit.NewEstimator(cityInfo, buses, cfg.Timeouts.GroundTransit, log)

	planner := usecase.NewJourneyPlanner(
		usecase.Config{
			GlobalTimeout: cfg.Timeouts.GlobalPlan,
			MaxWorkers:    cfg.Planner.MaxWorkers,
		},
		usecase.Gateways{
			Airports: cityInfo,
			Flights:  flights,
			Ground:   ground,
		},
		log,
	)

	handler := journeyhttp.NewJourneyHandler(planner)
	journeyhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
