// Package http provides the HTTP handler layer for the journey planning API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all journey planning API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *JourneyHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	registerAPIRoutes(api, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *JourneyHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	registerAPIRoutes(api, h)
}

func registerAPIRoutes(api *echo.Group, h *JourneyHandler) {
	// Journeys group
	journeys := api.Group("/journeys")
	journeys.POST("/plan", h.PlanJourney)
	journeys.POST("/optimize", h.OptimizeCombinations)

	// Airports group
	airports := api.Group("/airports")
	airports.GET("/:city", h.GetAirports)

	// Flights group
	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)

	// Ground transport group
	ground := api.Group("/ground-transport")
	ground.POST("/search", h.SearchGroundTransport)
}
