// Package http provides the HTTP handler layer for the journey planning API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/doortodoor/journey-planner/internal/adapter/http/response"
	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/internal/usecase"
)

// JourneyHandler handles HTTP requests for journey planning endpoints.
type JourneyHandler struct {
	planner usecase.JourneyPlanner
}

// NewJourneyHandler creates a new JourneyHandler with the given planner.
func NewJourneyHandler(planner usecase.JourneyPlanner) *JourneyHandler {
	return &JourneyHandler{
		planner: planner,
	}
}

// PlanJourney handles POST /api/v1/journeys/plan
//
// @Summary Plan a round trip
// @Description Search all airport combinations between two cities and return the preferred itinerary with an optional balanced alternative
// @Tags journeys
// @Accept json
// @Produce json
// @Param request body PlanJourneyRequest true "Planning criteria"
// @Success 200 {object} domain.SelectionResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No airports, combinations, or budget-fitting journeys"
// @Failure 504 {object} response.ErrorDetail "Planning timed out"
// @Router /api/v1/journeys/plan [post]
func (h *JourneyHandler) PlanJourney(c echo.Context) error {
	var req PlanJourneyRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.planner.PlanJourney(c.Request().Context(), ToDomainRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Results(c, result)
}

// GetAirports handles GET /api/v1/airports/:city
//
// @Summary List major airports for a city
// @Description Resolve the major airports serving a city, including nearby alternatives
// @Tags airports
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} AirportsDTO
// @Failure 404 {object} response.ErrorDetail "City has no major airports"
// @Router /api/v1/airports/{city} [get]
func (h *JourneyHandler) GetAirports(c echo.Context) error {
	city := strings.TrimSpace(c.Param("city"))

	airports, err := h.planner.GetAirports(c.Request().Context(), city)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Results(c, AirportsDTO{
		City:     city,
		Airports: airports,
	})
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search one-way flights
// @Description Return raw one-way flight candidates for an airport pair and date
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} FlightResultsDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No flights found"
// @Router /api/v1/flights/search [post]
func (h *JourneyHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	candidates, err := h.planner.SearchFlights(c.Request().Context(), req.Origin, req.Destination, req.Date)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Results(c, ToFlightResults(&req, candidates))
}

// SearchGroundTransport handles POST /api/v1/ground-transport/search
//
// @Summary Estimate a ground leg
// @Description Recommend a ground transport mode with duration and cost between a city and an airport
// @Tags ground-transport
// @Accept json
// @Produce json
// @Param request body GroundTransportRequest true "Route to estimate"
// @Success 200 {object} domain.GroundSegment
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/ground-transport/search [post]
func (h *JourneyHandler) SearchGroundTransport(c echo.Context) error {
	var req GroundTransportRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	segment, err := h.planner.EstimateGround(c.Request().Context(), req.From, req.To, req.Date, req.PreferredTime)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Results(c, segment)
}

// OptimizeCombinations handles POST /api/v1/journeys/optimize
//
// @Summary Rank precomputed combinations
// @Description Apply the balanced cost/time scoring model to caller-supplied journey combinations
// @Tags journeys
// @Accept json
// @Produce json
// @Param request body OptimizeRequest true "Combinations to rank"
// @Success 200 {object} OptimizeResultDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No combination fits the budget"
// @Router /api/v1/journeys/optimize [post]
func (h *JourneyHandler) OptimizeCombinations(c echo.Context) error {
	var req OptimizeRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	best, err := h.planner.OptimizeCombinations(c.Request().Context(), req.Combinations, req.Budget)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Results(c, OptimizeResultDTO{
		BestCombination:      *best,
		CandidatesConsidered: len(req.Combinations),
	})
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *JourneyHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *JourneyHandler) handleError(c echo.Context, err error) error {
	// Exhausted searches return 404: the request was well formed but nothing
	// usable came back.
	if errors.Is(err, domain.ErrNoAirportsFound) ||
		errors.Is(err, domain.ErrNoCombinationsFound) ||
		errors.Is(err, domain.ErrBudgetExceeded) ||
		errors.Is(err, domain.ErrNoData) {
		return response.NotFound(c, err.Error())
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidRequest) ||
		errors.Is(err, domain.ErrInvalidDateRange) ||
		errors.Is(err, domain.ErrMissingBudget) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *JourneyHandler) Health(c echo.Context) error {
	return response.Health(c)
}
