// Package integration provides helpers and integration tests for the journey
// planning system. Integration tests verify that components work together
// correctly, including HTTP handlers, the planner pipeline, and mock gateways.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/doortodoor/journey-planner/internal/adapter/http"
	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/internal/infrastructure/logger"
	"github.com/doortodoor/journey-planner/internal/usecase"
	"github.com/doortodoor/journey-planner/test/mock"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.JourneyHandler
}

// NewTestServer creates a new test server with the given planner.
func NewTestServer(planner usecase.JourneyPlanner) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewJourneyHandler(planner)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// PlanRequest posts a planning request.
func (ts *TestServer) PlanRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/journeys/plan",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSelectionResult parses the response body as a SelectionResult.
func (r *Response) ParseSelectionResult() (*domain.SelectionResult, error) {
	var resp domain.SelectionResult
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// PlanRequestBody is a helper struct for building planning request bodies.
type PlanRequestBody struct {
	SourceCity             string   `json:"source_city"`
	DestinationCity        string   `json:"destination_city"`
	DepartDate             string   `json:"depart_date"`
	ReturnDate             string   `json:"return_date"`
	OptimizationPreference string   `json:"optimization_preference"`
	Budget                 *float64 `json:"budget,omitempty"`
}

// DefaultPlanRequest returns a valid cost-optimized planning request.
func DefaultPlanRequest() PlanRequestBody {
	budget := 1000.0
	return PlanRequestBody{
		SourceCity:             "Ithaca",
		DestinationCity:        "Chicago",
		DepartDate:             "2026-03-10",
		ReturnDate:             "2026-03-14",
		OptimizationPreference: "cost",
		Budget:                 &budget,
	}
}

// CreatePlanner creates a planner with the given gateways and default configuration.
func CreatePlanner(gws usecase.Gateways) usecase.JourneyPlanner {
	return usecase.NewJourneyPlanner(usecase.DefaultConfig(), gws, logger.Nop())
}

// CreatePlannerWithConfig creates a planner with custom configuration.
func CreatePlannerWithConfig(gws usecase.Gateways, cfg usecase.Config) usecase.JourneyPlanner {
	return usecase.NewJourneyPlanner(cfg, gws, logger.Nop())
}

// DefaultGateways returns the canonical two-city fixture: Ithaca with one
// airport, Chicago with two, flights on every route, and a flat $25 cab for
// every ground leg.
func DefaultGateways() usecase.Gateways {
	return usecase.Gateways{
		Airports: mock.FixedAirports(map[string][]string{
			"Ithaca":  {"ITH"},
			"Chicago": {"ORD", "MDW"},
		}),
		Flights: mock.FixedFlights(map[string][]domain.RawFlightCandidate{
			"ITH-ORD": {fixtureFlight(220.00, 150, "ITH", "ORD")},
			"ITH-MDW": {fixtureFlight(180.00, 190, "ITH", "MDW")},
			"ORD-ITH": {fixtureFlight(210.00, 155, "ORD", "ITH")},
			"MDW-ITH": {fixtureFlight(175.00, 185, "MDW", "ITH")},
		}),
		Ground: mock.ConstantGround(domain.GroundSegment{
			DurationMinutes: 30,
			CostUSD:         25.0,
			RecommendedMode: domain.ModeCab,
			Notes:           "Direct cab service available",
		}),
	}
}

// BlockingAirports returns an airport gateway that never answers until the
// context is cancelled. Used to exercise timeout behavior.
// FailingAirports returns an airport gateway whose lookups always fail with
// a transient gateway error.
func FailingAirports() *mock.AirportGateway {
	return &mock.AirportGateway{
		MajorAirportsFn: func(_ context.Context, _ string) ([]string, error) {
			return nil, domain.NewRetryableGatewayError("cityinfo", errors.New("client timeout"))
		},
	}
}

func BlockingAirports() *mock.AirportGateway {
	return &mock.AirportGateway{
		MajorAirportsFn: func(ctx context.Context, _ string) ([]string, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
}

func fixtureFlight(price float64, minutes int, origin, destination string) domain.RawFlightCandidate {
	return domain.RawFlightCandidate{
		PriceRaw:          price,
		PriceDisplay:      fmt.Sprintf("$%.2f", price),
		Origin:            origin,
		Destination:       destination,
		Departure:         "8:00 AM",
		Arrival:           "11:00 AM",
		DurationMinutes:   minutes,
		MarketingCarriers: []string{"United"},
	}
}
