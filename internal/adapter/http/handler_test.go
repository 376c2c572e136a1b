package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/doortodoor/journey-planner/internal/domain"
	"github.com/doortodoor/journey-planner/test/mock"
)

// setupTestHandler creates a test Echo instance wired to a mock planner.
func setupTestHandler(t *testing.T) (*echo.Echo, *mock.MockJourneyPlanner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	planner := mock.NewMockJourneyPlanner(ctrl)

	e := echo.New()
	RegisterRoutes(e, NewJourneyHandler(planner))
	return e, planner
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func budgetOf(v float64) *float64 {
	return &v
}

// sampleResult builds a minimal selection result for response assertions.
func sampleResult() *domain.SelectionResult {
	ground := domain.GroundSegment{
		DurationMinutes: 30,
		CostUSD:         25.0,
		RecommendedMode: domain.ModeCab,
		Notes:           "Direct cab service available",
	}
	outFlight := domain.FlightQuote{
		PriceDisplay: "$220.00", Origin: "ITH", Destination: "ORD",
		Departure: "8:00 AM", Arrival: "10:30 AM",
		DurationMinutes: 150, Airline: "United", Stops: 0,
	}
	retFlight := domain.FlightQuote{
		PriceDisplay: "$210.00", Origin: "ORD", Destination: "ITH",
		Departure: "5:00 PM", Arrival: "7:35 PM",
		DurationMinutes: 155, Airline: "United", Stops: 0,
	}
	combo := domain.NewJourneyCombination(
		domain.NewJourneySegment(ground, outFlight, ground),
		domain.NewJourneySegment(ground, retFlight, ground),
		220.0, 210.0,
	)
	return &domain.SelectionResult{Preferred: combo}
}

func validPlanRequest() PlanJourneyRequest {
	return PlanJourneyRequest{
		SourceCity:             "Ithaca",
		DestinationCity:        "Chicago",
		DepartDate:             "2026-03-10",
		ReturnDate:             "2026-03-14",
		OptimizationPreference: "cost",
		Budget:                 budgetOf(1000),
	}
}

func TestPlanJourney_Success(t *testing.T) {
	e, planner := setupTestHandler(t)

	want := sampleResult()
	planner.EXPECT().
		PlanJourney(gomock.Any(), gomock.Any()).
		Return(want, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/journeys/plan", validPlanRequest())

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.SelectionResult
	err := json.Unmarshal(rec.Body.Bytes(), &got)
	require.NoError(t, err)
	assert.Equal(t, want.Preferred.TotalCost, got.Preferred.TotalCost)
	assert.Equal(t, want.Preferred.TotalTime, got.Preferred.TotalTime)
	assert.Nil(t, got.Alternative)
}

func TestPlanJourney_PassesNormalizedRequest(t *testing.T) {
	e, planner := setupTestHandler(t)

	var captured domain.PlanningRequest
	planner.EXPECT().
		PlanJourney(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.PlanningRequest) (*domain.SelectionResult, error) {
			captured = req
			return sampleResult(), nil
		})

	body := validPlanRequest()
	body.SourceCity = "  Ithaca "
	body.OptimizationPreference = "COST"
	rec := makeRequest(e, http.MethodPost, "/api/v1/journeys/plan", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ithaca", captured.SourceCity)
	assert.Equal(t, domain.OptimizeCost, captured.Preference)
	require.NotNil(t, captured.Budget)
	assert.Equal(t, 1000.0, *captured.Budget)
}

func TestPlanJourney_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(r *PlanJourneyRequest)
		wantField string
	}{
		{
			name:      "missing source city",
			modify:    func(r *PlanJourneyRequest) { r.SourceCity = "" },
			wantField: "source_city",
		},
		{
			name:      "same source and destination",
			modify:    func(r *PlanJourneyRequest) { r.DestinationCity = "ithaca" },
			wantField: "destination_city",
		},
		{
			name:      "malformed depart date",
			modify:    func(r *PlanJourneyRequest) { r.DepartDate = "03/10/2026" },
			wantField: "depart_date",
		},
		{
			name:      "return before depart",
			modify:    func(r *PlanJourneyRequest) { r.ReturnDate = "2026-03-09" },
			wantField: "return_date",
		},
		{
			name:      "unknown preference",
			modify:    func(r *PlanJourneyRequest) { r.OptimizationPreference = "comfort" },
			wantField: "optimization_preference",
		},
		{
			name: "cost preference without budget",
			modify: func(r *PlanJourneyRequest) {
				r.Budget = nil
			},
			wantField: "budget",
		},
		{
			name:      "non-positive budget",
			modify:    func(r *PlanJourneyRequest) { r.Budget = budgetOf(-5) },
			wantField: "budget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupTestHandler(t)

			body := validPlanRequest()
			tt.modify(&body)
			rec := makeRequest(e, http.MethodPost, "/api/v1/journeys/plan", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var detail struct {
				Code    string            `json:"code"`
				Details map[string]string `json:"details"`
			}
			err := json.Unmarshal(rec.Body.Bytes(), &detail)
			require.NoError(t, err)
			assert.Equal(t, "validation_error", detail.Code)
			assert.Contains(t, detail.Details, tt.wantField)
		})
	}
}

func TestPlanJourney_MalformedBody(t *testing.T) {
	e, _ := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/journeys/plan", bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail struct {
		Code string `json:"code"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &detail)
	require.NoError(t, err)
	assert.Equal(t, "invalid_request", detail.Code)
}

func TestPlanJourney_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "no airports found",
			err:        fmt.Errorf("resolving airports: %w", domain.ErrNoAirportsFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "no combinations found",
			err:        domain.ErrNoCombinationsFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "budget exceeded",
			err:        domain.ErrBudgetExceeded,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "planning timeout",
			err:        fmt.Errorf("assembling: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "timeout",
		},
		{
			name:       "request cancelled",
			err:        context.Canceled,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "timeout",
		},
		{
			name:       "domain validation",
			err:        fmt.Errorf("%w: bad shape", domain.ErrInvalidRequest),
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_error",
		},
		{
			name:       "unexpected error",
			err:        errors.New("gateway exploded"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, planner := setupTestHandler(t)
			planner.EXPECT().
				PlanJourney(gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			rec := makeRequest(e, http.MethodPost, "/api/v1/journeys/plan", validPlanRequest())

			assert.Equal(t, tt.wantStatus, rec.Code)

			var detail struct {
				Code string `json:"code"`
			}
			err := json.Unmarshal(rec.Body.Bytes(), &detail)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func TestGetAirports_Success(t *testing.T) {
	e, planner := setupTestHandler(t)

	planner.EXPECT().
		GetAirports(gomock.Any(), "Chicago").
		Return([]string{"ORD", "MDW"}, nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/airports/Chicago", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got AirportsDTO
	err := json.Unmarshal(rec.Body.Bytes(), &got)
	require.NoError(t, err)
	assert.Equal(t, "Chicago", got.City)
	assert.Equal(t, []string{"ORD", "MDW"}, got.Airports)
}

func TestGetAirports_NotFound(t *testing.T) {
	e, planner := setupTestHandler(t)

	planner.EXPECT().
		GetAirports(gomock.Any(), "Nowhere").
		Return(nil, fmt.Errorf("city %q: %w", "Nowhere", domain.ErrNoAirportsFound))

	rec := makeRequest(e, http.MethodGet, "/api/v1/airports/Nowhere", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var detail struct {
		Code string `json:"code"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &detail)
	require.NoError(t, err)
	assert.Equal(t, "not_found", detail.Code)
}

func TestSearchFlights_Success(t *testing.T) {
	e, planner := setupTestHandler(t)

	candidates := []domain.RawFlightCandidate{
		{
			PriceRaw:          220.0,
			PriceDisplay:      "$220.00",
			Origin:            "ITH",
			Destination:       "ORD",
			Departure:         "8:00 AM",
			Arrival:           "10:30 AM",
			DurationMinutes:   150,
			MarketingCarriers: []string{"United"},
			Stops:             0,
		},
	}

	// Lowercase codes in the body must reach the planner uppercased.
	planner.EXPECT().
		SearchFlights(gomock.Any(), "ITH", "ORD", "2026-03-10").
		Return(candidates, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", SearchFlightsRequest{
		Origin:      "ith",
		Destination: "ord",
		Date:        "2026-03-10",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var got FlightResultsDTO
	err := json.Unmarshal(rec.Body.Bytes(), &got)
	require.NoError(t, err)
	assert.Equal(t, "ITH", got.Origin)
	assert.Equal(t, "ORD", got.Destination)
	require.Len(t, got.Flights, 1)
	assert.Equal(t, "$220.00", got.Flights[0].Price)
	assert.Equal(t, 220.0, got.Flights[0].PriceRaw)
	assert.Equal(t, 150, got.Flights[0].DurationMinutes)
	assert.Equal(t, []string{"United"}, got.Flights[0].MarketingCarriers)
}

func TestSearchFlights_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      SearchFlightsRequest
		wantField string
	}{
		{
			name:      "bad origin code",
			body:      SearchFlightsRequest{Origin: "ITHACA", Destination: "ORD", Date: "2026-03-10"},
			wantField: "origin",
		},
		{
			name:      "same origin and destination",
			body:      SearchFlightsRequest{Origin: "ORD", Destination: "ord", Date: "2026-03-10"},
			wantField: "destination",
		},
		{
			name:      "missing date",
			body:      SearchFlightsRequest{Origin: "ITH", Destination: "ORD"},
			wantField: "date",
		},
		{
			name:      "impossible date",
			body:      SearchFlightsRequest{Origin: "ITH", Destination: "ORD", Date: "2026-02-31"},
			wantField: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupTestHandler(t)

			rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var detail struct {
				Code    string            `json:"code"`
				Details map[string]string `json:"details"`
			}
			err := json.Unmarshal(rec.Body.Bytes(), &detail)
			require.NoError(t, err)
			assert.Equal(t, "validation_error", detail.Code)
			assert.Contains(t, detail.Details, tt.wantField)
		})
	}
}

func TestSearchGroundTransport_Success(t *testing.T) {
	e, planner := setupTestHandler(t)

	segment := domain.GroundSegment{
		DurationMinutes: 150,
		CostUSD:         38.0,
		RecommendedMode: domain.ModeBus,
		Notes:           "Service by FlixBus",
		DepartureTime:   "10:15 AM",
		ArrivalTime:     "12:45 PM",
	}
	planner.EXPECT().
		EstimateGround(gomock.Any(), "Ithaca", "John F. Kennedy Airport (JFK)", "2026-03-10", "9:30 AM").
		Return(segment, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/ground-transport/search", GroundTransportRequest{
		From:          "Ithaca",
		To:            "John F. Kennedy Airport (JFK)",
		Date:          "2026-03-10",
		PreferredTime: "9:30 AM",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.GroundSegment
	err := json.Unmarshal(rec.Body.Bytes(), &got)
	require.NoError(t, err)
	assert.Equal(t, segment, got)
}

func TestSearchGroundTransport_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      GroundTransportRequest
		wantField string
	}{
		{
			name:      "missing from",
			body:      GroundTransportRequest{To: "Ithaca", Date: "2026-03-10"},
			wantField: "from",
		},
		{
			name:      "missing to",
			body:      GroundTransportRequest{From: "Ithaca", Date: "2026-03-10"},
			wantField: "to",
		},
		{
			name: "bad preferred time",
			body: GroundTransportRequest{
				From: "Ithaca", To: "Syracuse", Date: "2026-03-10",
				PreferredTime: "25:99",
			},
			wantField: "preferred_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupTestHandler(t)

			rec := makeRequest(e, http.MethodPost, "/api/v1/ground-transport/search", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var detail struct {
				Details map[string]string `json:"details"`
			}
			err := json.Unmarshal(rec.Body.Bytes(), &detail)
			require.NoError(t, err)
			assert.Contains(t, detail.Details, tt.wantField)
		})
	}
}

func TestOptimizeCombinations_Success(t *testing.T) {
	e, planner := setupTestHandler(t)

	combos := []domain.JourneyCombination{
		sampleResult().Preferred,
		sampleResult().Preferred,
	}
	best := combos[0]

	planner.EXPECT().
		OptimizeCombinations(gomock.Any(), gomock.Len(2), gomock.Any()).
		Return(&best, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/journeys/optimize", OptimizeRequest{
		Combinations: combos,
		Budget:       budgetOf(1000),
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var got OptimizeResultDTO
	err := json.Unmarshal(rec.Body.Bytes(), &got)
	require.NoError(t, err)
	assert.Equal(t, best.TotalCost, got.BestCombination.TotalCost)
	assert.Equal(t, 2, got.CandidatesConsidered)
}

func TestOptimizeCombinations_EmptyInput(t *testing.T) {
	e, _ := setupTestHandler(t)

	rec := makeRequest(e, http.MethodPost, "/api/v1/journeys/optimize", OptimizeRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail struct {
		Details map[string]string `json:"details"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &detail)
	require.NoError(t, err)
	assert.Contains(t, detail.Details, "combinations")
}

func TestOptimizeCombinations_BudgetExceeded(t *testing.T) {
	e, planner := setupTestHandler(t)

	planner.EXPECT().
		OptimizeCombinations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrBudgetExceeded)

	rec := makeRequest(e, http.MethodPost, "/api/v1/journeys/optimize", OptimizeRequest{
		Combinations: []domain.JourneyCombination{sampleResult().Preferred},
		Budget:       budgetOf(10),
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	e, _ := setupTestHandler(t)

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &got)
	require.NoError(t, err)
	assert.Equal(t, "ok", got["status"])
}
